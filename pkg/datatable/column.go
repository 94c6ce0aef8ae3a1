package datatable

import "encoding/json"

// ColumnType is the semantic tag constraining which cell values a column may
// hold. The tags match the type vocabulary of the visualization runtime.
type ColumnType string

// Column types supported by the visualization runtime.
const (
	TypeString    ColumnType = "string"
	TypeNumber    ColumnType = "number"
	TypeBoolean   ColumnType = "boolean"
	TypeDate      ColumnType = "date"
	TypeDateTime  ColumnType = "datetime"
	TypeTimeOfDay ColumnType = "timeofday"
)

// columnTypes is the set of valid column type tags.
var columnTypes = map[ColumnType]bool{
	TypeString:    true,
	TypeNumber:    true,
	TypeBoolean:   true,
	TypeDate:      true,
	TypeDateTime:  true,
	TypeTimeOfDay: true,
}

// Valid reports whether t is a recognized column type tag.
func (t ColumnType) Valid() bool { return columnTypes[t] }

// IsDateLike reports whether cells in a column of this type carry a parsed
// calendar instant (date, datetime, or timeofday).
func (t ColumnType) IsDateLike() bool {
	return t == TypeDate || t == TypeDateTime || t == TypeTimeOfDay
}

// Column describes one typed column of a DataTable.
// Only Type is required; Label and ID are display and binding hints passed
// through to the serialized form.
type Column struct {
	Type  ColumnType // Semantic type tag (required)
	Label string     // Display label shown by the runtime
	ID    string     // Stable identifier for data binding (optional)
	Role  string     // Runtime column role, e.g. "annotation" (optional)
}

// columnJSON is the wire form of a column descriptor.
type columnJSON struct {
	Type  ColumnType `json:"type"`
	Label string     `json:"label,omitempty"`
	ID    string     `json:"id,omitempty"`
	Role  string     `json:"role,omitempty"`
}

// MarshalJSON encodes the column in the runtime's "cols" entry format.
func (c Column) MarshalJSON() ([]byte, error) {
	return json.Marshal(columnJSON{
		Type:  c.Type,
		Label: c.Label,
		ID:    c.ID,
		Role:  c.Role,
	})
}
