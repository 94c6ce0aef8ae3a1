package datatable

import (
	"encoding/json"
	"fmt"
	"time"
)

// cellKind discriminates the cell variants. The variant is fixed at
// construction; there is no transition between kinds.
type cellKind int

const (
	// kindValue holds a generic scalar (string, number, bool, ...).
	kindValue cellKind = iota
	// kindNull marks an absent value. Null cells serialize as {"v": null}.
	kindNull
	// kindDate holds a parsed calendar instant. Date cells serialize their
	// value as a Date(y,m,d,h,i,s) constructor string.
	kindDate
)

// Cell is a single typed, immutable value within a row.
// The zero value is a generic-value cell holding nil; use the constructors
// to build the variant you need.
type Cell struct {
	kind      cellKind
	value     any       // scalar payload for kindValue
	when      time.Time // instant payload for kindDate
	formatted string    // optional display string
	props     map[string]any
}

// CellDef is an explicit structured cell definition. Callers can pass a
// CellDef anywhere a raw value is accepted to attach a formatted display
// string or opaque properties to the cell.
type CellDef struct {
	V any            // Cell value
	F string         // Formatted display string (optional)
	P map[string]any // Opaque key-value annotations (optional)
}

// ValueCell creates a generic-value cell holding the scalar v.
func ValueCell(v any) Cell {
	return Cell{kind: kindValue, value: v}
}

// NullCell creates a null-variant cell.
func NullCell() Cell {
	return Cell{kind: kindNull}
}

// DateCell creates a date-variant cell holding the instant t.
func DateCell(t time.Time) Cell {
	return Cell{kind: kindDate, when: t}
}

// NewCell coerces a raw value into a Cell:
//   - nil produces a null cell
//   - a time.Time produces a date cell
//   - an existing Cell (or *Cell) passes through unchanged
//   - a CellDef is expanded via [FromDef]
//   - anything else becomes a generic-value cell
//
// No type validation happens here; column-type enforcement is the row
// factory's job.
func NewCell(raw any) Cell {
	switch v := raw.(type) {
	case nil:
		return NullCell()
	case time.Time:
		return DateCell(v)
	case Cell:
		return v
	case *Cell:
		return *v
	case CellDef:
		return FromDef(v)
	case *CellDef:
		return FromDef(*v)
	default:
		return ValueCell(raw)
	}
}

// FromDef builds a cell from an explicit structured definition.
// A nil V with no formatted string produces a null cell that still carries
// the definition's properties.
func FromDef(def CellDef) Cell {
	c := NewCell(def.V)
	c.formatted = def.F
	if len(def.P) > 0 {
		c.props = make(map[string]any, len(def.P))
		for k, v := range def.P {
			c.props[k] = v
		}
	}
	return c
}

// IsNull reports whether the cell is the null variant.
func (c Cell) IsNull() bool { return c.kind == kindNull }

// IsDate reports whether the cell is the date variant.
func (c Cell) IsDate() bool { return c.kind == kindDate }

// Value returns the cell's raw value: the scalar for generic cells, the
// instant for date cells, and nil for null cells.
func (c Cell) Value() any {
	switch c.kind {
	case kindDate:
		return c.when
	case kindNull:
		return nil
	default:
		return c.value
	}
}

// When returns the calendar instant of a date cell.
// The second return is false for non-date cells.
func (c Cell) When() (time.Time, bool) {
	return c.when, c.kind == kindDate
}

// Formatted returns the display string attached to the cell, if any.
func (c Cell) Formatted() string { return c.formatted }

// Props returns a copy of the cell's opaque annotations.
// Returns nil if the cell has none.
func (c Cell) Props() map[string]any {
	if c.props == nil {
		return nil
	}
	out := make(map[string]any, len(c.props))
	for k, v := range c.props {
		out[k] = v
	}
	return out
}

// cellJSON is the wire form of a cell.
type cellJSON struct {
	V any            `json:"v"`
	F string         `json:"f,omitempty"`
	P map[string]any `json:"p,omitempty"`
}

// MarshalJSON encodes the cell as {"v": value, "f"?: formatted, "p"?: props}.
// Date cells encode their value as a Date(...) constructor string consumable
// by the visualization runtime.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{F: c.formatted, P: c.props}
	switch c.kind {
	case kindNull:
		out.V = nil
	case kindDate:
		out.V = dateString(c.when)
	default:
		out.V = c.value
	}
	return json.Marshal(out)
}

// dateString renders an instant as the runtime's Date() constructor call.
// The month is zero-based, matching the JavaScript Date constructor the
// string is fed into.
func dateString(t time.Time) string {
	return fmt.Sprintf("Date(%d, %d, %d, %d, %d, %d)",
		t.Year(), int(t.Month())-1, t.Day(), t.Hour(), t.Minute(), t.Second())
}
