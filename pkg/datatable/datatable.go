package datatable

import (
	"encoding/json"
	"iter"
	"reflect"

	"github.com/calderaviz/caldera/pkg/errors"
)

// Options holds table-level options keyed by name.
// The only key the model itself consumes is [OptionDateTimeFormat]; other
// keys pass through untouched for collaborators.
type Options map[string]any

// Get returns the option value for key, or nil when unset.
func (o Options) Get(key string) any {
	if o == nil {
		return nil
	}
	return o[key]
}

// DataTable owns an ordered list of typed columns and an ordered list of
// rows. Columns must be declared before rows are accepted, and every row is
// coerced and validated against the column types on insertion.
type DataTable struct {
	columns []Column
	rows    []*Row
	opts    Options
}

// New creates an empty table. A nil opts is treated as empty options.
func New(opts Options) *DataTable {
	if opts == nil {
		opts = Options{}
	}
	return &DataTable{opts: opts}
}

// Options returns the table-level options.
func (t *DataTable) Options() Options { return t.opts }

// DateTimeFormat returns the configured date parse layout, or "" when the
// table relies on permissive default parsing.
func (t *DataTable) DateTimeFormat() string {
	if f, ok := t.opts.Get(OptionDateTimeFormat).(string); ok {
		return f
	}
	return ""
}

// AddColumn declares a column. Columns cannot be added once rows exist,
// since existing rows would no longer match the column count.
func (t *DataTable) AddColumn(c Column) error {
	if !c.Type.Valid() {
		return errors.New(errors.ErrCodeInvalidColumnType, "unknown column type %q", c.Type)
	}
	if len(t.rows) > 0 {
		return errors.New(errors.ErrCodeInvalidTableDefinition,
			"cannot add column %q after rows have been inserted", c.Label)
	}
	t.columns = append(t.columns, c)
	return nil
}

// AddColumns declares several columns in order, stopping at the first error.
func (t *DataTable) AddColumns(cols ...Column) error {
	for _, c := range cols {
		if err := t.AddColumn(c); err != nil {
			return err
		}
	}
	return nil
}

// ColumnCount returns the number of declared columns.
func (t *DataTable) ColumnCount() int { return len(t.columns) }

// Columns returns a copy of the declared column descriptors.
func (t *DataTable) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnTypes returns the ordered column type tags, index-aligned with row
// cells.
func (t *DataTable) ColumnTypes() []ColumnType {
	out := make([]ColumnType, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Type
	}
	return out
}

// AddRow coerces values into a row and appends it.
//
// values may be nil (producing a null row) or any slice; a non-nil non-slice
// value fails with INVALID_ROW_DEFINITION. Adding a row to a table with no
// declared columns fails with INVALID_TABLE_DEFINITION. The per-value
// coercion rules are those of [BuildRow].
func (t *DataTable) AddRow(values any) error {
	if len(t.columns) == 0 {
		return errors.New(errors.ErrCodeInvalidTableDefinition,
			"cannot add rows before columns are declared")
	}
	seq, err := toSequence(values)
	if err != nil {
		return err
	}
	row, err := BuildRow(t, seq)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// AddRows appends several rows, stopping at the first invalid one.
// Rows before the failing one remain in the table.
func (t *DataTable) AddRows(rows ...[]any) error {
	for _, values := range rows {
		if err := t.AddRow(values); err != nil {
			return err
		}
	}
	return nil
}

// toSequence normalizes a raw row input into []any.
// nil stays nil (the null-row marker); slices and arrays of any element type
// are flattened; everything else is not a sequence.
func toSequence(values any) ([]any, error) {
	if values == nil {
		return nil, nil
	}
	if seq, ok := values.([]any); ok {
		return seq, nil
	}
	rv := reflect.ValueOf(values)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, errors.New(errors.ErrCodeInvalidRowDefinition,
			"row input must be nil or a sequence, got %T", values)
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, nil
}

// RowCount returns the number of rows in the table.
func (t *DataTable) RowCount() int { return len(t.rows) }

// Row returns the row at index i.
func (t *DataTable) Row(i int) (*Row, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, errors.New(errors.ErrCodeInvalidRowIndex,
			"row index %d out of range [0, %d)", i, len(t.rows))
	}
	return t.rows[i], nil
}

// Rows returns a restartable iterator over the table's rows in order.
func (t *DataTable) Rows() iter.Seq2[int, *Row] {
	return func(yield func(int, *Row) bool) {
		for i, r := range t.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// SetCell replaces a single cell, coercing raw against the column's declared
// type. This is the only in-place mutation the table's contract exposes.
func (t *DataTable) SetCell(rowIndex, colIndex int, raw any) error {
	row, err := t.Row(rowIndex)
	if err != nil {
		return err
	}
	if colIndex < 0 || colIndex >= len(t.columns) {
		return errors.New(errors.ErrCodeInvalidColumnIndex,
			"column index %d out of range [0, %d)", colIndex, len(t.columns))
	}
	if raw != nil && t.columns[colIndex].Type.IsDateLike() {
		cell, err := coerceDate(raw, t.DateTimeFormat())
		if err != nil {
			return err
		}
		return row.SetCell(colIndex, cell)
	}
	return row.SetCell(colIndex, raw)
}

// tableJSON is the wire form of a table.
type tableJSON struct {
	Cols []Column `json:"cols"`
	Rows []*Row   `json:"rows"`
}

// MarshalJSON encodes the table as {"cols": [...], "rows": [...]}, the input
// format of the visualization runtime.
func (t *DataTable) MarshalJSON() ([]byte, error) {
	cols := t.columns
	if cols == nil {
		cols = []Column{}
	}
	rows := t.rows
	if rows == nil {
		rows = []*Row{}
	}
	return json.Marshal(tableJSON{Cols: cols, Rows: rows})
}
