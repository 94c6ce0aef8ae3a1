package datatable

import (
	"encoding/json"
	"iter"

	"github.com/calderaviz/caldera/pkg/errors"
)

// Row is an ordered sequence of cells. Rows built through a DataTable always
// have exactly as many cells as the table declares columns; positions the
// input did not cover hold null cells.
type Row struct {
	cells []Cell
}

// NewRow maps each raw value through [NewCell] and wraps the result.
// This is pure value-to-cell coercion with no column-type awareness; use
// [BuildRow] (or [DataTable.AddRow]) for type-checked construction.
func NewRow(values []any) *Row {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return &Row{cells: cells}
}

// NullRow creates a row of the given width with every cell the null variant.
func NullRow(width int) *Row {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = NullCell()
	}
	return &Row{cells: cells}
}

// BuildRow is the column-aware row factory. It coerces values positionally
// against the table's declared column types:
//   - a nil (or empty) values sequence produces a null row at column width
//   - more values than columns fails with INVALID_CELL_COUNT
//   - nil values become null cells regardless of column type
//   - values in date-like columns must be instants, date cells, or non-empty
//     parseable strings, else the build fails with INVALID_DATE
//   - everything else passes through generic cell coercion, including
//     explicit [CellDef] structured definitions
//
// Positions beyond the input are padded with null cells so the row always
// matches the table's column count.
func BuildRow(t *DataTable, values []any) (*Row, error) {
	width := t.ColumnCount()
	if len(values) == 0 {
		return NullRow(width), nil
	}
	if len(values) > width {
		return nil, errors.New(errors.ErrCodeInvalidCellCount,
			"row supplies %d values but the table declares %d columns", len(values), width)
	}

	layout := t.DateTimeFormat()
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = NullCell()
	}

	for i, v := range values {
		if v == nil {
			continue
		}
		if t.columns[i].Type.IsDateLike() {
			cell, err := coerceDate(v, layout)
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "column %d (%s)", i, t.columns[i].Type)
			}
			cells[i] = cell
			continue
		}
		cells[i] = NewCell(v)
	}

	return &Row{cells: cells}, nil
}

// Width returns the number of cells in the row.
func (r *Row) Width() int { return len(r.cells) }

// Cell returns the cell at index i.
// Fails with INVALID_COLUMN_INDEX when i is negative or out of bounds.
func (r *Row) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(r.cells) {
		return Cell{}, errors.New(errors.ErrCodeInvalidColumnIndex,
			"cell index %d out of range [0, %d)", i, len(r.cells))
	}
	return r.cells[i], nil
}

// SetCell replaces the cell at index i, coercing raw through [NewCell].
func (r *Row) SetCell(i int, raw any) error {
	if i < 0 || i >= len(r.cells) {
		return errors.New(errors.ErrCodeInvalidColumnIndex,
			"cell index %d out of range [0, %d)", i, len(r.cells))
	}
	r.cells[i] = NewCell(raw)
	return nil
}

// HasCell reports whether index i addresses a non-null cell.
func (r *Row) HasCell(i int) bool {
	if i < 0 || i >= len(r.cells) {
		return false
	}
	return !r.cells[i].IsNull()
}

// RemoveCell clears the cell at index i back to the null variant.
// The row keeps its width; removal never shifts neighboring cells, since
// cells are positional against the table's columns.
func (r *Row) RemoveCell(i int) error {
	if i < 0 || i >= len(r.cells) {
		return errors.New(errors.ErrCodeInvalidColumnIndex,
			"cell index %d out of range [0, %d)", i, len(r.cells))
	}
	r.cells[i] = NullCell()
	return nil
}

// Cells returns a restartable iterator over the row's cells in order.
func (r *Row) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range r.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// IsNull reports whether every cell in the row is the null variant.
func (r *Row) IsNull() bool {
	for _, c := range r.cells {
		if !c.IsNull() {
			return false
		}
	}
	return true
}

// rowJSON is the wire form of a row.
type rowJSON struct {
	C []Cell `json:"c"`
}

// MarshalJSON encodes the row as {"c": [cells...]}.
func (r *Row) MarshalJSON() ([]byte, error) {
	cells := r.cells
	if cells == nil {
		cells = []Cell{}
	}
	return json.Marshal(rowJSON{C: cells})
}
