// Package datatable models typed, tabular chart data.
//
// A [DataTable] owns an ordered list of typed columns and an ordered list of
// rows. Rows are built from raw value sequences with column-type-aware
// coercion: scalars pass through, nil becomes a null cell, and values in
// date, datetime, or timeofday columns are parsed into calendar instants.
// Construction is strict - a value that cannot be coerced to its column's
// declared type fails the whole row.
//
// The package is the serialization source for the visualization runtime:
// tables marshal to the {"cols": [...], "rows": [{"c": [...]}]} wire form,
// with date cells encoded as Date(y,m,d,h,i,s) constructor strings.
//
// # Usage
//
//	dt := datatable.New(nil)
//	dt.AddColumn(datatable.Column{Type: datatable.TypeString, Label: "Product"})
//	dt.AddColumn(datatable.Column{Type: datatable.TypeNumber, Label: "Units"})
//	dt.AddColumn(datatable.Column{Type: datatable.TypeDate, Label: "Shipped"})
//
//	if err := dt.AddRow([]any{"widget", 42, "2024-01-15"}); err != nil {
//	    return err
//	}
//
//	data, err := json.Marshal(dt)
//
// Tables are append-only: rows can be added any number of times, and single
// cells replaced by index, but there is no row removal.
package datatable
