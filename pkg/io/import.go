// Package io imports raw data into tables and exports serialized
// renderables.
//
// The import side reads CSV into an existing [datatable.DataTable],
// converting each field to a scalar the column's type expects. The export
// side writes one renderable, or a whole registry, as indented JSON in the
// visualization runtime's input format.
package io

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calderaviz/caldera/pkg/datatable"
	"github.com/calderaviz/caldera/pkg/errors"
)

// ReadCSV reads CSV records from r and appends them as rows to table.
// The table's columns must already be declared; records are converted
// field-by-field against the column types:
//   - empty fields become nil (null cells)
//   - number columns parse as float64
//   - boolean columns parse with strconv.ParseBool
//   - date-like columns stay strings and are parsed by the row factory
//   - string columns pass through
//
// When header is true the first record is skipped.
func ReadCSV(r io.Reader, table *datatable.DataTable, header bool) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	types := table.ColumnTypes()
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidData, err, "read csv record")
		}
		line++
		if header && line == 1 {
			continue
		}

		values, err := convertRecord(record, types)
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "csv line %d", line)
		}
		if err := table.AddRow(values); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "csv line %d", line)
		}
	}
}

// ImportCSV reads a CSV file at path into table.
// This is a convenience wrapper around [ReadCSV] for file-based input.
func ImportCSV(path string, table *datatable.DataTable, header bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidData, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f, table, header)
}

// convertRecord converts one CSV record into raw row values.
// Records may be shorter than the column list (missing trailing cells become
// nulls) but never longer - the row factory rejects oversized rows, and the
// conversion mirrors that here to keep the error close to the input.
func convertRecord(record []string, types []datatable.ColumnType) ([]any, error) {
	if len(record) > len(types) {
		return nil, errors.New(errors.ErrCodeInvalidCellCount,
			"record has %d fields but the table declares %d columns", len(record), len(types))
	}

	values := make([]any, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		switch types[i] {
		case datatable.TypeNumber:
			n, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "field %d: %q is not a number", i, field)
			}
			values[i] = n
		case datatable.TypeBoolean:
			b, err := strconv.ParseBool(field)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "field %d: %q is not a boolean", i, field)
			}
			values[i] = b
		default:
			values[i] = field
		}
	}
	return values, nil
}
