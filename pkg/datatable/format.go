package datatable

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/calderaviz/caldera/pkg/errors"
)

// OptionDateTimeFormat is the table option key holding the Go time layout
// used to parse date strings. When unset, strings are parsed permissively.
const OptionDateTimeFormat = "datetime_format"

// parseInstant parses a date string into an instant.
// A non-empty layout is applied strictly with time.Parse; otherwise the
// string is parsed permissively, accepting the common interchange formats
// (ISO 8601, RFC 3339, slash dates, unix-style timestamps, ...).
func parseInstant(s, layout string) (time.Time, error) {
	if layout != "" {
		return time.Parse(layout, s)
	}
	return dateparse.ParseAny(s)
}

// coerceDate coerces a raw value destined for a date, datetime, or timeofday
// column into a date cell. Accepted inputs are pre-built instants, pre-built
// date (or null) cells, and non-empty parseable strings. Everything else is
// an INVALID_DATE construction failure.
func coerceDate(raw any, layout string) (Cell, error) {
	switch v := raw.(type) {
	case time.Time:
		return DateCell(v), nil
	case *time.Time:
		if v == nil {
			return NullCell(), nil
		}
		return DateCell(*v), nil
	case string:
		if v == "" {
			return Cell{}, errors.New(errors.ErrCodeInvalidDate, "date value cannot be an empty string")
		}
		t, err := parseInstant(v, layout)
		if err != nil {
			return Cell{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "cannot parse date value %q", v)
		}
		return DateCell(t), nil
	case Cell:
		if v.IsDate() || v.IsNull() {
			return v, nil
		}
		return Cell{}, errors.New(errors.ErrCodeInvalidDate, "cell value %v is not a date", v.Value())
	case *Cell:
		return coerceDate(*v, layout)
	default:
		return Cell{}, errors.New(errors.ErrCodeInvalidDate, "value %v (%T) is not a date", raw, raw)
	}
}
