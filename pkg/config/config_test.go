package config

import (
	"testing"

	"github.com/calderaviz/caldera/pkg/datatable"
	"github.com/calderaviz/caldera/pkg/errors"
	"github.com/calderaviz/caldera/pkg/renderable"
)

const sampleDefinition = `
[table]
datetime_format = "2006-01-02"

[[column]]
type = "string"
label = "Product"

[[column]]
type = "number"
label = "Units"

[[column]]
type = "date"
label = "Shipped"

[[chart]]
type = "LineChart"
label = "Shipments"
element_id = "chart-div"

[[dashboard]]
label = "Overview"

  [[dashboard.binding]]
  control = "RangeFilter"
  chart = "Shipments"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Table.DateTimeFormat != "2006-01-02" {
		t.Errorf("DateTimeFormat = %q", f.Table.DateTimeFormat)
	}
	if len(f.Columns) != 3 {
		t.Fatalf("Columns = %d, want 3", len(f.Columns))
	}
	if f.Columns[2].Type != "date" || f.Columns[2].Label != "Shipped" {
		t.Errorf("column[2] = %+v", f.Columns[2])
	}
	if len(f.Charts) != 1 || f.Charts[0].Label != "Shipments" {
		t.Errorf("charts = %+v", f.Charts)
	}
	if len(f.Dashboards) != 1 || len(f.Dashboards[0].Bindings) != 1 {
		t.Errorf("dashboards = %+v", f.Dashboards)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed toml", input: `[[column`},
		{name: "no columns", input: "[table]\ndatetime_format = \"2006-01-02\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestBuildTable(t *testing.T) {
	f, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatal(err)
	}

	dt, err := f.BuildTable()
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if dt.ColumnCount() != 3 {
		t.Errorf("ColumnCount() = %d, want 3", dt.ColumnCount())
	}
	if dt.DateTimeFormat() != "2006-01-02" {
		t.Errorf("DateTimeFormat() = %q", dt.DateTimeFormat())
	}
	types := dt.ColumnTypes()
	if types[1] != datatable.TypeNumber || types[2] != datatable.TypeDate {
		t.Errorf("ColumnTypes() = %v", types)
	}
}

func TestBuildTableBadColumnType(t *testing.T) {
	f, err := Parse([]byte("[[column]]\ntype = \"fancy\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.BuildTable(); !errors.Is(err, errors.ErrCodeInvalidColumnType) {
		t.Errorf("error = %v, want INVALID_COLUMN_TYPE", err)
	}
}

func TestBuildRenderables(t *testing.T) {
	f, err := Parse([]byte(sampleDefinition))
	if err != nil {
		t.Fatal(err)
	}
	dt, err := f.BuildTable()
	if err != nil {
		t.Fatal(err)
	}

	rs, err := f.BuildRenderables(dt)
	if err != nil {
		t.Fatalf("BuildRenderables: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("renderables = %d, want 2", len(rs))
	}

	chart, ok := rs[0].(*renderable.Chart)
	if !ok {
		t.Fatalf("rs[0] is %T, want *Chart", rs[0])
	}
	if chart.ElementID() != "chart-div" {
		t.Errorf("ElementID() = %q", chart.ElementID())
	}
	if chart.Table != dt {
		t.Error("chart should carry the built table")
	}

	dash, ok := rs[1].(*renderable.Dashboard)
	if !ok {
		t.Fatalf("rs[1] is %T, want *Dashboard", rs[1])
	}
	if len(dash.Bindings) != 1 || dash.Bindings[0].ChartLabel != "Shipments" {
		t.Errorf("bindings = %+v", dash.Bindings)
	}
}

func TestBuildRenderablesBadLabel(t *testing.T) {
	f, err := Parse([]byte("[[column]]\ntype = \"string\"\n\n[[chart]]\ntype = \"LineChart\"\nlabel = \"\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	dt, err := f.BuildTable()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.BuildRenderables(dt); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("error = %v, want INVALID_LABEL", err)
	}
}
