package renderable

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/calderaviz/caldera/pkg/datatable"
	"github.com/calderaviz/caldera/pkg/errors"
)

func TestNewChart(t *testing.T) {
	tests := []struct {
		name      string
		chartType string
		label     string
		wantErr   errors.Code
	}{
		{name: "valid", chartType: "LineChart", label: "Sales"},
		{name: "empty type", chartType: "", label: "Sales", wantErr: errors.ErrCodeInvalidChartType},
		{name: "empty label", chartType: "LineChart", label: "", wantErr: errors.ErrCodeInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChart(tt.chartType, tt.label, "")
			if tt.wantErr != "" {
				if got := errors.GetCode(err); got != tt.wantErr {
					t.Errorf("error code = %v, want %v", got, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChart: %v", err)
			}
			if c.Type() != tt.chartType || c.Label() != tt.label {
				t.Errorf("chart = %s(%s)", c.Type(), c.Label())
			}
			if c.Kind() != KindChart {
				t.Errorf("Kind() = %v, want %v", c.Kind(), KindChart)
			}
		})
	}
}

func TestElementIDGeneration(t *testing.T) {
	a, err := NewChart("LineChart", "A", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewChart("LineChart", "B", "")
	if err != nil {
		t.Fatal(err)
	}

	if a.ElementID() == "" {
		t.Error("empty element ID should be generated")
	}
	if a.ElementID() == b.ElementID() {
		t.Error("generated element IDs should be distinct")
	}

	c, err := NewChart("LineChart", "C", "my-div")
	if err != nil {
		t.Fatal(err)
	}
	if c.ElementID() != "my-div" {
		t.Errorf("ElementID() = %q, want my-div", c.ElementID())
	}
}

func TestNewDashboard(t *testing.T) {
	d, err := NewDashboard("Overview", "dash-div")
	if err != nil {
		t.Fatalf("NewDashboard: %v", err)
	}
	if d.Label() != "Overview" || d.ElementID() != "dash-div" {
		t.Errorf("dashboard = %s / %s", d.Label(), d.ElementID())
	}
	if d.Kind() != KindDashboard {
		t.Errorf("Kind() = %v, want %v", d.Kind(), KindDashboard)
	}

	if _, err := NewDashboard("", ""); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("NewDashboard(empty) error = %v, want INVALID_LABEL", err)
	}
}

func TestDashboardBind(t *testing.T) {
	d, err := NewDashboard("Overview", "")
	if err != nil {
		t.Fatal(err)
	}

	d.Bind("RangeFilter", "Sales").Bind("CategoryPicker", "Sales")

	if len(d.Bindings) != 2 {
		t.Fatalf("Bindings = %d, want 2", len(d.Bindings))
	}
	if d.Bindings[0].ControlLabel != "RangeFilter" || d.Bindings[1].ControlLabel != "CategoryPicker" {
		t.Errorf("bindings out of order: %+v", d.Bindings)
	}
}

func TestChartMarshalJSON(t *testing.T) {
	dt := datatable.New(nil)
	if err := dt.AddColumn(datatable.Column{Type: datatable.TypeString}); err != nil {
		t.Fatal(err)
	}
	if err := dt.AddRow([]any{"x"}); err != nil {
		t.Fatal(err)
	}

	c, err := NewChart("PieChart", "Share", "pie-div")
	if err != nil {
		t.Fatal(err)
	}
	c.WithTable(dt)
	c.Options = map[string]any{"is3D": true}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`"type":"PieChart"`,
		`"label":"Share"`,
		`"elementId":"pie-div"`,
		`"datatable":{"cols":`,
		`"is3D":true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marshal output missing %s\ngot: %s", want, out)
		}
	}
}

func TestDashboardMarshalJSON(t *testing.T) {
	d, err := NewDashboard("Overview", "dash-div")
	if err != nil {
		t.Fatal(err)
	}
	d.Bind("RangeFilter", "Sales")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`"type":"Dashboard"`,
		`"label":"Overview"`,
		`"bindings":[{"control":"RangeFilter","chart":"Sales"}]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marshal output missing %s\ngot: %s", want, out)
		}
	}
}
