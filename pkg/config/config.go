// Package config loads chart definition files for the caldera CLI.
//
// A definition file is TOML describing one data table (options plus ordered
// columns) and the renderables built on top of it:
//
//	[table]
//	datetime_format = "2006-01-02"
//
//	[[column]]
//	type = "string"
//	label = "Product"
//
//	[[column]]
//	type = "number"
//	label = "Units"
//
//	[[chart]]
//	type = "LineChart"
//	label = "Sales"
//
//	[[dashboard]]
//	label = "Overview"
//	  [[dashboard.binding]]
//	  control = "RangeFilter"
//	  chart = "Sales"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/calderaviz/caldera/pkg/datatable"
	"github.com/calderaviz/caldera/pkg/errors"
	"github.com/calderaviz/caldera/pkg/renderable"
)

// File is a parsed chart definition file.
type File struct {
	Table      TableConfig       `toml:"table"`
	Columns    []ColumnConfig    `toml:"column"`
	Charts     []ChartConfig     `toml:"chart"`
	Dashboards []DashboardConfig `toml:"dashboard"`
}

// TableConfig holds table-level options.
type TableConfig struct {
	DateTimeFormat string `toml:"datetime_format"`
}

// ColumnConfig declares one table column.
type ColumnConfig struct {
	Type  string `toml:"type"`
	Label string `toml:"label"`
	ID    string `toml:"id"`
	Role  string `toml:"role"`
}

// ChartConfig declares one chart renderable.
type ChartConfig struct {
	Type      string         `toml:"type"`
	Label     string         `toml:"label"`
	ElementID string         `toml:"element_id"`
	Options   map[string]any `toml:"options"`
}

// DashboardConfig declares one dashboard renderable.
type DashboardConfig struct {
	Label     string          `toml:"label"`
	ElementID string          `toml:"element_id"`
	Bindings  []BindingConfig `toml:"binding"`
	Options   map[string]any  `toml:"options"`
}

// BindingConfig wires a control label to a chart label.
type BindingConfig struct {
	Control string `toml:"control"`
	Chart   string `toml:"chart"`
}

// Load reads and parses a definition file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse parses definition file contents.
// Fails with INVALID_CONFIG when the TOML is malformed or declares no
// columns.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse chart definition")
	}
	if len(f.Columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "chart definition declares no columns")
	}
	return &f, nil
}

// BuildTable creates an empty data table with the file's options and
// columns. Column type errors surface as INVALID_COLUMN_TYPE.
func (f *File) BuildTable() (*datatable.DataTable, error) {
	opts := datatable.Options{}
	if f.Table.DateTimeFormat != "" {
		opts[datatable.OptionDateTimeFormat] = f.Table.DateTimeFormat
	}

	dt := datatable.New(opts)
	for _, c := range f.Columns {
		col := datatable.Column{
			Type:  datatable.ColumnType(c.Type),
			Label: c.Label,
			ID:    c.ID,
			Role:  c.Role,
		}
		if err := dt.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// BuildRenderables constructs the file's charts and dashboards, attaching
// table to every chart. Returned renderables are ready to store in a
// Volcano.
func (f *File) BuildRenderables(table *datatable.DataTable) ([]renderable.Renderable, error) {
	out := make([]renderable.Renderable, 0, len(f.Charts)+len(f.Dashboards))

	for _, cc := range f.Charts {
		chart, err := renderable.NewChart(cc.Type, cc.Label, cc.ElementID)
		if err != nil {
			return nil, err
		}
		chart.Options = cc.Options
		out = append(out, chart.WithTable(table))
	}

	for _, dc := range f.Dashboards {
		dash, err := renderable.NewDashboard(dc.Label, dc.ElementID)
		if err != nil {
			return nil, err
		}
		dash.Options = dc.Options
		for _, b := range dc.Bindings {
			dash.Bind(b.Control, b.Chart)
		}
		out = append(out, dash)
	}

	return out, nil
}
