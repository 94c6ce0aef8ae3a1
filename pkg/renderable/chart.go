package renderable

import (
	"encoding/json"

	"github.com/calderaviz/caldera/pkg/datatable"
	"github.com/calderaviz/caldera/pkg/errors"
)

// Chart is a typed, labeled chart bound to a data table.
// Type is an opaque chart kind the visualization runtime understands
// (e.g. "LineChart", "PieChart"); the registry namespaces labels by it.
type Chart struct {
	chartType string
	label     string
	elementID string

	// Table holds the chart's data. It may be attached after construction
	// and replaced freely until the chart is serialized.
	Table *datatable.DataTable

	// Options are opaque runtime configuration passed through to the
	// serialized form (axes, colors, legend, ...).
	Options map[string]any
}

// NewChart creates a chart of the given type and label.
// The element ID is generated when empty. Fails with INVALID_CHART_TYPE or
// INVALID_LABEL on empty or malformed identifiers.
func NewChart(chartType, label, elemID string) (*Chart, error) {
	if err := errors.ValidateChartType(chartType); err != nil {
		return nil, err
	}
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	return &Chart{
		chartType: chartType,
		label:     label,
		elementID: elementID(elemID),
	}, nil
}

// Type returns the chart kind.
func (c *Chart) Type() string { return c.chartType }

// Label returns the registry label.
func (c *Chart) Label() string { return c.label }

// ElementID returns the output binding identifier.
func (c *Chart) ElementID() string { return c.elementID }

// Kind returns KindChart.
func (c *Chart) Kind() Kind { return KindChart }

func (c *Chart) sealed() {}

// WithTable attaches a data table and returns the chart for chaining.
func (c *Chart) WithTable(t *datatable.DataTable) *Chart {
	c.Table = t
	return c
}

// chartJSON is the wire form of a chart.
type chartJSON struct {
	Type      string               `json:"type"`
	Label     string               `json:"label"`
	ElementID string               `json:"elementId"`
	Table     *datatable.DataTable `json:"datatable,omitempty"`
	Options   map[string]any       `json:"options,omitempty"`
}

// MarshalJSON encodes the chart with its serialized data table.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJSON{
		Type:      c.chartType,
		Label:     c.label,
		ElementID: c.elementID,
		Table:     c.Table,
		Options:   c.Options,
	})
}
