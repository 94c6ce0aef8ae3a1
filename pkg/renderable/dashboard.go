package renderable

import "encoding/json"

// Binding wires a control to a chart inside a dashboard. Both sides are
// labels of renderables registered in the same Volcano; resolution happens
// at templating time, outside this model.
type Binding struct {
	ControlLabel string `json:"control"`
	ChartLabel   string `json:"chart"`
}

// Dashboard is a labeled collection of chart/control bindings.
// Dashboards share one label namespace, separate from every chart kind.
type Dashboard struct {
	label     string
	elementID string

	// Bindings are the dashboard's control-to-chart wirings, in the order
	// they were added.
	Bindings []Binding

	// Options are opaque runtime configuration passed through to the
	// serialized form.
	Options map[string]any
}

// NewDashboard creates a dashboard with the given label.
// The element ID is generated when empty. Fails with INVALID_LABEL on empty
// or malformed labels.
func NewDashboard(label, elemID string) (*Dashboard, error) {
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	return &Dashboard{
		label:     label,
		elementID: elementID(elemID),
	}, nil
}

// Label returns the registry label.
func (d *Dashboard) Label() string { return d.label }

// ElementID returns the output binding identifier.
func (d *Dashboard) ElementID() string { return d.elementID }

// Kind returns KindDashboard.
func (d *Dashboard) Kind() Kind { return KindDashboard }

func (d *Dashboard) sealed() {}

// Bind appends a control-to-chart binding and returns the dashboard for
// chaining.
func (d *Dashboard) Bind(controlLabel, chartLabel string) *Dashboard {
	d.Bindings = append(d.Bindings, Binding{ControlLabel: controlLabel, ChartLabel: chartLabel})
	return d
}

// dashboardJSON is the wire form of a dashboard.
type dashboardJSON struct {
	Type      string         `json:"type"`
	Label     string         `json:"label"`
	ElementID string         `json:"elementId"`
	Bindings  []Binding      `json:"bindings,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

// MarshalJSON encodes the dashboard. The type field is always "Dashboard",
// matching the reserved lookup type.
func (d *Dashboard) MarshalJSON() ([]byte, error) {
	return json.Marshal(dashboardJSON{
		Type:      DashboardType,
		Label:     d.label,
		ElementID: d.elementID,
		Bindings:  d.Bindings,
		Options:   d.Options,
	})
}
