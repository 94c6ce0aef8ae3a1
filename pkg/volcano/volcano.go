// Package volcano implements the in-memory registry of renderables.
//
// A [Volcano] stores charts keyed by (chart type, label) and dashboards
// keyed by label; the two namespaces are independent. Entries only move from
// absent to present - there is no eviction. Storing under an existing key
// overwrites silently (last write wins); use [Volcano.CheckChart] or
// [Volcano.CheckDashboard] to guard beforehand when overwriting matters.
//
// The registry is plain mutable state shared by everything that owns chart
// lifecycles, so construct one per application session (or per test) instead
// of reaching for a process-wide instance. All operations are safe for
// concurrent use; Store performs a read-modify-write on the backing maps and
// is guarded by a single lock.
package volcano

import (
	"sync"

	"github.com/calderaviz/caldera/pkg/errors"
	"github.com/calderaviz/caldera/pkg/renderable"
)

// Volcano is the registry of all created renderables.
type Volcano struct {
	mu sync.RWMutex

	charts     map[string]map[string]*renderable.Chart // chart type → label → chart
	kindOrder  []string                                // chart types in first-store order
	labelOrder map[string][]string                     // labels in first-store order, per type

	dashboards map[string]*renderable.Dashboard
	dashOrder  []string // labels in first-store order
}

// New creates an empty registry.
func New() *Volcano {
	return &Volcano{
		charts:     make(map[string]map[string]*renderable.Chart),
		labelOrder: make(map[string][]string),
		dashboards: make(map[string]*renderable.Dashboard),
	}
}

// Store saves a renderable, dispatching on its kind, and returns it so
// callers can chain. Charts are keyed by (type, label), dashboards by label.
// Storing under an occupied key replaces the entry and keeps its original
// position in iteration order.
func (v *Volcano) Store(r renderable.Renderable) renderable.Renderable {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch r.Kind() {
	case renderable.KindChart:
		v.storeChart(r.(*renderable.Chart))
	case renderable.KindDashboard:
		v.storeDashboard(r.(*renderable.Dashboard))
	}
	return r
}

func (v *Volcano) storeChart(c *renderable.Chart) {
	kind := c.Type()
	byLabel, ok := v.charts[kind]
	if !ok {
		byLabel = make(map[string]*renderable.Chart)
		v.charts[kind] = byLabel
		v.kindOrder = append(v.kindOrder, kind)
	}
	if _, exists := byLabel[c.Label()]; !exists {
		v.labelOrder[kind] = append(v.labelOrder[kind], c.Label())
	}
	byLabel[c.Label()] = c
}

func (v *Volcano) storeDashboard(d *renderable.Dashboard) {
	if _, exists := v.dashboards[d.Label()]; !exists {
		v.dashOrder = append(v.dashOrder, d.Label())
	}
	v.dashboards[d.Label()] = d
}

// Get retrieves a renderable by type and label. The reserved type
// "Dashboard" addresses the dashboard namespace; any other type addresses
// charts of that kind. Fails with CHART_NOT_FOUND or DASHBOARD_NOT_FOUND
// when the key is absent.
func (v *Volcano) Get(chartType, label string) (renderable.Renderable, error) {
	if chartType == renderable.DashboardType {
		d, err := v.GetDashboard(label)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	c, err := v.GetChart(chartType, label)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetChart retrieves a chart by type and label.
func (v *Volcano) GetChart(chartType, label string) (*renderable.Chart, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if c, ok := v.charts[chartType][label]; ok {
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeChartNotFound, "chart %s(%q) not found", chartType, label)
}

// GetDashboard retrieves a dashboard by label.
func (v *Volcano) GetDashboard(label string) (*renderable.Dashboard, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if d, ok := v.dashboards[label]; ok {
		return d, nil
	}
	return nil, errors.New(errors.ErrCodeDashboardNotFound, "dashboard %q not found", label)
}

// CheckChart reports whether a chart with the given type and label exists.
// It never fails: an empty or undeclared type simply yields false.
func (v *Volcano) CheckChart(chartType, label string) bool {
	if chartType == "" {
		return false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.charts[chartType][label]
	return ok
}

// CheckDashboard reports whether a dashboard with the given label exists.
func (v *Volcano) CheckDashboard(label string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.dashboards[label]
	return ok
}

// GetAll returns every stored renderable: charts first (grouped by chart
// type in first-store order, then store order within each type), followed by
// dashboards in store order.
func (v *Volcano) GetAll() []renderable.Renderable {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]renderable.Renderable, 0, v.countLocked())
	for _, kind := range v.kindOrder {
		for _, label := range v.labelOrder[kind] {
			out = append(out, v.charts[kind][label])
		}
	}
	for _, label := range v.dashOrder {
		out = append(out, v.dashboards[label])
	}
	return out
}

// Count returns the number of stored renderables across both namespaces.
func (v *Volcano) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.countLocked()
}

func (v *Volcano) countLocked() int {
	n := len(v.dashOrder)
	for _, labels := range v.labelOrder {
		n += len(labels)
	}
	return n
}
