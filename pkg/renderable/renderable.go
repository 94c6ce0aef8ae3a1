// Package renderable defines the named, typed visual artifacts the Volcano
// registry stores: charts and dashboards.
//
// Renderable is a closed sum - the only variants are [Chart] and [Dashboard],
// discriminated by [Renderable.Kind]. Registry dispatch matches on the
// discriminant instead of probing concrete types.
package renderable

import (
	"github.com/google/uuid"

	"github.com/calderaviz/caldera/pkg/errors"
)

// Kind discriminates the renderable variants.
type Kind string

const (
	// KindChart marks chart renderables, keyed by (chart type, label).
	KindChart Kind = "chart"
	// KindDashboard marks dashboard renderables, keyed by label alone.
	KindDashboard Kind = "dashboard"
)

// DashboardType is the reserved type string callers use to address
// dashboards through kind-and-label lookups.
const DashboardType = "Dashboard"

// Renderable is a storable, labeled visual artifact.
// The interface is sealed: only Chart and Dashboard implement it.
type Renderable interface {
	// Label returns the renderable's registry label (non-empty).
	Label() string

	// ElementID returns the DOM element identifier the runtime binds
	// output to.
	ElementID() string

	// Kind returns the variant discriminant.
	Kind() Kind

	sealed()
}

// elementID returns id, or a generated identifier when id is empty.
func elementID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// validateLabel guards renderable constructors.
func validateLabel(label string) error {
	return errors.ValidateLabel(label)
}
