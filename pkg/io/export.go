package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/calderaviz/caldera/pkg/renderable"
	"github.com/calderaviz/caldera/pkg/volcano"
)

// output is the wire form of an exported registry.
type output struct {
	Charts     []*renderable.Chart     `json:"charts"`
	Dashboards []*renderable.Dashboard `json:"dashboards"`
}

// WriteJSON encodes every renderable in v as indented JSON and writes it to
// w. Charts appear first (kind-major, store order within each kind), then
// dashboards in store order, matching [volcano.Volcano.GetAll].
func WriteJSON(v *volcano.Volcano, w io.Writer) error {
	out := output{
		Charts:     []*renderable.Chart{},
		Dashboards: []*renderable.Dashboard{},
	}
	for _, r := range v.GetAll() {
		switch t := r.(type) {
		case *renderable.Chart:
			out.Charts = append(out.Charts, t)
		case *renderable.Dashboard:
			out.Dashboards = append(out.Dashboards, t)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a registry to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(v *volcano.Volcano, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(v, f)
}

// WriteRenderable encodes a single renderable as indented JSON.
func WriteRenderable(r renderable.Renderable, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode %s %q: %w", r.Kind(), r.Label(), err)
	}
	return nil
}
