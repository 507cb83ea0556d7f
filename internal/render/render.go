// Package render provides the interface and registry for palette renderers.
package render

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/palette"
)

// Renderer turns a generated palette into one or more output files.
type Renderer interface {
	// Name returns the renderer's name (e.g., "html", "png").
	Name() string

	// Description returns a human-readable description of the renderer.
	Description() string

	// Render creates output file(s) from the given palette.
	// Returns map of filename -> content to support renderers that emit several files.
	Render(result *palette.Result) (map[string][]byte, error)

	// RegisterFlags registers renderer-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the renderer configuration is valid.
	Validate() error
}

// Registry holds all registered renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a new renderer registry.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// Register adds a renderer to the registry.
func (r *Registry) Register(renderer Renderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, bool) {
	renderer, ok := r.renderers[name]
	return renderer, ok
}

// List returns all registered renderer names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered renderers in name order.
func (r *Registry) All() []Renderer {
	all := make([]Renderer, 0, len(r.renderers))
	for _, name := range r.List() {
		all = append(all, r.renderers[name])
	}
	return all
}
