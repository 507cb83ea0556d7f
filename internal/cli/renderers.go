package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/devpalette/internal/palette"
	"github.com/jmylchreest/devpalette/internal/render"
	cssrender "github.com/jmylchreest/devpalette/internal/render/css"
	htmlrender "github.com/jmylchreest/devpalette/internal/render/html"
	"github.com/jmylchreest/devpalette/internal/render/jsonout"
	"github.com/jmylchreest/devpalette/internal/render/sheet"
	textrender "github.com/jmylchreest/devpalette/internal/render/text"
)

// renderers holds one instance of every renderer so their flags can be bound
// to a command before configuration is known.
type renderers struct {
	html     *htmlrender.Renderer
	css      *cssrender.Renderer
	text     *textrender.Renderer
	registry *render.Registry
}

func newRenderers() *renderers {
	r := &renderers{
		html: htmlrender.New(),
		css:  cssrender.New(),
		text: textrender.New(),
	}
	r.registry = render.NewRegistry(r.html, r.css, r.text, jsonout.New(), sheet.New())
	return r
}

// configure applies settings only available after flags and env are read.
func (r *renderers) configure(a *app) {
	r.html.WithTemplateDir(a.cfg.TemplateDir).WithLogger(a.logger)
	r.css.WithTemplateDir(a.cfg.TemplateDir).WithLogger(a.logger)
}

// selectRenderers resolves format names ("all" selects every renderer) and
// validates each selected renderer.
func (r *renderers) selectRenderers(names []string) ([]render.Renderer, error) {
	if len(names) == 1 && names[0] == "all" {
		names = r.registry.List()
	}

	var selected []render.Renderer
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		renderer, ok := r.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q (available: %s, all)", name, strings.Join(r.registry.List(), ", "))
		}
		if err := renderer.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		selected = append(selected, renderer)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no output format selected")
	}
	return selected, nil
}

// renderAll runs each renderer and merges their files.
func renderAll(result *palette.Result, selected []render.Renderer) (map[string][]byte, error) {
	files := make(map[string][]byte)
	for _, renderer := range selected {
		out, err := renderer.Render(result)
		if err != nil {
			return nil, fmt.Errorf("%s renderer failed: %w", renderer.Name(), err)
		}
		for name, data := range out {
			if _, exists := files[name]; exists {
				return nil, fmt.Errorf("%s renderer produced duplicate file %s", renderer.Name(), name)
			}
			files[name] = data
		}
	}
	return files, nil
}

func sortedFileNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
