// Package css renders a palette as CSS custom properties.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/palette"
	"github.com/jmylchreest/devpalette/internal/render"
	tmplloader "github.com/jmylchreest/devpalette/internal/render/template"
)

//go:embed *.tmpl
var templates embed.FS

const templateName = "palette.css.tmpl"

// Renderer implements render.Renderer for CSS variables.
type Renderer struct {
	prefix      string
	templateDir string
	logger      hclog.Logger
}

// New creates a CSS renderer.
func New() *Renderer {
	return &Renderer{logger: hclog.NewNullLogger()}
}

// WithTemplateDir sets the directory searched for custom templates.
func (r *Renderer) WithTemplateDir(dir string) *Renderer {
	r.templateDir = dir
	return r
}

// WithLogger sets the logger.
func (r *Renderer) WithLogger(logger hclog.Logger) *Renderer {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "css"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "CSS custom properties for every swatch and its text colour"
}

// RegisterFlags registers renderer-specific flags with the cobra command.
func (r *Renderer) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.prefix, "css.prefix", "", "Prefix for custom property names (e.g. 'device-')")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	if r.prefix != "" && render.Slug(r.prefix)+"-" != r.prefix && render.Slug(r.prefix) != r.prefix {
		return fmt.Errorf("invalid css prefix %q: use lower-case letters, digits and dashes", r.prefix)
	}
	return nil
}

// Loader returns the template loader used by this renderer.
func (r *Renderer) Loader() *tmplloader.Loader {
	return tmplloader.New(r.Name(), templates).
		WithCustomBase(r.templateDir).
		WithLogger(r.logger)
}

// Render creates palette.css.
func (r *Renderer) Render(result *palette.Result) (map[string][]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	tmplContent, _, err := r.Loader().Load(templateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(templateName).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data(result)); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{"palette.css": buf.Bytes()}, nil
}

// Data holds data for the CSS template.
type Data struct {
	Title    string
	Prefix   string
	Count    int
	Method   string
	Sections []SectionData
}

// SectionData is one device type's variables.
type SectionData struct {
	DeviceType string
	Slug       string
	Base       string
	Error      string
	Swatches   []palette.Swatch
}

func (r *Renderer) data(result *palette.Result) Data {
	d := Data{
		Title:  "devpalette",
		Prefix: r.prefix,
		Count:  result.Params.Count,
		Method: result.Params.Method.String(),
	}
	used := make(map[string]bool, len(result.Sections))
	for i, s := range result.Sections {
		sd := SectionData{
			DeviceType: commentSafe(s.DeviceType),
			Slug:       uniqueSlug(s.DeviceType, i, used),
			Base:       commentSafe(s.Base),
			Swatches:   s.Swatches,
		}
		if s.Err != nil {
			sd.Error = commentSafe(s.Err.Error())
		}
		d.Sections = append(d.Sections, sd)
	}
	return d
}

// uniqueSlug returns the slug for a label, falling back to "device-<n>" for
// labels without letters or digits and suffixing "-2", "-3"... on collisions.
func uniqueSlug(label string, index int, used map[string]bool) string {
	base := render.Slug(label)
	if base == "" {
		base = fmt.Sprintf("device-%d", index+1)
	}

	slug := base
	for n := 2; used[slug]; n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	used[slug] = true
	return slug
}

// commentSafe keeps user text from closing the surrounding CSS comment.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
