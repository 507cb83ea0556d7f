// Package html renders a palette as a standalone browser page.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
	tmplloader "github.com/jmylchreest/devpalette/internal/render/template"
)

//go:embed *.tmpl
var templates embed.FS

const (
	templateName = "palette.html.tmpl"
	defaultTitle = "Device Palettes"
)

// Renderer implements render.Renderer for HTML pages.
type Renderer struct {
	title       string
	templateDir string
	logger      hclog.Logger
}

// PageOptions controls the extras shown on a page served over HTTP.
type PageOptions struct {
	// Interactive adds the count/method form.
	Interactive bool

	// Banner is shown above the palettes, typically a parameter error.
	Banner string
}

// New creates an HTML renderer.
func New() *Renderer {
	return &Renderer{
		title:  defaultTitle,
		logger: hclog.NewNullLogger(),
	}
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
	return "html"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "Standalone HTML page with one section of colour boxes per device type"
}

// RegisterFlags registers renderer-specific flags with the cobra command.
func (r *Renderer) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.title, "html.title", defaultTitle, "Page title")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	if r.title == "" {
		return fmt.Errorf("html title cannot be empty")
	}
	return nil
}

// Loader returns the template loader used by this renderer.
func (r *Renderer) Loader() *tmplloader.Loader {
	return tmplloader.New(r.Name(), templates).
		WithCustomBase(r.templateDir).
		WithLogger(r.logger)
}

// Render creates palette.html.
func (r *Renderer) Render(result *palette.Result) (map[string][]byte, error) {
	page, err := r.Page(result, PageOptions{})
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"palette.html": page}, nil
}

// Page renders the page with the given options.
func (r *Renderer) Page(result *palette.Result, opts PageOptions) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	tmplContent, _, err := r.Loader().Load(templateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(templateName).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.pageData(result, opts)); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return buf.Bytes(), nil
}

// PageData holds data for the HTML template.
type PageData struct {
	Title       string
	Banner      string
	Interactive bool
	Count       int
	MaxCount    int
	Methods     []MethodOption
	Sections    []SectionData
}

// MethodOption is one entry in the method select.
type MethodOption struct {
	Name     string
	Selected bool
}

// SectionData holds one device type's boxes.
type SectionData struct {
	DeviceType string
	Base       string
	Error      string
	Swatches   []SwatchData
}

// SwatchData is one colour box.
type SwatchData struct {
	Hex   string
	Style template.CSS
}

func (r *Renderer) pageData(result *palette.Result, opts PageOptions) PageData {
	data := PageData{
		Title:       r.title,
		Banner:      opts.Banner,
		Interactive: opts.Interactive,
		Count:       result.Params.Count,
		MaxCount:    palette.MaxCount,
		Sections:    make([]SectionData, 0, len(result.Sections)),
	}

	for _, m := range colour.Methods() {
		data.Methods = append(data.Methods, MethodOption{
			Name:     m.String(),
			Selected: m == result.Params.Method,
		})
	}

	for _, s := range result.Sections {
		sd := SectionData{DeviceType: s.DeviceType, Base: s.Base}
		if s.Err != nil {
			sd.Error = s.Err.Error()
		}
		for _, sw := range s.Swatches {
			sd.Swatches = append(sd.Swatches, SwatchData{
				Hex: sw.Hex,
				// Swatch colours come from HSLToHex and the fixed text colours.
				Style: template.CSS(fmt.Sprintf("background-color: %s; color: %s", sw.Hex, sw.Text)), // #nosec G203
			})
		}
		data.Sections = append(data.Sections, sd)
	}

	return data
}
