// Package sheet renders a palette as a PNG swatch sheet.
package sheet

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

const (
	defaultSwatchWidth  = 96
	defaultSwatchHeight = 48
	labelWidth          = 168
	padding             = 8
	titleHeight         = 24
)

var (
	background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	ink        = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	errorInk   = color.RGBA{R: 211, G: 47, B: 47, A: 255}
)

// Renderer implements render.Renderer for PNG swatch sheets.
type Renderer struct {
	swatchWidth  int
	swatchHeight int
}

// New creates a PNG renderer.
func New() *Renderer {
	return &Renderer{
		swatchWidth:  defaultSwatchWidth,
		swatchHeight: defaultSwatchHeight,
	}
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "png"
}

// Description returns the renderer description.
func (r *Renderer) Description() string {
	return "PNG swatch sheet with one row per device type"
}

// RegisterFlags registers renderer-specific flags with the cobra command.
func (r *Renderer) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.swatchWidth, "png.swatch-width", defaultSwatchWidth, "Swatch width in pixels")
	cmd.Flags().IntVar(&r.swatchHeight, "png.swatch-height", defaultSwatchHeight, "Swatch height in pixels")
}

// Validate checks if the renderer configuration is valid.
func (r *Renderer) Validate() error {
	// Hex labels are 7 glyphs of basicfont's 7x13 face.
	if r.swatchWidth < 7*7+4 {
		return fmt.Errorf("png swatch width must be at least %d, got %d", 7*7+4, r.swatchWidth)
	}
	if r.swatchHeight < 16 {
		return fmt.Errorf("png swatch height must be at least 16, got %d", r.swatchHeight)
	}
	return nil
}

// Render creates palette.png.
func (r *Renderer) Render(result *palette.Result) (map[string][]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	img := r.Draw(result)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return map[string][]byte{"palette.png": buf.Bytes()}, nil
}

// Size returns the sheet dimensions for the result.
func (r *Renderer) Size(result *palette.Result) (width, height int) {
	columns := 1
	for _, s := range result.Sections {
		columns = max(columns, len(s.Swatches))
	}
	width = labelWidth + columns*(r.swatchWidth+padding) + padding
	height = titleHeight + len(result.Sections)*(r.swatchHeight+padding) + padding
	return width, height
}

// Draw paints the swatch sheet.
func (r *Renderer) Draw(result *palette.Result) *image.RGBA {
	width, height := r.Size(result)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	title := fmt.Sprintf("%d %s variations", result.Params.Count, result.Params.Method)
	drawText(img, padding, titleHeight-8, title, ink)

	for row, s := range result.Sections {
		top := titleHeight + row*(r.swatchHeight+padding)
		baseline := top + r.swatchHeight/2 + 4

		drawText(img, padding, baseline, truncate(s.DeviceType, (labelWidth-padding)/7-1), ink)

		if !s.OK() {
			drawText(img, labelWidth, baseline, "invalid base colour "+s.Base, errorInk)
			continue
		}

		for col, sw := range s.Swatches {
			left := labelWidth + col*(r.swatchWidth+padding)
			rect := image.Rect(left, top, left+r.swatchWidth, top+r.swatchHeight)

			rgb, err := colour.ParseHex(sw.Hex)
			if err != nil {
				continue
			}
			draw.Draw(img, rect, image.NewUniform(rgb.Color()), image.Point{}, draw.Src)

			fg := color.Color(color.White)
			if sw.Text == colour.DarkText {
				fg = color.Black
			}
			textLeft := left + (r.swatchWidth-len(sw.Hex)*7)/2
			drawText(img, textLeft, baseline, sw.Hex, fg)
		}
	}

	return img
}

func drawText(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
