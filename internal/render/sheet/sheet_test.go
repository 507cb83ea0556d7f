package sheet

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

func TestRenderer_Render(t *testing.T) {
	r := New()
	result := palette.Build(palette.DefaultBaseColours(), palette.Params{Count: 4, Method: colour.MethodLightness})

	files, err := r.Render(result)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(files["palette.png"]))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	wantW, wantH := r.Size(result)
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
	if wantW != labelWidth+4*(defaultSwatchWidth+padding)+padding {
		t.Errorf("unexpected width %d", wantW)
	}
	if wantH != titleHeight+6*(defaultSwatchHeight+padding)+padding {
		t.Errorf("unexpected height %d", wantH)
	}
}

func TestRenderer_SwatchColours(t *testing.T) {
	r := New()
	result := palette.Build(palette.DefaultBaseColours()[:1], palette.Params{Count: 2, Method: colour.MethodHue})
	img := r.Draw(result)

	// Top-left corner of the first swatch is outside any glyph.
	got := img.RGBAAt(labelWidth+1, titleHeight+1)
	want := color.RGBA{R: 0x21, G: 0x71, B: 0xb5, A: 255}
	if got != want {
		t.Errorf("first swatch pixel = %v, want %v", got, want)
	}

	// Background outside the swatches.
	if got := img.RGBAAt(1, 1); got != background {
		t.Errorf("background pixel = %v, want %v", got, background)
	}
}

func TestRenderer_FailedSection(t *testing.T) {
	r := New()
	bases := []palette.BaseColour{{Hex: "#12", DeviceType: "Broken"}}
	result := palette.Build(bases, palette.DefaultParams())

	w, _ := r.Size(result)
	if w != labelWidth+defaultSwatchWidth+2*padding {
		t.Errorf("failed-only sheet should reserve one column, width = %d", w)
	}
	if _, err := r.Render(result); err != nil {
		t.Errorf("Render() error: %v", err)
	}
}

func TestRenderer_Validate(t *testing.T) {
	r := New()
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	r.swatchWidth = 20
	if err := r.Validate(); err == nil {
		t.Error("expected error for narrow swatch")
	}
	r.swatchWidth = defaultSwatchWidth
	r.swatchHeight = 4
	if err := r.Validate(); err == nil {
		t.Error("expected error for short swatch")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Pressure Controller", 10); got != "Pressure ~" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Sensor", 10); got != "Sensor" {
		t.Errorf("truncate() = %q", got)
	}
}
