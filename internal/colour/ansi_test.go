package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 33, G: 113, B: 181}, 4)
	if !strings.HasPrefix(got, "\033[48;2;33;113;181m") {
		t.Errorf("missing background sequence: %q", got)
	}
	if !strings.Contains(got, "    ") || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("unexpected block: %q", got)
	}

	if got := ColourPreview(RGB{}, 0); strings.Count(got, " ") != defaultWidth {
		t.Errorf("default width not applied: %q", got)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	tests := []struct {
		name   string
		bg     RGB
		wantFg string
	}{
		{name: "light swatch gets black text", bg: RGB{R: 240, G: 240, B: 240}, wantFg: "\033[38;2;0;0;0m"},
		{name: "dark swatch gets white text", bg: RGB{R: 33, G: 113, B: 181}, wantFg: "\033[38;2;255;255;255m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColourPreviewWithText(tt.bg, "#abc", 8)
			if !strings.Contains(got, tt.wantFg) {
				t.Errorf("ColourPreviewWithText() = %q, want foreground %q", got, tt.wantFg)
			}
			if !strings.Contains(got, "  #abc  ") {
				t.Errorf("text not centred: %q", got)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	if got := fitText("abcdefghij", 4); got != "abcd" {
		t.Errorf("fitText truncation = %q", got)
	}
	if got := fitText("ab", 5); got != " ab  " {
		t.Errorf("fitText padding = %q", got)
	}
}

func TestFormatColourWithPreview(t *testing.T) {
	got := FormatColourWithPreview(RGB{R: 255, G: 166}, 2)
	if !strings.HasSuffix(got, " #ffa600") {
		t.Errorf("FormatColourWithPreview() = %q", got)
	}
}
