package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/devpalette/internal/colour"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: DefaultCount},
		{in: "abc", want: DefaultCount},
		{in: "7", want: 7},
		{in: " 12 ", want: 12},
		{in: "0", want: 0},
		{in: "-4", want: -4},
		{in: "9223372036854775807", want: math.MaxInt},
		{in: "99999999999999999999", want: math.MaxInt},
		{in: "-99999999999999999999", want: math.MinInt},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		count   string
		method  string
		want    Params
		wantErr error
	}{
		{
			name: "defaults",
			want: Params{Count: 2, Method: colour.MethodLightness},
		},
		{
			name:   "explicit values",
			count:  "6",
			method: "multiHue",
			want:   Params{Count: 6, Method: colour.MethodMultiHue},
		},
		{
			name:    "count too small",
			count:   "1",
			method:  "hue",
			wantErr: colour.ErrInvalidVariationCount,
		},
		{
			name:   "count at limit",
			count:  "256",
			method: "saturation",
			want:   Params{Count: MaxCount, Method: colour.MethodSaturation},
		},
		{
			name:    "count too large",
			count:   "257",
			method:  "hue",
			wantErr: colour.ErrInvalidVariationCount,
		},
		{
			name:    "count overflows int",
			count:   "9223372036854775807",
			method:  "hue",
			wantErr: colour.ErrInvalidVariationCount,
		},
		{
			name:    "unknown method",
			count:   "4",
			method:  "sepia",
			wantErr: colour.ErrUnknownVariationMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParams(tt.count, tt.method)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseParams() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseParams() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	if err := (Params{Count: 2, Method: colour.MethodHue}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Params{Count: 3, Method: colour.Method(99)}).Validate(); !errors.Is(err, colour.ErrUnknownVariationMethod) {
		t.Errorf("Validate() error = %v, want ErrUnknownVariationMethod", err)
	}
}
