package colour

import (
	"errors"
	"regexp"
	"testing"
)

var (
	hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

	testBases = []string{"#2171B5", "#016C59", "#7A5195", "#BC5090", "#EF5675", "#FFA600"}
)

// Recomputing HSL from rounded hex output drifts slightly from the exact sweep.
const (
	lightnessTolerance  = 0.6
	saturationTolerance = 1.5
	hueTolerance        = 2.5
)

func mustHSL(t *testing.T, hex string) HSL {
	t.Helper()
	hsl, err := HexToHSL(hex)
	if err != nil {
		t.Fatalf("HexToHSL(%q): %v", hex, err)
	}
	return hsl
}

func TestVariationsLengthAndFormat(t *testing.T) {
	for _, method := range Methods() {
		for _, base := range testBases {
			for count := MinVariations; count <= 20; count++ {
				got, err := Variations(method, base, count)
				if err != nil {
					t.Fatalf("%s(%s, %d) error: %v", method, base, count, err)
				}
				if len(got) != count {
					t.Fatalf("%s(%s, %d) returned %d colours", method, base, count, len(got))
				}
				for _, hex := range got {
					if !hexPattern.MatchString(hex) {
						t.Fatalf("%s(%s, %d) produced malformed hex %q", method, base, count, hex)
					}
				}
			}
		}
	}
}

func TestVariationsRejectSmallCount(t *testing.T) {
	for _, method := range Methods() {
		for _, count := range []int{1, 0, -3} {
			got, err := Variations(method, "#2171B5", count)
			if !errors.Is(err, ErrInvalidVariationCount) {
				t.Errorf("%s count=%d error = %v, want ErrInvalidVariationCount", method, count, err)
			}
			if got != nil {
				t.Errorf("%s count=%d returned %v, want nil", method, count, got)
			}
		}
	}
}

func TestVariationsRejectBadBase(t *testing.T) {
	for _, method := range Methods() {
		_, err := Variations(method, "#12", 3)
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("%s error = %v, want ErrInvalidColorFormat", method, err)
		}
	}
}

func TestVariationsUnknownMethod(t *testing.T) {
	_, err := Variations(Method(42), "#2171B5", 3)
	if !errors.Is(err, ErrUnknownVariationMethod) {
		t.Errorf("error = %v, want ErrUnknownVariationMethod", err)
	}
}

func TestVariationsCountTwo(t *testing.T) {
	for _, method := range Methods() {
		got, err := Variations(method, "#7A5195", 2)
		if err != nil {
			t.Fatalf("%s error: %v", method, err)
		}
		if len(got) != 2 {
			t.Errorf("%s returned %d colours, want 2", method, len(got))
		}
	}
}

func TestLightnessVariations(t *testing.T) {
	// Pressure Controller blue, three steps.
	base := mustHSL(t, "#2171B5")
	got, err := LightnessVariations("#2171B5", 3)
	if err != nil {
		t.Fatal(err)
	}

	wantL := []float64{base.L, (base.L + 95) / 2, 95}
	for i, hex := range got {
		hsl := mustHSL(t, hex)
		if !approxEqual(hsl.L, wantL[i], lightnessTolerance) {
			t.Errorf("step %d (%s) lightness = %.2f, want %.2f", i, hex, hsl.L, wantL[i])
		}
	}

	if got[0] == got[1] || got[1] == got[2] {
		t.Errorf("expected distinct colours, got %v", got)
	}
	assertChannelsWithin(t, "#2171B5", got[0], 1)
}

func TestLightnessVariationsLastStep(t *testing.T) {
	for _, base := range testBases {
		for _, count := range []int{2, 5, 11} {
			got, err := LightnessVariations(base, count)
			if err != nil {
				t.Fatal(err)
			}
			first := mustHSL(t, got[0])
			last := mustHSL(t, got[count-1])
			if want := mustHSL(t, base).L; !approxEqual(first.L, want, lightnessTolerance) {
				t.Errorf("%s/%d first lightness = %.2f, want %.2f", base, count, first.L, want)
			}
			if !approxEqual(last.L, 95, lightnessTolerance) {
				t.Errorf("%s/%d last lightness = %.2f, want 95", base, count, last.L)
			}
		}
	}
}

func TestHueVariations(t *testing.T) {
	// Mesh/Gateway amber, four steps 90 degrees apart.
	base := mustHSL(t, "#FFA600")
	got, err := HueVariations("#FFA600", 4)
	if err != nil {
		t.Fatal(err)
	}

	for i, hex := range got {
		hsl := mustHSL(t, hex)
		want := NormaliseHue(base.H + float64(i)*90)
		if d := angularDiff(want, hsl.H); !approxEqual(d, 0, hueTolerance) {
			t.Errorf("step %d (%s) hue = %.2f, want %.2f", i, hex, hsl.H, want)
		}
		if !approxEqual(hsl.S, base.S, saturationTolerance) || !approxEqual(hsl.L, base.L, lightnessTolerance) {
			t.Errorf("step %d (%s) changed saturation/lightness: %+v vs %+v", i, hex, hsl, base)
		}
	}
}

func TestHueVariationsEvenSpacing(t *testing.T) {
	for _, base := range testBases {
		for _, count := range []int{2, 3, 6, 12} {
			got, err := HueVariations(base, count)
			if err != nil {
				t.Fatal(err)
			}
			baseHue := mustHSL(t, base).H
			for i, hex := range got {
				want := NormaliseHue(baseHue + float64(i)*360/float64(count))
				if d := angularDiff(want, mustHSL(t, hex).H); !approxEqual(d, 0, hueTolerance) {
					t.Errorf("%s/%d step %d hue off by %.2f", base, count, i, d)
				}
			}
		}
	}
}

func TestMultiHueVariationsStayInArc(t *testing.T) {
	for _, base := range testBases {
		for count := MinVariations; count <= 12; count++ {
			got, err := MultiHueVariations(base, count)
			if err != nil {
				t.Fatal(err)
			}
			baseHue := mustHSL(t, base).H
			for i, hex := range got {
				d := angularDiff(baseHue, mustHSL(t, hex).H)
				if d < -hueTolerance || d > 60+hueTolerance {
					t.Errorf("%s/%d step %d lies %.2f degrees from base, outside [0,60]", base, count, i, d)
				}
			}
			last := angularDiff(baseHue, mustHSL(t, got[count-1]).H)
			if !approxEqual(last, 60, hueTolerance) {
				t.Errorf("%s/%d last step at %.2f degrees, want 60", base, count, last)
			}
		}
	}
}

func TestMultiHueVariationsWrapAround(t *testing.T) {
	// Base hue near 330 degrees: the arc crosses 0.
	base := HSLToHex(330, 80, 50)
	got, err := MultiHueVariations(base, 4)
	if err != nil {
		t.Fatal(err)
	}
	baseHue := mustHSL(t, base).H
	for i, hex := range got {
		want := float64(i) * 20
		if d := angularDiff(baseHue, mustHSL(t, hex).H); !approxEqual(d, want, hueTolerance) {
			t.Errorf("step %d at %.2f degrees, want %.2f", i, d, want)
		}
	}
}

func TestSaturationVariations(t *testing.T) {
	base := mustHSL(t, "#2171B5")
	got, err := SaturationVariations("#2171B5", 5)
	if err != nil {
		t.Fatal(err)
	}

	first := mustHSL(t, got[0])
	last := mustHSL(t, got[len(got)-1])
	if !approxEqual(first.S, base.S, saturationTolerance) {
		t.Errorf("first saturation = %.2f, want %.2f", first.S, base.S)
	}
	if want := base.S + 20; !approxEqual(last.S, want, saturationTolerance) {
		t.Errorf("last saturation = %.2f, want %.2f", last.S, want)
	}
}

func TestSaturationVariationsWrapDecreasing(t *testing.T) {
	// Fully saturated amber wraps to (100+20) mod 100 = 20.
	got, err := SaturationVariations("#FFA600", 5)
	if err != nil {
		t.Fatal(err)
	}

	prev := 101.0
	for i, hex := range got {
		s := mustHSL(t, hex).S
		if s > prev+saturationTolerance {
			t.Errorf("step %d saturation %.2f rose above previous %.2f", i, s, prev)
		}
		prev = s
	}
	if last := mustHSL(t, got[len(got)-1]).S; !approxEqual(last, 20, saturationTolerance) {
		t.Errorf("last saturation = %.2f, want 20", last)
	}
}
