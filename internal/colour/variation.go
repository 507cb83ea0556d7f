package colour

import (
	"fmt"
	"math"
)

const (
	// MinVariations is the smallest count every generator accepts.
	MinVariations = 2

	// maxLightness stops the lightness sweep short of pure white.
	maxLightness = 95.0

	multiHueRange    = 60.0
	saturationOffset = 20.0
)

// Variations produces count variations of baseHex using the given method.
func Variations(method Method, baseHex string, count int) ([]string, error) {
	switch method {
	case MethodLightness:
		return LightnessVariations(baseHex, count)
	case MethodHue:
		return HueVariations(baseHex, count)
	case MethodMultiHue:
		return MultiHueVariations(baseHex, count)
	case MethodSaturation:
		return SaturationVariations(baseHex, count)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariationMethod, method)
	}
}

// LightnessVariations sweeps lightness linearly from the base colour's
// lightness to 95%, keeping hue and saturation.
func LightnessVariations(baseHex string, count int) ([]string, error) {
	base, err := prepare(baseHex, count)
	if err != nil {
		return nil, err
	}

	step := (maxLightness - base.L) / float64(count-1)
	return sweep(count, func(i float64) HSL {
		return HSL{H: base.H, S: base.S, L: base.L + i*step}
	}), nil
}

// HueVariations spaces count hues evenly around the colour wheel starting at
// the base hue.
func HueVariations(baseHex string, count int) ([]string, error) {
	base, err := prepare(baseHex, count)
	if err != nil {
		return nil, err
	}

	step := 360.0 / float64(count)
	return sweep(count, func(i float64) HSL {
		return HSL{H: NormaliseHue(base.H + i*step), S: base.S, L: base.L}
	}), nil
}

// MultiHueVariations spreads count hues over the 60 degree arc that starts at
// the base hue.
func MultiHueVariations(baseHex string, count int) ([]string, error) {
	base, err := prepare(baseHex, count)
	if err != nil {
		return nil, err
	}

	startHue := base.H
	endHue := math.Mod(base.H+multiHueRange, 360)

	var step float64
	if endHue >= startHue {
		step = (endHue - startHue) / float64(count-1)
	} else {
		step = ((360 - startHue) + endHue) / float64(count-1)
	}

	return sweep(count, func(i float64) HSL {
		return HSL{H: NormaliseHue(startHue + i*step), S: base.S, L: base.L}
	}), nil
}

// SaturationVariations sweeps saturation from the base value to
// (base+20) mod 100. Bases above 80% wrap, giving a decreasing sweep.
func SaturationVariations(baseHex string, count int) ([]string, error) {
	base, err := prepare(baseHex, count)
	if err != nil {
		return nil, err
	}

	endSaturation := math.Mod(base.S+saturationOffset, 100)
	step := (endSaturation - base.S) / float64(count-1)
	return sweep(count, func(i float64) HSL {
		return HSL{H: base.H, S: base.S + i*step, L: base.L}
	}), nil
}

func prepare(baseHex string, count int) (HSL, error) {
	if count < MinVariations {
		return HSL{}, fmt.Errorf("%w: %d (need at least %d)", ErrInvalidVariationCount, count, MinVariations)
	}
	return HexToHSL(baseHex)
}

func sweep(count int, at func(i float64) HSL) []string {
	colours := make([]string, 0, count)
	for i := range count {
		colours = append(colours, at(float64(i)).Hex())
	}
	return colours
}
