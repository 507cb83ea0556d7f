package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/devpalette/internal/colour"
)

const (
	// DefaultCount is used when no usable variation count is supplied.
	DefaultCount = 2

	// MaxCount bounds the swatches generated per base colour.
	MaxCount = 256
)

// Params are the two inputs of a palette build.
type Params struct {
	Count  int           `json:"count"`
	Method colour.Method `json:"method"`
}

// DefaultParams returns two lightness variations.
func DefaultParams() Params {
	return Params{Count: DefaultCount, Method: colour.MethodLightness}
}

// Validate checks the count and method.
func (p Params) Validate() error {
	if p.Count < colour.MinVariations {
		return fmt.Errorf("%w: %d (need at least %d)", colour.ErrInvalidVariationCount, p.Count, colour.MinVariations)
	}
	if p.Count > MaxCount {
		return fmt.Errorf("%w: %d (at most %d)", colour.ErrInvalidVariationCount, p.Count, MaxCount)
	}
	if !p.Method.Valid() {
		return fmt.Errorf("%w: %s", colour.ErrUnknownVariationMethod, p.Method)
	}
	return nil
}

// ParseCount reads a variation count from user input. Empty or non-numeric
// input falls back to DefaultCount; numeric values are returned as-is so that
// Validate can reject them. Out of range integers saturate.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultCount
	}
	return n
}

// ParseParams builds Params from raw count and method strings, as submitted by
// a form or query string. An empty method selects lightness.
func ParseParams(count, method string) (Params, error) {
	p := DefaultParams()
	p.Count = ParseCount(count)

	if strings.TrimSpace(method) != "" {
		m, err := colour.ParseMethod(method)
		if err != nil {
			return p, err
		}
		p.Method = m
	}

	return p, p.Validate()
}
