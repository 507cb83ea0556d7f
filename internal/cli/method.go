package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/devpalette/internal/colour"
)

var _ pflag.Value = (*methodValue)(nil)

// methodValue is a pflag.Value for the variation method, so an unknown
// method fails while flags are parsed.
type methodValue struct {
	method colour.Method
}

func (v *methodValue) String() string {
	return v.method.String()
}

func (v *methodValue) Set(s string) error {
	m, err := colour.ParseMethod(s)
	if err != nil {
		return err
	}
	v.method = m
	return nil
}

func (v *methodValue) Type() string {
	return "method"
}

// completeMethods offers method names for shell completion.
func completeMethods(prefix string) []string {
	var out []string
	for _, name := range colour.MethodNames() {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
			out = append(out, name)
		}
	}
	return out
}
