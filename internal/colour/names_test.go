package colour

import (
	"errors"
	"testing"
)

func TestResolveColour(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#2171B5", want: "#2171B5"},
		{in: "#abc", want: "#abc"},
		{in: "2171B5", want: "#2171B5"},
		{in: "fa0", want: "#fa0"},
		{in: "steelblue", want: "#4682b4"},
		{in: " SteelBlue ", want: "#4682b4"},
		{in: "", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "not-a-colour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveColour(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Fatalf("ResolveColour(%q) error = %v, want ErrInvalidColorFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveColour(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColour(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
