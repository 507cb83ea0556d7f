// Package preview shows palettes in an interactive terminal UI.
package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

// MaxCount caps the variation count reachable from the keyboard.
const MaxCount = 32

// Model is the preview state. Every change regenerates the whole palette.
type Model struct {
	bases  []palette.BaseColour
	params palette.Params
	result *palette.Result
}

// NewModel creates a model and builds its first palette.
func NewModel(bases []palette.BaseColour, params palette.Params) *Model {
	m := &Model{bases: bases, params: params}
	m.params.Count = clampCount(params.Count)
	m.rebuild()
	return m
}

// Params returns the current parameters.
func (m *Model) Params() palette.Params {
	return m.params
}

// Result returns the current palette.
func (m *Model) Result() *palette.Result {
	return m.result
}

// SetCount changes the variation count, clamped to [2, MaxCount].
func (m *Model) SetCount(n int) {
	n = clampCount(n)
	if n == m.params.Count {
		return
	}
	m.params.Count = n
	m.rebuild()
}

// CycleMethod switches to the next variation method.
func (m *Model) CycleMethod() {
	m.params.Method = m.params.Method.Next()
	m.rebuild()
}

// HandleKey applies a key press and reports whether the preview should quit.
func (m *Model) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp, tcell.KeyRight:
		m.SetCount(m.params.Count + 1)
	case tcell.KeyDown, tcell.KeyLeft:
		m.SetCount(m.params.Count - 1)
	case tcell.KeyTab:
		m.CycleMethod()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+', '=':
			m.SetCount(m.params.Count + 1)
		case '-', '_':
			m.SetCount(m.params.Count - 1)
		case 'm', 'M':
			m.CycleMethod()
		case '1', '2', '3', '4':
			m.params.Method = colour.Methods()[ev.Rune()-'1']
			m.rebuild()
		}
	}
	return false
}

func (m *Model) rebuild() {
	m.result = palette.Build(m.bases, m.params)
}

func clampCount(n int) int {
	return max(colour.MinVariations, min(MaxCount, n))
}
