package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/jmylchreest/devpalette/internal/colour"
)

const (
	swatchWidth = 9
	labelWidth  = 22
)

var (
	headerStyle = tcell.StyleDefault.Bold(true)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Draw paints the model onto the screen. Sections and swatches that do not
// fit are clipped.
func Draw(screen tcell.Screen, m *Model) {
	screen.Clear()
	width, height := screen.Size()

	p := m.Params()
	drawString(screen, 0, 0, width, fmt.Sprintf("devpalette  count %d  method %s", p.Count, p.Method), headerStyle)
	drawString(screen, 0, 1, width, "+/- count   m/tab method   1-4 pick method   q quit", helpStyle)

	y := 3
	for _, s := range m.Result().Sections {
		if y >= height {
			break
		}

		drawString(screen, 0, y, labelWidth-1, s.DeviceType, tcell.StyleDefault)

		if !s.OK() {
			drawString(screen, labelWidth, y, width-labelWidth, s.Err.Error(), errorStyle)
			y += 2
			continue
		}

		x := labelWidth
		for _, sw := range s.Swatches {
			if x+swatchWidth > width {
				break
			}
			style, ok := swatchStyle(sw.Hex, sw.Text)
			if !ok {
				continue
			}
			drawString(screen, x, y, swatchWidth, fmt.Sprintf("%-*s", swatchWidth, " "+sw.Hex), style)
			x += swatchWidth + 1
		}
		y += 2
	}

	screen.Show()
}

func swatchStyle(bgHex, fgHex string) (tcell.Style, bool) {
	bg, err := colour.ParseHex(bgHex)
	if err != nil {
		return tcell.StyleDefault, false
	}
	fg, err := colour.ParseHex(fgHex)
	if err != nil {
		return tcell.StyleDefault, false
	}
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))).
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))), true
}

func drawString(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if i >= maxWidth {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
