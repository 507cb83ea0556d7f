package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

func newInspectCmd(a *app) *cobra.Command {
	var noSwatch bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the generated colours with contrast and distance details",
		Long: `Print a table per device type listing each generated colour with its HSL
values, the chosen text colour, the WCAG contrast ratio of that text on the
swatch, the perceptual distance (CIEDE2000) to the previous swatch and the hue
offset from the base colour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.build()
			if err != nil {
				return err
			}
			_, tty := terminalInfo(cmd.OutOrStdout())
			return writeInspection(cmd.OutOrStdout(), result, tty && !noSwatch)
		},
	}

	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "omit the coloured swatch column")
	return cmd
}

func writeInspection(w io.Writer, result *palette.Result, swatches bool) error {
	fmt.Fprintf(w, "%d %s variations per device type\n", result.Params.Count, result.Params.Method)

	for _, s := range result.Sections {
		fmt.Fprintf(w, "\n%s (%s)\n", s.DeviceType, s.Base)
		if !s.OK() {
			fmt.Fprintf(w, "  error: %v\n", s.Err)
			continue
		}

		table, err := inspectionTable(s, swatches)
		if err != nil {
			return err
		}
		fmt.Fprint(w, table.Render())

		if minStep, err := colour.MinStepDistance(s.Hexes()); err == nil {
			fmt.Fprintf(w, "min ΔE between neighbours: %.2f\n", minStep)
		}
	}
	return nil
}

func inspectionTable(s palette.Section, swatch bool) (*Table, error) {
	headers := []string{"#", "Hex", "H", "S", "L", "Text", "Contrast", "ΔE prev", "Hue offset"}
	if swatch {
		headers = append([]string{"Swatch"}, headers...)
	}
	table := NewTable(headers...)

	offset := 0
	if swatch {
		offset = 1
	}
	table.AlignRight(offset, offset+2, offset+3, offset+4, offset+6, offset+7, offset+8)

	baseHSL, err := colour.HexToHSL(s.Base)
	if err != nil {
		return nil, err
	}

	for i, sw := range s.Swatches {
		bg, err := colour.ParseHex(sw.Hex)
		if err != nil {
			return nil, err
		}
		fg, err := colour.ParseHex(sw.Text)
		if err != nil {
			return nil, err
		}

		deltaE := "-"
		if i > 0 {
			d, err := colour.Distance(s.Swatches[i-1].Hex, sw.Hex)
			if err != nil {
				return nil, err
			}
			deltaE = fmt.Sprintf("%.2f", d)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			sw.Hex,
			fmt.Sprintf("%.1f", sw.HSL.H),
			fmt.Sprintf("%.1f", sw.HSL.S),
			fmt.Sprintf("%.1f", sw.HSL.L),
			sw.Text,
			fmt.Sprintf("%.2f", colour.ContrastRatio(bg.Color(), fg.Color())),
			deltaE,
			fmt.Sprintf("%.1f", colour.ForwardHueDistance(baseHSL.H, sw.HSL.H)),
		}
		if swatch {
			row = append([]string{colour.ColourPreview(bg, 6)}, row...)
		}
		table.AddRow(row...)
	}
	return table, nil
}
