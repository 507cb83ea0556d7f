package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/bundle"
	"github.com/jmylchreest/devpalette/internal/ui"
)

func newBundleCmd(a *app) *cobra.Command {
	var (
		list    bool
		formats []string
	)
	r := newRenderers()

	cmd := &cobra.Command{
		Use:   "bundle ARCHIVE",
		Short: "Pack rendered palettes into an archive, or list an archive",
		Long: `Render the palette in the selected formats (all by default) and pack the
files into ARCHIVE. The archive type follows the extension: .tar.gz, .tar.xz
or .zip. With --list, print the entries of an existing archive instead.`,
		Example: `  devpalette bundle palettes.zip -n 5 -m multiHue
  devpalette bundle --list palettes.zip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if list {
				entries, err := bundle.ReadFile(path)
				if err != nil {
					return err
				}
				table := NewTable("Name", "Size")
				table.AlignRight(1)
				for _, e := range entries {
					table.AddRow(e.Name, ui.FormatBytes(e.Size))
				}
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
				return nil
			}

			r.configure(a)
			selected, err := r.selectRenderers(formats)
			if err != nil {
				return err
			}
			result, err := a.build()
			if err != nil {
				return err
			}
			files, err := renderAll(result, selected)
			if err != nil {
				return err
			}
			return writeBundle(a, &generateOptions{bundlePath: path}, files)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the entries of ARCHIVE")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"all"}, "formats to include (html, json, css, png, text, all)")
	for _, renderer := range r.registry.All() {
		renderer.RegisterFlags(cmd)
	}
	return cmd
}
