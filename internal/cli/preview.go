package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview palettes interactively in the terminal",
		Long: `Open a full-screen preview of every device palette.

Keys: +/- or arrows change the count, m or tab cycles the method, 1-4 pick a
method directly, q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bases, err := a.cfg.BaseColours()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
			defer stop()

			return preview.Run(ctx, preview.NewModel(bases, a.params()), a.logger)
		},
	}
}
