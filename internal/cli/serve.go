package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen, metricsListen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette page and JSON API over HTTP",
		Long: `Serve the interactive palette page on / (count and method are read from the
query string), the JSON document on /api/palette, a health check on /healthz
and Prometheus metrics on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Listen = listen
			}
			if cmd.Flags().Changed("metrics-listen") {
				a.cfg.MetricsListen = metricsListen
			}

			bases, err := a.cfg.BaseColours()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.printer.Info("serving palettes on http://%s/", a.cfg.Listen)
			srv := server.New(server.Options{
				Listen:          a.cfg.Listen,
				MetricsListen:   a.cfg.MetricsListen,
				ShutdownTimeout: a.cfg.ShutdownTimeout,
				Bases:           bases,
				TemplateDir:     a.cfg.TemplateDir,
				Logger:          a.logger,
			})
			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.printer.Success("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default 127.0.0.1:8080)")
	cmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "separate address for /metrics (default: same as --listen)")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
