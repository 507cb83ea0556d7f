package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/devpalette/internal/bundle"
	"github.com/jmylchreest/devpalette/internal/render"
	"github.com/jmylchreest/devpalette/internal/security"
	"github.com/jmylchreest/devpalette/internal/ui"
)

type generateOptions struct {
	formats    []string
	outputDir  string
	dryRun     bool
	bundlePath string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	r := newRenderers()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render device palettes to files",
		Long: `Generate the palette for every base colour and render it in one or more
formats. Text and JSON output go to stdout unless --output-dir is set.`,
		Example: `  # Browser page with four hue variations per device
  devpalette generate -n 4 -m hue --output-dir out

  # Everything, packed into one archive
  devpalette generate --format all --bundle palettes.tar.xz

  # Terminal swatches for custom base colours
  devpalette generate --format text --base "Valve=#2171B5" --base "Pump=tomato"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, a, r, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", []string{"html"}, "output formats (html, json, css, png, text, all)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to write files to")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without writing files")
	cmd.Flags().StringVar(&opts.bundlePath, "bundle", "", "write all files into an archive (.tar.gz, .tar.xz or .zip)")

	for _, renderer := range r.registry.All() {
		renderer.RegisterFlags(cmd)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, r *renderers, opts *generateOptions) error {
	r.configure(a)

	selected, err := r.selectRenderers(opts.formats)
	if err != nil {
		return err
	}

	toStdout := opts.outputDir == "" && opts.bundlePath == "" && streamable(selected)
	if toStdout {
		width, tty := terminalInfo(cmd.OutOrStdout())
		r.text.WithTerminal(width, tty)
	}

	result, err := a.build()
	if err != nil {
		return err
	}

	files, err := renderAll(result, selected)
	if err != nil {
		return err
	}

	switch {
	case opts.bundlePath != "":
		return writeBundle(a, opts, files)
	case toStdout:
		for _, name := range sortedFileNames(files) {
			if _, err := cmd.OutOrStdout().Write(files[name]); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
		}
		return nil
	}

	dir := opts.outputDir
	if dir == "" {
		dir = "."
	}
	if err := writeFiles(a.printer, dir, files, opts.dryRun); err != nil {
		return err
	}

	if failed := len(result.Failed()); failed > 0 {
		a.printer.Warning("%d of %d device types could not be generated", failed, len(result.Sections))
	}
	return nil
}

// streamable reports whether every renderer produces text suitable for stdout.
func streamable(selected []render.Renderer) bool {
	for _, renderer := range selected {
		if name := renderer.Name(); name != "text" && name != "json" {
			return false
		}
	}
	return true
}

func writeFiles(printer *ui.Printer, dir string, files map[string][]byte, dryRun bool) error {
	if !dryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - output directory is user-visible
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, name := range sortedFileNames(files) {
		path, err := security.SafeJoin(dir, name)
		if err != nil {
			return fmt.Errorf("refusing to write %s: %w", name, err)
		}

		if dryRun {
			printer.Info("would write %s (%s)", path, ui.FormatBytes(int64(len(files[name]))))
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 - output directory is user-visible
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil { // #nosec G306 - generated palettes are not secret
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printer.File(path, len(files[name]))
	}
	return nil
}

func writeBundle(a *app, opts *generateOptions, files map[string][]byte) error {
	if _, err := bundle.FormatFromPath(opts.bundlePath); err != nil {
		return err
	}

	if opts.dryRun {
		for _, e := range bundle.List(files) {
			a.printer.Info("would bundle %s (%s)", e.Name, ui.FormatBytes(e.Size))
		}
		return nil
	}

	if dir := filepath.Dir(opts.bundlePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - output directory is user-visible
			return fmt.Errorf("failed to create bundle directory: %w", err)
		}
	}

	if err := bundle.WriteFile(opts.bundlePath, files, a.logger.Named("bundle")); err != nil {
		return err
	}

	info, err := os.Stat(opts.bundlePath)
	if err != nil {
		return fmt.Errorf("failed to stat bundle: %w", err)
	}
	a.printer.File(opts.bundlePath, int(info.Size()))
	return nil
}
