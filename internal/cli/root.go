// Package cli provides the command-line interface for devpalette.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/config"
	"github.com/jmylchreest/devpalette/internal/palette"
	"github.com/jmylchreest/devpalette/internal/ui"
	"github.com/jmylchreest/devpalette/internal/version"
)

// app carries state shared by every command once flags are parsed.
type app struct {
	count       int
	method      methodValue
	bases       []string
	basesFile   string
	envFile     string
	templateDir string
	verbose     bool
	quiet       bool
	logLevel    string

	cfg     *config.Config
	logger  hclog.Logger
	printer *ui.Printer
}

// NewRootCmd builds the devpalette command tree.
func NewRootCmd() *cobra.Command {
	a := &app{method: methodValue{method: colour.MethodLightness}}

	rootCmd := &cobra.Command{
		Use:   "devpalette",
		Short: "Device-type colour palette generator",
		Long: `devpalette expands one base colour per device type into a set of visually
distinct variations (lightness, hue, multiHue or saturation sweeps) and renders
them as HTML, JSON, CSS, PNG or terminal swatches, serves them over HTTP, or
previews them interactively.

Each swatch carries a text colour: black on light swatches, white otherwise.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&a.count, "count", "n", palette.DefaultCount, fmt.Sprintf("number of variations per base colour (2 to %d)", palette.MaxCount))
	flags.VarP(&a.method, "method", "m", "variation method ("+strings.Join(colour.MethodNames(), ", ")+")")
	flags.StringArrayVar(&a.bases, "base", nil, "base colour as 'Device Type=#hex' (repeatable; replaces the defaults)")
	flags.StringVar(&a.basesFile, "bases-file", "", "load base colours from a JSON or text file")
	flags.StringVar(&a.envFile, "env-file", "", "read DEVPALETTE_* settings from this file (default .env if present)")
	flags.StringVar(&a.templateDir, "template-dir", "", "directory with custom templates (default ~/.config/devpalette/templates)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	_ = rootCmd.RegisterFlagCompletionFunc("method", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeMethods(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
		newPreviewCmd(a),
		newBundleCmd(a),
		newTemplatesCmd(a),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and validates the result.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile, os.Getenv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = a.count
	}
	if flags.Changed("method") {
		cfg.Method = a.method.String()
	}
	if flags.Changed("base") {
		cfg.Bases = a.bases
	}
	if flags.Changed("bases-file") {
		cfg.BasesFile = a.basesFile
	}
	if flags.Changed("template-dir") {
		cfg.TemplateDir = a.templateDir
	}
	switch {
	case flags.Changed("log-level"):
		cfg.LogLevel = strings.ToLower(a.logLevel)
	case a.verbose:
		cfg.LogLevel = "debug"
	case a.quiet:
		cfg.LogLevel = "error"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	stderr := cmd.ErrOrStderr()
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "devpalette",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: stderr,
		Color:  hclog.AutoColor,
	})

	out := cmd.OutOrStdout()
	if a.quiet {
		out = io.Discard
	}
	_, tty := terminalInfo(out)
	a.printer = ui.New(out, tty)

	a.logger.Debug("configuration loaded",
		"count", cfg.Count,
		"method", cfg.Method,
		"bases", len(cfg.Bases),
		"bases_file", cfg.BasesFile,
		"template_dir", cfg.TemplateDir,
	)
	return nil
}

// params returns the validated palette parameters.
func (a *app) params() palette.Params {
	// Validate in setup has already rejected bad values.
	p, _ := a.cfg.Params()
	return p
}

// build resolves the base colours and generates the palette.
func (a *app) build() (*palette.Result, error) {
	bases, err := a.cfg.BaseColours()
	if err != nil {
		return nil, err
	}

	result := palette.Build(bases, a.params())
	for _, s := range result.Failed() {
		a.logger.Warn("base colour could not be expanded", "device", s.DeviceType, "base", s.Base, "error", s.Err)
	}
	a.logger.Debug("palette built", "sections", len(result.Sections), "failed", len(result.Failed()))
	return result, nil
}

// terminalInfo reports the width of w and whether it is a terminal.
func terminalInfo(w io.Writer) (width int, tty bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 - file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, true
	}
	return width, true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		// Version output needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
