package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	tmplloader "github.com/jmylchreest/devpalette/internal/render/template"
)

func newTemplatesCmd(a *app) *cobra.Command {
	r := newRenderers()

	loaders := func() []*tmplloader.Loader {
		r.configure(a)
		return []*tmplloader.Loader{r.html.Loader(), r.css.Loader()}
	}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage custom HTML and CSS templates",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and where overrides are read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := NewTable("Template", "Override", "Path")
			for _, loader := range loaders() {
				names, err := loader.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, name := range names {
					_, custom, err := loader.Load(name)
					if err != nil {
						return err
					}
					state := "no"
					if custom {
						state = "yes"
					}
					table.AddRow(name, state, loader.CustomPath(name))
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the built-in templates to the template directory for editing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var errs []error
			for _, loader := range loaders() {
				paths, err := loader.DumpAllTemplates(force)
				for _, p := range paths {
					a.printer.Success("wrote %s", p)
				}
				if err != nil {
					errs = append(errs, err)
				}
			}
			if len(errs) > 0 {
				for _, err := range errs {
					a.printer.Warning("%v", err)
				}
				return fmt.Errorf("some templates were not written")
			}
			return nil
		},
	}
	dumpCmd.Flags().BoolVar(&force, "force", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}
