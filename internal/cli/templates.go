package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pyforge-dev/pyforge/internal/config"
	"github.com/pyforge-dev/pyforge/internal/template"
)

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesInitCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage project templates",
	Long:  `List, inspect and install the templates used by 'create --option template'.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := template.NewOSStore(config.Current().TemplatesDir)
		ids, err := store.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			printer.Infof("No templates in %s", store.Location())
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show what a template creates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := template.NewOSStore(config.Current().TemplatesDir)
		raw, err := store.Load(args[0])
		if err != nil {
			return err
		}
		d, err := template.Parse(raw)
		if err != nil {
			return fmt.Errorf("template %q: %w", args[0], err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Template: %s\n", args[0])
		fmt.Fprintf(w, "Files:        %s\n", joinOrNone(d.Files()))
		fmt.Fprintf(w, "Subdir files: %s\n", joinOrNone(d.SubdirFiles()))
		fmt.Fprintf(w, "Services:     %s\n", joinOrNone(d.Services()))

		cfg, err := yaml.Marshal(d.Config())
		if err != nil {
			return fmt.Errorf("encoding template config: %w", err)
		}
		fmt.Fprintf(w, "Config:\n%s", indent(string(cfg), "  "))
		return nil
	},
}

var templatesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the built-in templates",
	Long:  `Write the built-in templates to the templates directory. Existing files are left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.Current().TemplatesDir
		res, err := template.SeedDir(dir)
		if err != nil {
			return err
		}
		for _, f := range res.Written {
			printer.Infof("Wrote %s", f)
		}
		for _, f := range res.Skipped {
			printer.Debugf("kept existing %s", f)
		}
		printer.Successf("Templates installed in %s (%d written, %d kept)", dir, len(res.Written), len(res.Skipped))
		return nil
	},
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(l)
	}
	return b.String()
}
