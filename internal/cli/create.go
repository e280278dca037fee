package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pyforge-dev/pyforge/internal/config"
	"github.com/pyforge-dev/pyforge/internal/pipeline"
	"github.com/pyforge-dev/pyforge/internal/prompt"
	"github.com/pyforge-dev/pyforge/internal/scaffold"
	"github.com/pyforge-dev/pyforge/internal/service"
	"github.com/pyforge-dev/pyforge/internal/template"
	"github.com/pyforge-dev/pyforge/internal/toolchain"
)

// Generation options offered by create.
const (
	optionManual   = "manual"
	optionTemplate = "template"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var (
	createOption   string
	createTemplate string
	createServices []string
	createDir      string
)

// Collaborator constructors, replaced in tests.
var (
	newRepoInitializer = func() service.RepoInitializer { return toolchain.GitInitializer{} }
	newEnvCreator      = func(python string, out, errOut io.Writer) service.EnvCreator {
		return &toolchain.VenvCreator{Python: python, Stdout: out, Stderr: errOut}
	}
	newSelector = defaultSelector
)

func init() {
	createCmd.Flags().StringVar(&createOption, "option", "", "Generation option: manual or template")
	createCmd.Flags().StringVar(&createTemplate, "template", "", "Template to generate from (implies --option template)")
	createCmd.Flags().StringArrayVar(&createServices, "service", nil, "Service to run on the manual path (repeatable)")
	createCmd.Flags().StringVar(&createDir, "dir", ".", "Parent directory of the new project")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project-name>",
	Short: "Create a new Python project",
	Long: `Create a new Python project directory.

The manual option creates a fixed layout and asks which services to run.
The template option reads the layout and services from a template in the
templates directory (see 'templates list').

Examples:
  pyforge create demo --option manual --service git --service pytest
  pyforge create demo --template pytest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		parent, err := filepath.Abs(createDir)
		if err != nil {
			return fmt.Errorf("resolving --dir %q: %w", createDir, err)
		}
		root := filepath.Join(parent, name)

		settings := config.Current()
		selector := newSelector(cmd.InOrStdin(), cmd.OutOrStdout())
		p := &pipeline.Pipeline{
			Store:        template.NewOSStore(settings.TemplatesDir),
			Materializer: scaffold.New(settings.Subdir),
			Repo:         newRepoInitializer(),
			Env:          newEnvCreator(settings.Python, cmd.OutOrStdout(), cmd.ErrOrStderr()),
			Selector:     selector,
			Diag:         printer,
		}

		option, err := resolveOption(selector)
		if err != nil {
			return err
		}

		var out *pipeline.Outcome
		switch option {
		case "":
			printer.Warnf("Cancelled")
			return nil
		case optionManual:
			services, err := parseServices(createServices)
			if err != nil {
				return err
			}
			out, err = p.RunManual(cmd.Context(), root, services)
			if err != nil {
				return err
			}
		case optionTemplate:
			if len(createServices) > 0 {
				return errors.New("--service only applies to --option manual; templates declare their own services")
			}
			id, err := resolveTemplate(p.Store, selector)
			if err != nil {
				return err
			}
			if id == "" {
				printer.Warnf("Cancelled")
				return nil
			}
			out, err = p.RunTemplate(cmd.Context(), root, id)
			if err != nil {
				return err
			}
		}

		for _, f := range out.Dispatch.Failed {
			printer.Warnf("Service %s did not complete; the project was created without it", f)
		}
		printer.Successf("Project structure for '%s' created successfully.", name)
		return nil
	},
}

// resolveOption returns manual or template, asking when no flag decides it.
// An empty result means the operator cancelled.
func resolveOption(selector prompt.Selector) (string, error) {
	switch {
	case createTemplate != "" && createOption == optionManual:
		return "", errors.New("--template cannot be combined with --option manual")
	case createTemplate != "":
		return optionTemplate, nil
	case createOption == optionManual, createOption == optionTemplate:
		return createOption, nil
	case createOption != "":
		return "", fmt.Errorf("--option must be %q or %q, got %q", optionManual, optionTemplate, createOption)
	}

	sel, err := selector.SelectOne("How do you want to create the project?",
		[]string{optionManual, optionTemplate}, optionManual)
	if err != nil {
		return "", err
	}
	return firstChoice(sel), nil
}

// resolveTemplate returns the --template flag or asks among stored templates.
func resolveTemplate(store *template.Store, selector prompt.Selector) (string, error) {
	if createTemplate != "" {
		return createTemplate, nil
	}

	ids, err := store.List()
	if err != nil {
		return "", fmt.Errorf("%w (run 'templates init' to install the built-in templates)", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("no templates in %s (run 'templates init' to install the built-in templates)", store.Location())
	}

	sel, err := selector.SelectOne("Which template do you want to use?", ids, "")
	if err != nil {
		return "", err
	}
	return firstChoice(sel), nil
}

// parseServices validates --service values. No flags means the operator is
// asked, which RunManual signals with a nil slice.
func parseServices(raw []string) ([]service.Name, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	names := make([]service.Name, 0, len(raw))
	for _, s := range raw {
		n, ok := service.ParseName(s)
		if !ok {
			return nil, fmt.Errorf("unknown service %q (known: %v)", s, service.Strings(service.All()))
		}
		names = append(names, n)
	}
	return names, nil
}

func firstChoice(sel prompt.Selection) string {
	switch s := sel.(type) {
	case prompt.Selected:
		if len(s.Choices) > 0 {
			return s.Choices[0]
		}
	case prompt.Cancelled:
	}
	return ""
}

// defaultSelector uses the terminal UI when stdin is a terminal and numbered
// menus otherwise.
func defaultSelector(in io.Reader, out io.Writer) prompt.Selector {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.SurveySelector{}
	}
	return prompt.NewMenuSelector(in, out)
}

func validateName(name string) error {
	if !namePattern.MatchString(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q: must match pattern [A-Za-z0-9][A-Za-z0-9._-]*", name)
	}
	return nil
}
