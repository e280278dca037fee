package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pyforge-dev/pyforge/internal/branding"
	"github.com/pyforge-dev/pyforge/internal/config"
	"github.com/pyforge-dev/pyforge/internal/console"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configFile string
	debugFlag  bool
	noColor    bool
)

// printer is set up by the root command before any subcommand runs.
var printer *console.Printer

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug diagnostics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Python project skeletons, either from a fixed layout
or from declarative templates, and runs the services (git, virtualenv, pytest, ...)
each project asks for.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load(configFile)
		printer = console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(),
			console.WithNoColor(noColor),
			console.WithDebug(debugFlag || config.Current().Debug),
		)
		printer.Debugf("config file: %s", configFile)
	},
}

// Execute runs the root command with build info injected via ldflags.
// A returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		p := printer
		if p == nil {
			p = console.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), console.WithNoColor(noColor))
		}
		p.Errorf("%v", err)
		return err
	}
	return nil
}
