package cli

import (
	"github.com/spf13/cobra"

	"github.com/pyforge-dev/pyforge/internal/branding"
	"github.com/pyforge-dev/pyforge/internal/config"
	"github.com/pyforge-dev/pyforge/internal/doctor"
)

// newChecker is replaced in tests.
var newChecker = func(python string) *doctor.Checker {
	return &doctor.Checker{Python: python}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system requirements",
	Long: `Check that this machine can build the projects ` + branding.CLIName() + ` generates:
the operating system, a Python 3.10+ interpreter and git.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newChecker(config.Current().Python).Run(cmd.Context(), cmd.OutOrStdout())
		return err
	},
}
