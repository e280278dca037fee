package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/pyforge-dev/pyforge/internal/prompt"
	"github.com/pyforge-dev/pyforge/internal/service"
)

func TestVersion_Short(t *testing.T) {
	buildVersion = "1.2.3"
	t.Cleanup(func() { buildVersion = "" })

	stdout, _, err := runCLI(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if stdout != "1.2.3\n" {
		t.Errorf("stdout = %q, want %q", stdout, "1.2.3\n")
	}
}

func TestVersion_Full(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "pyforge version ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestExecute_PrintsError(t *testing.T) {
	setupCLI(t)
	var stderr bytes.Buffer
	rootCmd.SetArgs([]string{"create"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(&stderr)

	if err := Execute("dev", "none", "unknown"); err == nil {
		t.Fatal("expected error for missing project name")
	}
	if !strings.Contains(stderr.String(), "accepts 1 arg(s)") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

// ─── Test Helpers ───

type fakeRepo struct{ calls []string }

func (f *fakeRepo) Init(_ context.Context, root string) error {
	f.calls = append(f.calls, root)
	return nil
}

type fakeEnv struct{ calls []string }

func (f *fakeEnv) Create(_ context.Context, root string) error {
	f.calls = append(f.calls, root)
	return nil
}

type fakes struct {
	repo *fakeRepo
	env  *fakeEnv
}

// setupCLI isolates a test from the user's home, global viper state and
// flag values left by earlier runs, and swaps external collaborators for fakes.
func setupCLI(t *testing.T) *fakes {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()

	resetFlags()

	f := &fakes{repo: &fakeRepo{}, env: &fakeEnv{}}
	origRepo, origEnv, origSelector := newRepoInitializer, newEnvCreator, newSelector
	newRepoInitializer = func() service.RepoInitializer { return f.repo }
	newEnvCreator = func(string, io.Writer, io.Writer) service.EnvCreator { return f.env }
	newSelector = func(in io.Reader, out io.Writer) prompt.Selector { return prompt.NewMenuSelector(in, out) }

	t.Cleanup(func() {
		newRepoInitializer, newEnvCreator, newSelector = origRepo, origEnv, origSelector
		viper.Reset()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return f
}

// runCLI executes the root command with args and stdin, returning captured output.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	setupCLI(t)
	return execCLI(t, stdin, args...)
}

// execCLI runs the root command without resetting state, so a test can chain
// several invocations.
func execCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag variables that cobra does not reset between runs.
func resetFlags() {
	configFile, debugFlag, noColor = "", false, true
	createOption, createTemplate, createServices, createDir = "", "", nil, "."
	versionShort, versionJSON = false, false
	printer = nil
}
