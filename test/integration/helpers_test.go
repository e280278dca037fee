//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyforge-dev/pyforge/internal/console"
	"github.com/pyforge-dev/pyforge/internal/pipeline"
	"github.com/pyforge-dev/pyforge/internal/prompt"
	"github.com/pyforge-dev/pyforge/internal/scaffold"
	"github.com/pyforge-dev/pyforge/internal/template"
	"github.com/pyforge-dev/pyforge/internal/toolchain"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // HOME for the run
	TemplatesDir string // seeded with the built-in templates
	ParentDir    string // where projects are generated
}

// setupTestEnv creates isolated temp directories, points HOME at one of them
// and installs the built-in templates.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		ParentDir: t.TempDir(),
	}
	env.TemplatesDir = filepath.Join(env.HomeDir, ".pyforge", "templates")
	t.Setenv("HOME", env.HomeDir)

	if _, err := template.SeedDir(env.TemplatesDir); err != nil {
		t.Fatalf("seeding templates: %v", err)
	}
	return env
}

// newPipeline wires a Pipeline with the real git and venv collaborators.
func newPipeline(env *testEnv, selector prompt.Selector) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Store:        template.NewOSStore(env.TemplatesDir),
		Materializer: scaffold.New(""),
		Repo:         toolchain.GitInitializer{},
		Env:          &toolchain.VenvCreator{},
		Selector:     selector,
		Diag:         console.Discard(),
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
