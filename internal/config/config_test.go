package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCurrent_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("HOME", t.TempDir())

	Load(filepath.Join(t.TempDir(), "missing.yaml"))
	s := Current()

	if s.Subdir != DefaultSubdir {
		t.Errorf("Subdir = %q, want %q", s.Subdir, DefaultSubdir)
	}
	if s.Python != "python3" {
		t.Errorf("Python = %q, want %q", s.Python, "python3")
	}
	if s.Debug {
		t.Error("Debug should default to false")
	}
	if filepath.Base(s.TemplatesDir) != "templates" {
		t.Errorf("TemplatesDir = %q, want a path ending in templates", s.TemplatesDir)
	}
}

func TestCurrent_FileAndEnv(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "templates_dir: /srv/templates\nsubdir: reqs\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PYFORGE_PYTHON", "python3.12")

	Load(path)
	s := Current()

	if s.TemplatesDir != "/srv/templates" {
		t.Errorf("TemplatesDir = %q, want %q", s.TemplatesDir, "/srv/templates")
	}
	if s.Subdir != "reqs" {
		t.Errorf("Subdir = %q, want %q", s.Subdir, "reqs")
	}
	if s.Python != "python3.12" {
		t.Errorf("Python = %q, want %q", s.Python, "python3.12")
	}
}

func TestSet_PersistsValue(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	Load(path)
	if err := Set(KeySubdir, "deps"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if got := string(data); got == "" {
		t.Fatal("config file is empty")
	}

	viper.Reset()
	Load(path)
	if got := Get(KeySubdir); got != "deps" {
		t.Errorf("Get(%q) = %q, want %q", KeySubdir, got, "deps")
	}
}

func TestSet_UnknownKey(t *testing.T) {
	resetViper(t)
	Load(filepath.Join(t.TempDir(), "config.yaml"))

	if err := Set("mirror", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/tpl"); got != filepath.Join(home, "tpl") {
		t.Errorf("expandHome(~/tpl) = %q", got)
	}
	if got := expandHome("/abs/tpl"); got != "/abs/tpl" {
		t.Errorf("expandHome(/abs/tpl) = %q", got)
	}
}
