package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/pyforge-dev/pyforge/internal/template"
)

func TestTemplates_ListWithoutDirectory(t *testing.T) {
	setupCLI(t)

	_, _, err := execCLI(t, "", "templates", "list")
	if !errors.Is(err, template.ErrStoreUnavailable) {
		t.Fatalf("templates list error = %v, want ErrStoreUnavailable", err)
	}
}

func TestTemplates_InitThenList(t *testing.T) {
	setupCLI(t)

	stdout, _, err := execCLI(t, "", "templates", "init")
	if err != nil {
		t.Fatalf("templates init: %v", err)
	}
	if !strings.Contains(stdout, "3 written, 0 kept") {
		t.Errorf("init output = %q", stdout)
	}

	stdout, _, err = execCLI(t, "", "templates", "list")
	if err != nil {
		t.Fatalf("templates list: %v", err)
	}
	got := strings.Fields(stdout)
	want := []string{"basic", "full", "pytest"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("templates list = %v, want %v", got, want)
	}
}

func TestTemplates_InitIsIdempotent(t *testing.T) {
	setupCLI(t)

	if _, _, err := execCLI(t, "", "templates", "init"); err != nil {
		t.Fatalf("first init: %v", err)
	}
	stdout, _, err := execCLI(t, "", "templates", "init")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(stdout, "0 written, 3 kept") {
		t.Errorf("second init output = %q", stdout)
	}
}

func TestTemplates_Show(t *testing.T) {
	setupCLI(t)
	if _, _, err := execCLI(t, "", "templates", "init"); err != nil {
		t.Fatalf("templates init: %v", err)
	}

	stdout, _, err := execCLI(t, "", "templates", "show", "pytest")
	if err != nil {
		t.Fatalf("templates show: %v", err)
	}
	for _, want := range []string{
		"Template: pytest",
		"Services:     git, pytest",
		"Subdir files: dev_requirements.txt, requirements.txt",
		"verbose: true",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestTemplates_ShowMalformed(t *testing.T) {
	setupCLI(t)
	writeTemplate(t, "broken.yaml", "files: [a]\n")

	_, _, err := execCLI(t, "", "templates", "show", "broken")
	if !errors.Is(err, template.ErrMalformedTemplate) {
		t.Fatalf("templates show error = %v, want ErrMalformedTemplate", err)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a: 1\nb: 2\n", "  "); got != "  a: 1\n  b: 2\n" {
		t.Errorf("indent = %q", got)
	}
	if got := indent("{}\n", "  "); got != "  {}\n" {
		t.Errorf("indent = %q", got)
	}
}
