package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/pyforge-dev/pyforge/internal/toolchain"
)

// MinPython is the lowest interpreter version generated projects support.
const MinPython = ">= 3.10"

// ErrChecksFailed is returned when at least one check reported FAIL.
var ErrChecksFailed = errors.New("system checks failed")

// Checker runs the system checks. Zero fields fall back to the real host.
type Checker struct {
	// Python is the interpreter to probe; defaults to python3.
	Python string
	// GOOS overrides runtime.GOOS.
	GOOS string
	// LookPath overrides exec.LookPath.
	LookPath func(file string) (string, error)
	// PythonVersion overrides toolchain.PythonVersion.
	PythonVersion func(ctx context.Context, python string) (string, error)
}

// Report counts the outcome of a run.
type Report struct {
	OK, Warn, Fail int
}

// Run prints one line per check to w and returns ErrChecksFailed when any
// check failed.
func (c *Checker) Run(ctx context.Context, w io.Writer) (*Report, error) {
	r := &Report{}
	fmt.Fprintln(w, "System check:")

	c.checkOS(w, r)
	c.checkPython(ctx, w, r)
	c.checkGit(w, r)

	if r.Fail > 0 {
		return r, fmt.Errorf("%w: %d failure(s)", ErrChecksFailed, r.Fail)
	}
	return r, nil
}

func (c *Checker) checkOS(w io.Writer, r *Report) {
	goos := c.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos != "linux" {
		r.warn(w, "operating system is %s; only linux is tested", goos)
		return
	}
	r.ok(w, "operating system is linux")
}

func (c *Checker) checkPython(ctx context.Context, w io.Writer, r *Report) {
	python := c.Python
	if python == "" {
		python = toolchain.DefaultPython
	}

	path, err := c.lookPath(python)
	if err != nil {
		r.fail(w, "%s not found; install Python 3.10 or higher", python)
		return
	}

	probe := c.PythonVersion
	if probe == nil {
		probe = toolchain.PythonVersion
	}
	raw, err := probe(ctx, path)
	if err != nil {
		r.fail(w, "%s: %v", python, err)
		return
	}

	ok, err := SatisfiesMinPython(raw)
	if err != nil {
		r.fail(w, "%s reported unparseable version %q: %v", python, raw, err)
		return
	}
	if !ok {
		r.fail(w, "%s is version %s; please use Python 3.10 or higher", python, raw)
		return
	}
	r.ok(w, "%s %s found at %s", python, raw, path)
}

func (c *Checker) checkGit(w io.Writer, r *Report) {
	path, err := c.lookPath("git")
	if err != nil {
		r.warn(w, "git not found; repositories are still created, but you will need git to use them")
		return
	}
	r.ok(w, "git found at %s", path)
}

func (c *Checker) lookPath(file string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(file)
	}
	return exec.LookPath(file)
}

// SatisfiesMinPython reports whether version meets MinPython.
func SatisfiesMinPython(version string) (bool, error) {
	constraint, err := semver.NewConstraint(MinPython)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}
	return constraint.Check(v), nil
}

func (r *Report) ok(w io.Writer, format string, args ...any) {
	r.OK++
	fmt.Fprintf(w, "  [ OK ] %s\n", fmt.Sprintf(format, args...))
}

func (r *Report) warn(w io.Writer, format string, args ...any) {
	r.Warn++
	fmt.Fprintf(w, "  [WARN] %s\n", fmt.Sprintf(format, args...))
}

func (r *Report) fail(w io.Writer, format string, args ...any) {
	r.Fail++
	fmt.Fprintf(w, "  [FAIL] %s\n", fmt.Sprintf(format, args...))
}
