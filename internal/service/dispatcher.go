package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyforge-dev/pyforge/internal/scaffold"
)

// ErrUnsupportedService is returned for services that are known but not implemented.
var ErrUnsupportedService = errors.New("service not supported")

// LicenseFile is the file the LICENSE service creates in the project root.
const LicenseFile = "LICENSE"

// RepoInitializer initializes a version control repository at a path.
type RepoInitializer interface {
	Init(ctx context.Context, root string) error
}

// EnvCreator creates a Python virtual environment for a project.
type EnvCreator interface {
	Create(ctx context.Context, root string) error
}

// Diagnostics receives dispatch progress and warnings.
type Diagnostics interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Result reports what a dispatch run did.
type Result struct {
	Needs    NeedsConfig
	Executed []Name
	Skipped  []string // unknown names, as declared
	Failed   []Name   // external collaborators that reported failure
}

type handler func(ctx context.Context, d *Dispatcher, res *Result) error

// handlers maps every name of the vocabulary to its action.
var handlers = map[Name]handler{
	Git:        runGit,
	GitHub:     notImplemented(GitHub),
	Virtualenv: runVirtualenv,
	Pytest:     recordNeed(NeedPytest),
	License:    runLicense,
	SetupCfg:   notImplemented(SetupCfg),
	SetupNox:   recordNeed(NeedNox),
}

// Dispatcher runs services against a single project root.
type Dispatcher struct {
	root string
	repo RepoInitializer
	env  EnvCreator
	diag Diagnostics
}

// NewDispatcher creates a Dispatcher for root with its external collaborators.
func NewDispatcher(root string, repo RepoInitializer, env EnvCreator, diag Diagnostics) *Dispatcher {
	return &Dispatcher{root: root, repo: repo, env: env, diag: diag}
}

// RunDeclared runs the services a template declared, in declaration order.
// Names outside the vocabulary are reported and skipped.
func (d *Dispatcher) RunDeclared(ctx context.Context, names []string) (*Result, error) {
	res := &Result{Needs: NeedsConfig{}}
	seen := make(map[Name]bool)

	for _, raw := range names {
		name, ok := ParseName(raw)
		if !ok {
			d.diag.Warnf("Service %q is not supported, skipping", raw)
			res.Skipped = append(res.Skipped, raw)
			continue
		}
		if err := d.run(ctx, name, seen, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// RunSelected runs the services an operator picked, in selection order.
func (d *Dispatcher) RunSelected(ctx context.Context, names []Name) (*Result, error) {
	res := &Result{Needs: NeedsConfig{}}
	seen := make(map[Name]bool)

	for _, name := range names {
		if err := d.run(ctx, name, seen, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (d *Dispatcher) run(ctx context.Context, name Name, seen map[Name]bool, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h, ok := handlers[name]
	if !ok {
		d.diag.Warnf("Service %q is not supported, skipping", name)
		res.Skipped = append(res.Skipped, string(name))
		return nil
	}
	if seen[name] {
		d.diag.Debugf("service %s already handled", name)
		return nil
	}
	seen[name] = true

	d.diag.Debugf("dispatching service %s", name)
	if err := h(ctx, d, res); err != nil {
		return err
	}
	res.Executed = append(res.Executed, name)
	return nil
}

func runGit(ctx context.Context, d *Dispatcher, res *Result) error {
	if err := d.repo.Init(ctx, d.root); err != nil {
		d.diag.Warnf("Git repository initialization failed: %v", err)
		res.Failed = append(res.Failed, Git)
		return nil
	}
	d.diag.Infof("Git repository created")
	return nil
}

func runVirtualenv(ctx context.Context, d *Dispatcher, res *Result) error {
	if err := d.env.Create(ctx, d.root); err != nil {
		d.diag.Warnf("Virtual environment creation failed: %v", err)
		res.Failed = append(res.Failed, Virtualenv)
		return nil
	}
	d.diag.Infof("Virtual environment created with the name: venv")
	return nil
}

// runLicense opens LICENSE in append mode so existing text is preserved.
func runLicense(_ context.Context, d *Dispatcher, _ *Result) error {
	path := filepath.Join(d.root, LicenseFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", scaffold.ErrCreationFailed, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", scaffold.ErrCreationFailed, path, err)
	}
	return nil
}

func recordNeed(need Need) handler {
	return func(_ context.Context, _ *Dispatcher, res *Result) error {
		if !res.Needs.Has(need) {
			res.Needs = append(res.Needs, need)
		}
		return nil
	}
}

func notImplemented(name Name) handler {
	return func(context.Context, *Dispatcher, *Result) error {
		return fmt.Errorf("%w: %s is not implemented yet", ErrUnsupportedService, name)
	}
}
