package pipeline

import (
	"context"
	"fmt"

	"github.com/pyforge-dev/pyforge/internal/emit"
	"github.com/pyforge-dev/pyforge/internal/prompt"
	"github.com/pyforge-dev/pyforge/internal/scaffold"
	"github.com/pyforge-dev/pyforge/internal/service"
	"github.com/pyforge-dev/pyforge/internal/template"
)

// Diagnostics receives progress from every stage.
type Diagnostics interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Pipeline holds the collaborators of a run.
type Pipeline struct {
	Store        *template.Store
	Materializer *scaffold.Materializer
	Repo         service.RepoInitializer
	Env          service.EnvCreator
	Selector     prompt.Selector
	Diag         Diagnostics
}

// Outcome reports what a run produced.
type Outcome struct {
	Root     string
	Scaffold *scaffold.Result
	Dispatch *service.Result
}

// DefaultServices is preselected in the manual service menu.
var DefaultServices = []service.Name{service.Git}

// ManualDescriptor is the fixed descriptor of the manual path.
func ManualDescriptor() *template.Descriptor {
	return template.NewDescriptor(scaffold.ManualFiles, scaffold.ManualSubdirFiles, nil, nil)
}

// RunTemplate generates root from the stored template id. Nothing is created
// on disk when the template cannot be loaded or parsed.
func (p *Pipeline) RunTemplate(ctx context.Context, root, id string) (*Outcome, error) {
	raw, err := p.Store.Load(id)
	if err != nil {
		return nil, err
	}

	d, err := template.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", id, err)
	}
	p.Diag.Debugf("template %q: %d files, %d subdir files, services %v",
		id, len(d.Files()), len(d.SubdirFiles()), d.Services())

	out := &Outcome{Root: root}
	out.Scaffold, err = p.Materializer.Materialize(root, d, false)
	if err != nil {
		return out, err
	}

	dispatcher := service.NewDispatcher(root, p.Repo, p.Env, p.Diag)
	out.Dispatch, err = dispatcher.RunDeclared(ctx, d.Services())
	if err != nil {
		return out, err
	}

	return out, emit.New(p.Diag).Emit(out.Dispatch.Needs, root, d.Config())
}

// RunManual generates root from the fixed descriptor. When services is nil
// the operator is asked to choose; a cancelled prompt selects nothing.
func (p *Pipeline) RunManual(ctx context.Context, root string, services []service.Name) (*Outcome, error) {
	d := ManualDescriptor()

	out := &Outcome{Root: root}
	var err error
	out.Scaffold, err = p.Materializer.Materialize(root, d, true)
	if err != nil {
		return out, err
	}

	if services == nil {
		services, err = p.SelectServices()
		if err != nil {
			return out, err
		}
	}

	dispatcher := service.NewDispatcher(root, p.Repo, p.Env, p.Diag)
	out.Dispatch, err = dispatcher.RunSelected(ctx, services)
	if err != nil {
		return out, err
	}

	return out, emit.New(p.Diag).Emit(out.Dispatch.Needs, root, d.Config())
}

// SelectServices asks the operator which services to run.
func (p *Pipeline) SelectServices() ([]service.Name, error) {
	sel, err := p.Selector.SelectMany("Which services do you want to use?",
		service.Strings(service.All()), service.Strings(DefaultServices))
	if err != nil {
		return nil, fmt.Errorf("selecting services: %w", err)
	}

	switch s := sel.(type) {
	case prompt.Cancelled:
		p.Diag.Infof("No services selected")
		return []service.Name{}, nil
	case prompt.Selected:
		names := make([]service.Name, 0, len(s.Choices))
		for _, c := range s.Choices {
			names = append(names, service.Name(c))
		}
		return names, nil
	default:
		return nil, fmt.Errorf("selecting services: unexpected selection %T", sel)
	}
}
