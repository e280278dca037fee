package emit

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pelletier/go-toml/v2"

	"github.com/pyforge-dev/pyforge/internal/service"
)

const (
	// PyprojectFile receives the pytest configuration block.
	PyprojectFile = "pyproject.toml"
	// PytestIniFile is the companion ini file the pytest block points at.
	PytestIniFile = "pytest.ini"
)

// Diagnostics receives emitter progress.
type Diagnostics interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

type writer func(e *Emitter, fs billy.Filesystem) error

var writers = map[service.Need]writer{
	service.NeedPytest: writePytest,
	service.NeedNox:    writeNox,
}

// Emitter turns a NeedsConfig into files.
type Emitter struct {
	diag Diagnostics
}

// New creates an Emitter reporting through diag.
func New(diag Diagnostics) *Emitter {
	return &Emitter{diag: diag}
}

// Emit writes one file per recognized need under root, in order.
// templateConfig is the descriptor's opaque config section; it is only logged.
func (e *Emitter) Emit(needs service.NeedsConfig, root string, templateConfig any) error {
	return e.EmitFS(osfs.New(root), needs, templateConfig)
}

// EmitFS is Emit against an arbitrary filesystem rooted at the project.
func (e *Emitter) EmitFS(fs billy.Filesystem, needs service.NeedsConfig, templateConfig any) error {
	if templateConfig != nil {
		e.diag.Debugf("template config passed through unused: %v", templateConfig)
	}

	for _, need := range needs {
		w, ok := writers[need]
		if !ok {
			e.diag.Warnf("No configuration writer for %q, skipping", need)
			continue
		}
		if err := w(e, fs); err != nil {
			return err
		}
	}
	return nil
}

type pyproject struct {
	Tool pyprojectTool `toml:"tool"`
}

type pyprojectTool struct {
	Pytest pytestSection `toml:"pytest"`
}

type pytestSection struct {
	Verbose bool   `toml:"verbose"`
	IniFile string `toml:"ini_file"`
}

// PytestConfig is the fixed block written for the pytest need.
func PytestConfig() ([]byte, error) {
	doc := pyproject{Tool: pyprojectTool{Pytest: pytestSection{
		Verbose: true,
		IniFile: PytestIniFile,
	}}}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding pytest configuration: %w", err)
	}
	return data, nil
}

func writePytest(e *Emitter, fs billy.Filesystem) error {
	data, err := PytestConfig()
	if err != nil {
		return err
	}
	if err := util.WriteFile(fs, PyprojectFile, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", PyprojectFile, err)
	}
	e.diag.Infof("Wrote %s", PyprojectFile)
	return nil
}

func writeNox(e *Emitter, _ billy.Filesystem) error {
	e.diag.Infof("nox configuration is not implemented yet")
	return nil
}
