package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pyforge-dev/pyforge/internal/template"
)

var (
	// ErrProjectExists is returned when the project root is already on disk.
	ErrProjectExists = errors.New("project already exists")
	// ErrCreationFailed wraps any other OS-level failure while creating the tree.
	ErrCreationFailed = errors.New("creation failed")
)

// DefaultSubdir is the subdirectory used when a Materializer has none configured.
const DefaultSubdir = "requirements"

// Base and subdirectory files created on the manual path.
var (
	ManualFiles       = []string{".gitignore", "README.md", "main.py"}
	ManualSubdirFiles = []string{"dev_requirements.txt", "requirements.txt"}
)

// Result holds the outcome of a materialization.
type Result struct {
	Root  string
	Dirs  []string // relative to Root
	Files []string // relative to Root
}

// Materializer creates project trees.
type Materializer struct {
	// Subdir is the fixed subdirectory for subdir-scoped files.
	Subdir string
}

// New creates a Materializer for the given subdirectory name.
// An empty name selects DefaultSubdir.
func New(subdir string) *Materializer {
	if subdir == "" {
		subdir = DefaultSubdir
	}
	return &Materializer{Subdir: subdir}
}

// CreateRoot creates root as a new directory. Missing parents are created.
func (m *Materializer) CreateRoot(root string) error {
	if _, err := os.Lstat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrProjectExists, root)
	}

	if err := os.MkdirAll(filepath.Dir(root), 0755); err != nil {
		return creationFailed(root, err)
	}
	if err := os.Mkdir(root, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrProjectExists, root)
		}
		return creationFailed(root, err)
	}
	return nil
}

// CreateSubdirs creates the fixed subdirectory under an existing root.
func (m *Materializer) CreateSubdirs(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return creationFailed(root, err)
	}
	if !info.IsDir() {
		return creationFailed(root, fmt.Errorf("not a directory"))
	}
	if err := checkLocal(root, m.Subdir); err != nil {
		return err
	}

	dir := filepath.Join(root, m.Subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return creationFailed(dir, err)
	}
	return nil
}

// CreateFiles creates an empty file at root/path for each path, in order,
// truncating files that already exist.
func (m *Materializer) CreateFiles(root string, paths []string) error {
	for _, p := range paths {
		if err := touch(root, p); err != nil {
			return err
		}
	}
	return nil
}

// CreateSubdirFiles is CreateFiles targeting root/subdir. The subdirectory is
// created on demand and may already exist.
func (m *Materializer) CreateSubdirFiles(root, subdir string, paths []string) error {
	if err := checkLocal(root, subdir); err != nil {
		return err
	}
	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return creationFailed(dir, err)
	}
	return m.CreateFiles(dir, paths)
}

// Materialize creates root and everything d declares. When withSubdir is set
// the subdirectory is created even if no subdir files are declared.
func (m *Materializer) Materialize(root string, d *template.Descriptor, withSubdir bool) (*Result, error) {
	result := &Result{Root: root}

	if err := m.CreateRoot(root); err != nil {
		return result, err
	}

	if withSubdir {
		if err := m.CreateSubdirs(root); err != nil {
			return result, err
		}
		result.Dirs = append(result.Dirs, m.Subdir)
	}

	files := d.Files()
	if err := m.CreateFiles(root, files); err != nil {
		return result, err
	}
	result.Files = append(result.Files, files...)

	subdirFiles := d.SubdirFiles()
	if len(subdirFiles) == 0 {
		return result, nil
	}
	if err := m.CreateSubdirFiles(root, m.Subdir, subdirFiles); err != nil {
		return result, err
	}
	if !withSubdir {
		result.Dirs = append(result.Dirs, m.Subdir)
	}
	for _, f := range subdirFiles {
		result.Files = append(result.Files, filepath.Join(m.Subdir, f))
	}
	return result, nil
}

// touch creates or truncates root/rel, creating parent directories inside root.
func touch(root, rel string) error {
	if err := checkLocal(root, rel); err != nil {
		return err
	}

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return creationFailed(path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return creationFailed(path, err)
	}
	if err := f.Close(); err != nil {
		return creationFailed(path, err)
	}
	return nil
}

// checkLocal rejects paths that would escape root.
func checkLocal(root, rel string) error {
	if !filepath.IsLocal(rel) {
		return creationFailed(filepath.Join(root, rel), fmt.Errorf("path %q is not relative to the project root", rel))
	}
	return nil
}

func creationFailed(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCreationFailed, path, err)
}
