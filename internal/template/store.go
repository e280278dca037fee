package template

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// templateExts are the file extensions recognized as templates, in lookup order.
var templateExts = []string{".yaml", ".yml", ".json"}

// Store lists and loads templates from a filesystem rooted at the templates location.
type Store struct {
	fs       billy.Filesystem
	location string
}

// NewStore creates a Store over an arbitrary billy filesystem.
// location is only used in error messages.
func NewStore(fs billy.Filesystem, location string) *Store {
	return &Store{fs: fs, location: location}
}

// NewOSStore creates a Store backed by the directory dir on the local disk.
func NewOSStore(dir string) *Store {
	return NewStore(osfs.New(dir), dir)
}

// Location returns the human-readable templates location.
func (s *Store) Location() string {
	return s.location
}

// Entry is a template file discovered by List.
type Entry struct {
	ID       string
	FileName string
}

// List returns the identifiers of available templates in listing order.
func (s *Store) List() ([]string, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}

// Load returns the raw content of the template named id.
func (s *Store) Load(id string) ([]byte, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.ID != id {
			continue
		}
		data, err := util.ReadFile(s.fs, e.FileName)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreUnavailable, e.FileName, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, id, s.location)
}

// entries reads the root of the store and keeps regular template files.
// When two files share an identifier the first listed wins.
func (s *Store) entries() ([]Entry, error) {
	infos, err := s.fs.ReadDir("/")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, s.location, err)
	}

	seen := make(map[string]bool)
	var entries []Entry
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		id, ok := identifier(info.Name())
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entries = append(entries, Entry{ID: id, FileName: info.Name()})
	}
	return entries, nil
}

// identifier strips a recognized template extension from a file name.
func identifier(name string) (string, bool) {
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	ext := path.Ext(name)
	for _, known := range templateExts {
		if ext == known {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}
