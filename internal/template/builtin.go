package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// SeedResult reports what Seed wrote into a templates location.
type SeedResult struct {
	Written []string
	Skipped []string
}

// BuiltinNames returns the file names of the templates shipped in the binary.
func BuiltinNames() ([]string, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Seed copies the built-in templates into dst. Files already present are skipped.
func Seed(dst billy.Filesystem) (*SeedResult, error) {
	names, err := BuiltinNames()
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	for _, name := range names {
		if _, err := dst.Stat(name); err == nil {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		data, err := builtinFS.ReadFile("builtin/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading built-in template %s: %w", name, err)
		}
		if err := util.WriteFile(dst, name, data, 0644); err != nil {
			return nil, fmt.Errorf("writing template %s: %w", name, err)
		}
		result.Written = append(result.Written, name)
	}
	return result, nil
}

// SeedDir seeds the templates directory dir on the local disk, creating it if needed.
func SeedDir(dir string) (*SeedResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating templates directory %s: %w", dir, err)
	}
	return Seed(NewOSStore(dir).fs)
}
