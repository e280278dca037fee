package template

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0644))
	}
	return NewStore(fs, "mem")
}

func TestStore_List(t *testing.T) {
	s := newMemStore(t, map[string]string{
		"basic.yaml":   "files: []",
		"pytest.yml":   "files: []",
		"legacy.json":  "{}",
		"notes.txt":    "ignored",
		".hidden.yaml": "ignored",
	})
	require.NoError(t, s.fs.MkdirAll("nested", 0755))

	ids, err := s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"basic", "pytest", "legacy"}, ids)
}

func TestStore_ListStable(t *testing.T) {
	s := newMemStore(t, map[string]string{"a.yaml": "", "b.yaml": "", "c.yaml": ""})

	first, err := s.List()
	require.NoError(t, err)
	second, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_Load(t *testing.T) {
	s := newMemStore(t, map[string]string{"basic.yaml": "files: [README.md]\n"})

	raw, err := s.Load("basic")
	require.NoError(t, err)
	assert.Equal(t, "files: [README.md]\n", string(raw))
}

func TestStore_LoadNotFound(t *testing.T) {
	s := newMemStore(t, map[string]string{"basic.yaml": ""})

	_, err := s.Load("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound), "got %v", err)

	// The file name with extension is not an identifier.
	_, err = s.Load("basic.yaml")
	assert.True(t, errors.Is(err, ErrTemplateNotFound), "got %v", err)
}

func TestStore_Unavailable(t *testing.T) {
	s := NewOSStore(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := s.List()
	assert.True(t, errors.Is(err, ErrStoreUnavailable), "List: got %v", err)

	_, err = s.Load("basic")
	assert.True(t, errors.Is(err, ErrStoreUnavailable), "Load: got %v", err)
}

func TestSeed_WritesBuiltins(t *testing.T) {
	fs := memfs.New()

	result, err := Seed(fs)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"basic.yaml", "full.yaml", "pytest.yaml"}, result.Written)
	assert.Empty(t, result.Skipped)

	store := NewStore(fs, "mem")
	for _, id := range []string{"basic", "pytest", "full"} {
		raw, err := store.Load(id)
		require.NoError(t, err)
		_, err = Parse(raw)
		require.NoError(t, err, "built-in template %s must parse", id)
	}
}

func TestSeed_SkipsExisting(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "basic.yaml", []byte("custom"), 0644))

	result, err := Seed(fs)
	require.NoError(t, err)
	assert.Contains(t, result.Skipped, "basic.yaml")

	data, err := util.ReadFile(fs, "basic.yaml")
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
}

func TestSeedDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	_, err := SeedDir(dir)
	require.NoError(t, err)

	ids, err := NewOSStore(dir).List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"basic", "full", "pytest"}, ids)
}
