package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	repo := Default()

	assert.Equal(t, []string{"Kennedy", "John", "Mathew", "Sampson", "Anita", "Bright", "Freeman", "Camela", "Peter"}, repo.Names())
	assert.Equal(t, 9, repo.Len())
}

func TestStatic_IsImmutable(t *testing.T) {
	input := []string{"Anita", "Peter"}
	repo := NewStatic(input...)

	input[0] = "changed"
	got := repo.Names()
	got[1] = "changed"

	assert.Equal(t, []string{"Anita", "Peter"}, repo.Names())
}

func TestStatic_Empty(t *testing.T) {
	repo := NewStatic()

	assert.NotNil(t, repo.Names())
	assert.Empty(t, repo.Names())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `names = ["Zoë", "Ade", "Bola"]`)

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoë", "Ade", "Bola"}, repo.Names())
}

func TestLoad_MissingKey(t *testing.T) {
	path := writeFile(t, `title = "x"`)

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, repo.Names())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, `names = [`))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	path := writeFile(t, `names = ["Ade"]`)

	repo, err := Resolve([]string{"Bola"}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bola"}, repo.Names(), "inline names win over the file")

	repo, err = Resolve(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ade"}, repo.Names())

	repo, err = Resolve(nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), repo.Names())

	_, err = Resolve(nil, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
