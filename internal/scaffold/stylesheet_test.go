package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindStylesheet_EachCandidate(t *testing.T) {
	for _, rel := range StylesheetCandidates {
		t.Run(rel, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, rel), "")

			got, ok := FindStylesheet(dir)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(dir, rel), got)
		})
	}
}

func TestFindStylesheet_FirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "styles", "globals.css"), "")
	writeFile(t, filepath.Join(dir, "styles", "globals.css"), "")

	got, ok := FindStylesheet(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "styles", "globals.css"), got)
}

func TestFindStylesheet_None(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app", "globals.css"), 0o755))

	got, ok := FindStylesheet(dir)
	assert.False(t, ok, "a directory named globals.css is not a stylesheet")
	assert.Empty(t, got)
}

func TestAppendStyles_AppendsEveryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globals.css")
	writeFile(t, path, ":root {\n  --foreground: #171717;\n}\n")

	require.NoError(t, AppendStyles(path, DefaultStyles))
	require.NoError(t, AppendStyles(path, DefaultStyles))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "stylesheet_appended_twice", got)
}

func TestAppendStyles_MissingFile(t *testing.T) {
	err := AppendStyles(filepath.Join(t.TempDir(), "nope.css"), DefaultStyles)
	assert.Error(t, err)
}
