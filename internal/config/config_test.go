package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoyu/create-prev-app/internal/scaffold"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "prev.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, scaffold.DefaultStyles, cfg.Styles)
	assert.True(t, cfg.Git.Enabled)
	assert.False(t, cfg.Git.Binary)
	assert.Equal(t, "add prev.js styles", cfg.Git.Message)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "prev:\n  package_manager: pnpm\n  git:\n    binary: true\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.Git.Binary)
	assert.True(t, cfg.Git.Enabled)
	assert.Equal(t, scaffold.DefaultStyles, cfg.Styles)
	assert.Equal(t, scaffold.DefaultCommitMessage, cfg.Git.Message)
}

func TestLoad_FullConfig(t *testing.T) {
	p := writeConfig(t, `prev:
  package_manager: Bun
  styles: "html { filter: invert(1); }\n"
  git:
    enabled: false
    message: "chore: mirror"
    author_name: Jane
    author_email: jane@example.com
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "bun", cfg.PackageManager)
	assert.Equal(t, "html { filter: invert(1); }\n", cfg.Styles)
	assert.False(t, cfg.Git.Enabled)
	assert.Equal(t, "chore: mirror", cfg.Git.Message)
	assert.Equal(t, "Jane", cfg.Git.AuthorName)
	assert.Equal(t, "jane@example.com", cfg.Git.AuthorEmail)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "prev: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "prev:\n  package_manager: deno\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown package manager")
}

func TestPathFromCLIorEnv(t *testing.T) {
	env := func(k string) string {
		if k == PathEnv {
			return " /etc/prev.yaml "
		}
		return ""
	}
	assert.Equal(t, "flag.yaml", PathFromCLIorEnv("flag.yaml", env))
	assert.Equal(t, "/etc/prev.yaml", PathFromCLIorEnv("", env))
	assert.Equal(t, "", PathFromCLIorEnv("", nil))
}
