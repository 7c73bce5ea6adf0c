package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/noteiser/internal/paths"
)

// writeConfig writes content to the config.toml location under home.
func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(paths.ConfigDir(home), 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(home), []byte(content), 0o644))
}

func TestLoad_Missing(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_AllFields(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
dev = "/d"
editor = "emacs"
editor_backup = "nano"
note = "/notes"
doc = "/docs"
`)

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Dev:          "/d",
		Editor:       "emacs",
		EditorBackup: "nano",
		Note:         "/notes",
		Doc:          "/docs",
	}, cfg)
}

func TestLoad_OptionalFieldsAbsent(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `dev = "/d"`)

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "/d", cfg.Dev)
	assert.Empty(t, cfg.Editor)
	assert.Empty(t, cfg.EditorBackup)
	assert.Empty(t, cfg.Note)
	assert.Empty(t, cfg.Doc)
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
dev = "/d"
colour = "blue"

[extra]
thing = 1
`)

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "/d", cfg.Dev)
}

func TestLoad_MissingRequiredKey(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `editor = "vim"`)

	_, err := Load(home)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
	assert.Equal(t, paths.ConfigFile(home), parseErr.Path)
	assert.Contains(t, err.Error(), "dev")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `dev = "unterminated`)

	_, err := Load(home)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %v", err)
}

func TestLoad_Unreadable(t *testing.T) {
	home := t.TempDir()
	// A directory where the file should be exists but cannot be read as text.
	require.NoError(t, os.MkdirAll(paths.ConfigFile(home), 0o755))

	_, err := Load(home)
	var readErr *ReadError
	assert.True(t, errors.As(err, &readErr), "expected *ReadError, got %v", err)
}

func TestLoad_DollarSignsAreLiteral(t *testing.T) {
	home := t.TempDir()
	t.Setenv("draft", "expanded")
	t.Setenv("QUOTE", `a"b`)
	writeConfig(t, home, `
dev = "/d/$draft/x"
note = "/n/$QUOTE"
editor = "nvim -c 'set ft=${FT}'"
`)

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "/d/$draft/x", cfg.Dev)
	assert.Equal(t, "/n/$QUOTE", cfg.Note)
	assert.Equal(t, "nvim -c 'set ft=${FT}'", cfg.Editor)
}

func TestDefaultTemplate_Parses(t *testing.T) {
	home := t.TempDir()

	cfg, err := Parse(DefaultTemplate(home))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Dev"), cfg.Dev)
	assert.Empty(t, cfg.Editor)
	assert.Empty(t, cfg.Note)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "dev set", config: Config{Dev: "/d"}},
		{name: "dev empty", config: Config{Editor: "vim"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
