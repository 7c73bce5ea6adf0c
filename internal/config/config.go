// Package config loads the noteiser settings file from
// $HOME/.config/noteiser/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/noteiser/internal/paths"
)

const configFileType = "toml"

// Config keys as they appear in config.toml.
const (
	KeyDev          = "dev"
	KeyEditor       = "editor"
	KeyEditorBackup = "editor_backup"
	KeyNote         = "note"
	KeyDoc          = "doc"
)

// ErrNotFound is returned by Load when the config file does not exist.
// Callers may bootstrap the file or carry on without a config.
var ErrNotFound = errors.New("config file not found")

// Config is the parsed settings file. Empty optional fields mean "not set".
type Config struct {
	// Dev is the base directory for generated projects.
	Dev          string `mapstructure:"dev" json:"dev"`
	Editor       string `mapstructure:"editor" json:"editor,omitempty"`
	EditorBackup string `mapstructure:"editor_backup" json:"editor_backup,omitempty"`
	// Note is the base directory for notes.
	Note string `mapstructure:"note" json:"note,omitempty"`
	// Doc is the base directory for LaTeX documents.
	Doc string `mapstructure:"doc" json:"doc,omitempty"`
}

// Validate checks that the required keys are present.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dev, validation.Required),
	)
}

// ReadError reports a config file that exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports malformed or incomplete config contents.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and validates the config file under home.
//
// A missing file yields ErrNotFound. Read failures come back as *ReadError
// and malformed contents as *ParseError; both mean the environment is broken.
func Load(home string) (*Config, error) {
	path := paths.ConfigFile(home)

	verified, ok := paths.Verify(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(verified.String())
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	logrus.WithField("path", path).Debug("config loaded")
	return cfg, nil
}

// Parse decodes TOML text into a Config. Values are taken literally; no
// environment expansion is applied.
func Parse(text string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configFileType)

	if err := v.ReadConfig(strings.NewReader(text)); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultTemplate returns the content written by `config setup`, with
// directories placed under home.
func DefaultTemplate(home string) string {
	return fmt.Sprintf(defaultTemplate, filepath.Join(home, "Dev"),
		filepath.Join(home, "Documents", "Notes"),
		filepath.Join(home, "Documents", "Latex"))
}

const defaultTemplate = `# noteiser configuration

# Base directory for generated projects (required).
# Projects are created under $dev/Rust.
dev = %q

# Editor to launch. Falls back to editor_backup, then $EDITOR.
# editor = "nvim"
# editor_backup = "vi"

# Directory for notes.
# note = %q

# Directory for LaTeX documents.
# doc = %q
`
