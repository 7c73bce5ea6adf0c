package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/shell"
)

// Kind describes one family of entities: which configured directory it lives
// under, how names map to paths, and how a new one is created.
type Kind struct {
	// Name is the singular noun used in commands and messages.
	Name string
	// BaseKey is the config key holding the base directory.
	BaseKey string
	// Dir is a fixed directory under the base, or empty.
	Dir string
	// SubDir is where sub-files of a nested entity live. Empty means the
	// kind is flat: each entity is a single file named after it.
	SubDir string
	// OpenFile is the sub-file opened after creating a nested entity.
	OpenFile string
	// Ext is the default extension for names without one.
	Ext string

	base   func(*config.Config) string
	create func(r shell.Runner, path string) error
}

// Nested reports whether entities of this kind are directories with
// sub-files rather than single files.
func (k Kind) Nested() bool {
	return k.SubDir != ""
}

// Base returns the configured base directory for the kind.
func (k Kind) Base(cfg *config.Config) string {
	if cfg == nil || k.base == nil {
		return ""
	}
	return k.base(cfg)
}

// Project is a Rust project under {dev}/Rust, scaffolded with cargo.
var Project = Kind{
	Name:     "project",
	BaseKey:  config.KeyDev,
	Dir:      "Rust",
	SubDir:   "src",
	OpenFile: "main",
	Ext:      "rs",
	base:     func(c *config.Config) string { return c.Dev },
	create:   cargoNew,
}

// Note is a plain-text note under {note}.
var Note = Kind{
	Name:    "note",
	BaseKey: config.KeyNote,
	Ext:     "txt",
	base:    func(c *config.Config) string { return c.Note },
	create:  func(_ shell.Runner, path string) error { return createFile(path) },
}

// Latex is a LaTeX document under {doc}.
var Latex = Kind{
	Name:    "latex",
	BaseKey: config.KeyDoc,
	Ext:     "tex",
	base:    func(c *config.Config) string { return c.Doc },
	create:  func(_ shell.Runner, path string) error { return createFile(path) },
}

// cargoNew scaffolds a new Rust project at path.
func cargoNew(r shell.Runner, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create directory '%s': %w", filepath.Dir(path), err)
	}
	return r.Run("cargo", "-q", "new", path)
}

// createFile creates an empty file at path along with any missing parent
// directories. It fails if the file already exists.
func createFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create directory '%s': %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	return f.Close()
}
