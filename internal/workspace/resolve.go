// Package workspace turns entity references into filesystem paths and runs
// the create, open, list and remove operations on them.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/paths"
)

var (
	// ErrBaseUnset means the config does not set the kind's base directory.
	ErrBaseUnset = errors.New("base directory not set in config")
	// ErrEmptyName means the reference has no name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrOutsideBase means the reference resolves outside its kind's root.
	ErrOutsideBase = errors.New("path escapes base directory")
)

// Ref is an entity reference as typed by the user: a name and, for nested
// kinds, an optional sub-file. It has not been checked against the disk.
type Ref struct {
	Name string
	File string
}

// Root returns {base}/{dir} for kind.
func Root(cfg *config.Config, kind Kind) (string, error) {
	if cfg == nil {
		return "", config.ErrNotFound
	}
	base := kind.Base(cfg)
	if base == "" {
		return "", fmt.Errorf("%w: set '%s' for %s commands", ErrBaseUnset, kind.BaseKey, kind.Name)
	}
	return filepath.Join(base, kind.Dir), nil
}

// Resolve composes the path for ref without touching the disk:
//
//	nested, no file:  {base}/{dir}/{name}
//	nested, file:     {base}/{dir}/{name}/{subdir}/{file[.ext]}
//	flat:             {base}/{dir}/{name[.ext]}
//
// The result must stay strictly inside {base}/{dir}, and a nested file must
// also stay inside its own {name}/{subdir}.
func Resolve(cfg *config.Config, kind Kind, ref Ref) (string, error) {
	root, err := Root(cfg, kind)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(ref.Name) == "" {
		return "", ErrEmptyName
	}

	var full string
	switch {
	case !kind.Nested():
		full = filepath.Join(root, paths.CheckExtension(ref.Name, kind.Ext))
	case ref.File == "":
		full = filepath.Join(root, ref.Name)
	default:
		entity := filepath.Join(root, ref.Name)
		if err := within(root, entity); err != nil {
			return "", fmt.Errorf("%s '%s': %w", kind.Name, ref.Name, err)
		}
		sub := filepath.Join(entity, kind.SubDir)
		full = filepath.Join(sub, paths.CheckExtension(ref.File, kind.Ext))
		if err := within(sub, full); err != nil {
			return "", fmt.Errorf("%s '%s' file '%s': %w", kind.Name, ref.Name, ref.File, err)
		}
	}

	if err := within(root, full); err != nil {
		return "", fmt.Errorf("%s '%s': %w", kind.Name, ref.Name, err)
	}
	return full, nil
}

// within rejects paths equal to or outside root.
func within(root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrOutsideBase
	}
	return nil
}
