package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/noteiser/internal/apperr"
	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/editor"
	"github.com/mesh-intelligence/noteiser/internal/listing"
	"github.com/mesh-intelligence/noteiser/internal/notify"
	"github.com/mesh-intelligence/noteiser/internal/paths"
	"github.com/mesh-intelligence/noteiser/internal/shell"
)

// Confirmer gates destructive operations.
type Confirmer interface {
	Confirm(detail string) bool
}

// Service runs workspace operations for one invocation. Config may be nil
// when no config file exists; operations that need a base directory then
// fail with config.ErrNotFound.
type Service struct {
	Config         *config.Config
	Home           string
	EditorOverride string
	Runner         shell.Runner
	Gate           Confirmer
	Out            io.Writer
}

// Create makes a new entity and opens it in the editor. An entity that
// already exists is never overwritten or reopened.
func (s *Service) Create(kind Kind, name string) error {
	target, err := Resolve(s.Config, kind, Ref{Name: name})
	if err != nil {
		return err
	}

	if _, exists := paths.Verify(target); exists {
		return fmt.Errorf("%s '%s' %w", kind.Name, name, apperr.ErrAlreadyExists)
	}

	cmd, err := editor.Resolve(s.EditorOverride, s.Config)
	if err != nil {
		return err
	}

	if err := kind.create(s.Runner, target); err != nil {
		return fmt.Errorf("could not create %s '%s': %w", kind.Name, name, err)
	}
	notify.Successf(s.Out, "%s '%s' created successfully", capitalize(kind.Name), name)

	open := target
	if kind.Nested() && kind.OpenFile != "" {
		open, err = Resolve(s.Config, kind, Ref{Name: name, File: kind.OpenFile})
		if err != nil {
			return err
		}
	}
	return s.launchWith(cmd, open)
}

// Open resolves ref and opens it in the editor.
func (s *Service) Open(kind Kind, ref Ref) error {
	target, err := Resolve(s.Config, kind, ref)
	if err != nil {
		return err
	}

	verified, ok := paths.Verify(target)
	if !ok {
		return fmt.Errorf("%s not found: '%s': %w", kind.Name, target, apperr.ErrNotFound)
	}
	return s.edit(verified)
}

// OpenPath opens an arbitrary user-supplied path in the editor.
func (s *Service) OpenPath(path string) error {
	return s.launch(path)
}

// List returns the contents of the kind's root, or of one nested entity
// when name is given.
func (s *Service) List(kind Kind, name string) (string, []listing.Entry, error) {
	dir, err := Root(s.Config, kind)
	if err != nil {
		return "", nil, err
	}
	if name != "" {
		if dir, err = Resolve(s.Config, kind, Ref{Name: name}); err != nil {
			return "", nil, err
		}
	}

	verified, ok := paths.Verify(dir)
	if !ok {
		return "", nil, fmt.Errorf("directory '%s' does not exist: %w", dir, apperr.ErrNotFound)
	}

	entries, err := listing.Read(verified.String())
	if err != nil {
		return "", nil, err
	}
	return verified.String(), entries, nil
}

// Remove deletes an entity and everything under it after the user confirms.
// A declined prompt returns apperr.ErrDeclined and leaves the disk untouched.
func (s *Service) Remove(kind Kind, name string) error {
	target, err := Resolve(s.Config, kind, Ref{Name: name})
	if err != nil {
		return err
	}

	verified, ok := paths.Verify(target)
	if !ok {
		return fmt.Errorf("%s not found: '%s': %w", kind.Name, target, apperr.ErrNotFound)
	}

	if s.Gate == nil || !s.Gate.Confirm(fmt.Sprintf("remove %s '%s'", kind.Name, name)) {
		return apperr.ErrDeclined
	}

	if err := os.RemoveAll(verified.String()); err != nil {
		return fmt.Errorf("could not remove %s '%s': %w", kind.Name, verified, err)
	}
	notify.Successf(s.Out, "Successfully deleted %s", verified)
	return nil
}

// Scratch creates an empty, uniquely named file under the cache directory
// and opens it.
func (s *Service) Scratch(ext string) (string, error) {
	if s.Home == "" {
		return "", paths.ErrNoHome
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	path := filepath.Join(paths.CacheDir(s.Home), paths.CheckExtension("scratch-"+id.String(), ext))

	cmd, err := editor.Resolve(s.EditorOverride, s.Config)
	if err != nil {
		return "", err
	}

	if err := createFile(path); err != nil {
		return "", fmt.Errorf("temp file error: %w", err)
	}
	return path, s.launchWith(cmd, path)
}

// launch verifies path and opens it in the editor.
func (s *Service) launch(path string) error {
	cmd, err := editor.Resolve(s.EditorOverride, s.Config)
	if err != nil {
		return err
	}
	return s.launchWith(cmd, path)
}

// launchWith verifies path and opens it with an already resolved editor.
func (s *Service) launchWith(cmd, path string) error {
	verified, ok := paths.Verify(path)
	if !ok {
		return fmt.Errorf("editor could not find file '%s': %w", path, apperr.ErrNotFound)
	}
	logrus.WithField("path", verified.String()).Debug("launching editor")
	return editor.Launch(s.Runner, cmd, verified)
}

func (s *Service) edit(target paths.Verified) error {
	cmd, err := editor.Resolve(s.EditorOverride, s.Config)
	if err != nil {
		return err
	}
	logrus.WithField("path", target.String()).Debug("launching editor")
	return editor.Launch(s.Runner, cmd, target)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
