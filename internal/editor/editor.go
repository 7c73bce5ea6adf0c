// Package editor picks the editor command for one invocation and launches it
// on a verified path.
package editor

import (
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/paths"
	"github.com/mesh-intelligence/noteiser/internal/shell"
)

// EnvEditor is the last-resort source for the editor command.
const EnvEditor = "EDITOR"

// ErrNoEditor is returned when no source yields an editor command.
var ErrNoEditor = errors.New("no available editors to use: pass --editor, set editor in config.toml, or set $EDITOR")

// Source names where the editor command came from.
type Source string

const (
	SourceFlag         Source = "flag"
	SourceConfig       Source = "config.editor"
	SourceConfigBackup Source = "config.editor_backup"
	SourceEnv          Source = "env.EDITOR"
)

// Resolve returns the editor command using the precedence chain:
// override > cfg.Editor > cfg.EditorBackup > $EDITOR.
//
// A nil cfg means no config file was found; the config steps are skipped.
func Resolve(override string, cfg *config.Config) (string, error) {
	cmd, src, err := ResolveWithSource(override, cfg)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"editor": cmd, "source": src}).Debug("editor resolved")
	return cmd, nil
}

// ResolveWithSource is Resolve that also reports which step won.
func ResolveWithSource(override string, cfg *config.Config) (string, Source, error) {
	if override != "" {
		return override, SourceFlag, nil
	}
	if cfg != nil {
		if cfg.Editor != "" {
			return cfg.Editor, SourceConfig, nil
		}
		if cfg.EditorBackup != "" {
			return cfg.EditorBackup, SourceConfigBackup, nil
		}
	}
	if env := os.Getenv(EnvEditor); env != "" {
		return env, SourceEnv, nil
	}
	return "", "", ErrNoEditor
}

// Launch runs editorCmd on target and waits for the editor to exit.
// editorCmd may carry its own arguments, e.g. "code --wait".
func Launch(runner shell.Runner, editorCmd string, target paths.Verified) error {
	fields := strings.Fields(editorCmd)
	if len(fields) == 0 {
		return ErrNoEditor
	}
	args := append(fields[1:], target.String())
	return runner.Run(fields[0], args...)
}
