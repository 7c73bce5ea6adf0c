// Package paths resolves home-relative locations and verifies candidate paths
// before they are handed to an editor or a scaffolding tool.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used under ~/.config and ~/.cache.
const AppName = "noteiser"

// Home-relative directory and file names.
const (
	configDirName  = ".config"
	cacheDirName   = ".cache"
	configFileName = "config.toml"
)

// EnvHome is the environment variable every path is resolved from.
const EnvHome = "HOME"

// ErrNoHome is returned when HOME is unset or empty.
var ErrNoHome = errors.New("couldn't find home directory: $HOME is not set")

// Verified is a path that existed on disk when Verify checked it.
// The zero value is not a valid path; build one with Verify.
type Verified struct {
	path string
}

// String returns the verified path.
func (v Verified) String() string {
	return v.path
}

// Verify reports whether path names an existing filesystem entry, following
// symlinks. Surrounding whitespace is trimmed before the check, and the
// returned Verified holds the trimmed path.
//
// Any kind of entry passes: a file where a directory was expected is still
// verified, and callers decide how to use it.
func Verify(path string) (Verified, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Verified{}, false
	}
	if _, err := os.Stat(trimmed); err != nil {
		return Verified{}, false
	}
	return Verified{path: trimmed}, true
}

// Home returns the user's home directory from $HOME.
func Home() (string, error) {
	home, ok := os.LookupEnv(EnvHome)
	if !ok || home == "" {
		return "", ErrNoHome
	}
	return home, nil
}

// ConfigDir returns {home}/.config/noteiser.
func ConfigDir(home string) string {
	return filepath.Join(home, configDirName, AppName)
}

// ConfigFile returns {home}/.config/noteiser/config.toml.
func ConfigFile(home string) string {
	return filepath.Join(ConfigDir(home), configFileName)
}

// CacheDir returns {home}/.cache/noteiser, where scratch files live.
func CacheDir(home string) string {
	return filepath.Join(home, cacheDirName, AppName)
}

// CheckExtension appends "."+ext to name when name has no extension.
// Names that already carry one are returned unchanged, so the call is
// idempotent. An empty ext disables normalization.
func CheckExtension(name, ext string) string {
	if ext == "" || filepath.Ext(name) != "" {
		return name
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
