package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home.
const AppName = "mcpack"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns mcpack's configuration directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultConfigPath returns the default location of mcpack's config file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultPatternsPath returns the default location of the optional
// custom patterns overlay file.
func DefaultPatternsPath() string {
	return filepath.Join(ConfigDir(), "patterns.toml")
}

// EnsureDir creates the directory and any necessary parents with the
// specified permissions. If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
