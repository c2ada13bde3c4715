// Package paths resolves the configuration and data directories used by
// boundctl. Each directory follows a flag > config > environment > default
// precedence chain.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-user directory name under the platform base dirs.
const appDirName = "bounded"

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".bounded"
	DefaultDataDirName   = ".bounded-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "BOUNDED_CONFIG_DIR"
	EnvDataDir   = "BOUNDED_DATA_DIR"
)

// platform holds OS lookups that tests can replace.
var platform = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/bounded (fallback ~/.config/bounded)
// macOS:   ~/Library/Application Support/bounded
// Windows: %APPDATA%/bounded
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/bounded (fallback ~/.local/share/bounded)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// userDir applies the XDG rules on Linux and os.UserConfigDir elsewhere.
func userDir(xdgEnv, homeRelative string) (string, error) {
	if platform.goos != "linux" {
		dir, err := platform.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platform.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRelative, appDirName), nil
}

// ResolveConfigDir returns the configuration directory:
// flag > BOUNDED_CONFIG_DIR > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory:
// flag > config value > BOUNDED_DATA_DIR > $(CWD)/.bounded-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, dir := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
