package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// GetConfigDir returns the platform-specific configuration directory
// Linux/Mac: ~/.config/sportai
// Windows: C:\Users\username\.config\sportai
func GetConfigDir() string {
	return filepath.Join(GetHomeDir(), ".config", "sportai")
}

// GetDefaultDataDir returns the platform-specific default data directory
// Linux/Mac: ~/.local/share/sportai
// Windows: C:\Users\username\AppData\Local\sportai
func GetDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(GetHomeDir(), "AppData", "Local")
		}
		return filepath.Join(localAppData, "sportai")
	}

	return filepath.Join(GetHomeDir(), ".local", "share", "sportai")
}

// GetConfigFilePath returns the path to config.toml
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// GetHomeDir returns the user's home directory across platforms
// Windows: %USERPROFILE% (C:\Users\username)
// Linux/Mac: $HOME (/home/username)
func GetHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("USERPROFILE")
		if home == "" {
			home = os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		}
		if home == "" {
			home = "C:\\"
		}
		return home
	}
	home := os.Getenv("HOME")
	if home == "" {
		home = "/"
	}
	return home
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(GetHomeDir(), path[2:])
	}

	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDataDirPermissions ensures data directory exists with 0700 permissions
func EnsureDataDirPermissions(dataDir string) error {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dataDir, 0700)
		}
		return err
	}

	if info.Mode().Perm() != 0700 {
		return os.Chmod(dataDir, 0700)
	}
	return nil
}
