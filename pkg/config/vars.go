package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gndwc"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gndwc by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gndwc/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gndwc/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// RefDir returns the directory path for reference tables (sites,
// vocabulary, measurement types) when no explicit --refs flag is given.
// Returns ~/.config/gndwc/refs by default.
func RefDir(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "refs")
}
