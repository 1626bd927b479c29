package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the data directory.
const EnvHome = "SPLIMINAL_HOME"

// EnvConfig points at a config file to use instead of the one in the data
// directory.
const EnvConfig = "SPLIMINAL_CONFIG"

// DataDir returns the directory used to store spliminal data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".spliminal"), nil
}

// EnsureDataDir creates the data directory if needed and returns its path.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o700); err != nil {
		return "", err
	}
	return d, nil
}

// ConfigPath returns the config file path, honouring EnvConfig.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// LogPath returns the default log file path.
func LogPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "spliminal.log"), nil
}
