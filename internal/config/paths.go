package config

import (
	"errors"
	"os"
	"path/filepath"
)

const appDirName = "luxtree"

func appConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultPath is config.toml inside the user config directory.
func DefaultPath() (string, error) {
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
