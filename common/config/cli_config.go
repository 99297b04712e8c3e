package config

import (
	"os"
	"path/filepath"
)

const (
	configDir            = ".festserve"
	HomeDirEnvVariable   = "FESTSERVE_HOME"
	configDirPermissions = 0o700
)

// GetCLIConfigDir returns the directory holding the session file. It is a
// variable so tests can point it at a temp dir.
var GetCLIConfigDir = func() (string, error) {
	if dir := os.Getenv(HomeDirEnvVariable); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDir), nil
}

func SetupCLIConfigDir() error {
	fullConfigDir, err := GetCLIConfigDir()
	if err != nil {
		return err
	}

	fs, err := os.Stat(fullConfigDir)
	if err == nil && !fs.IsDir() {
		// a plain file is in the way
		if err := os.Remove(fullConfigDir); err != nil {
			return err
		}
	}

	return os.MkdirAll(fullConfigDir, configDirPermissions)
}
