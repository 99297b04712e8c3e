package config

import "pkg.festserve.dev/festserve-cli/cmd/internal/models"

type Config struct {
	Credential models.Credential `json:"credential"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	Env    string
	Config Config
}

type ServiceInterface interface {
	// GetConfig returns the in-memory config
	GetConfig() *Config
	// Load re-reads the config from the file system, discarding in-memory changes
	Load() error
	// Save saves the config to the file system
	Save() error
}
