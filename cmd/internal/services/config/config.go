package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	commonConfig "pkg.festserve.dev/festserve-cli/common/config"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

const (
	defaultFileName = "session.json"
	filePermissions = 0o600
)

var ErrCannotSaveConfig = eris.New("Critical config update error could not save")

func NewService(env string) (ServiceInterface, error) {
	service := &Service{
		Env:    strings.ToUpper(env),
		Config: Config{},
	}

	if err := service.Load(); err != nil {
		return nil, eris.Wrap(err, "failed to get config")
	}
	return service, nil
}

func (s *Service) GetConfig() *Config {
	return &s.Config
}

func (s *Service) Load() error {
	var config Config

	configFile, err := s.getConfigFileName()
	if err != nil {
		return eris.Wrap(err, "failed get config file name")
	}

	file, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.Config = Config{} // no session yet
			return nil
		}
		return eris.Wrap(err, "failed to read config file")
	}

	// An unreadable file counts as no session so login can overwrite it.
	if err := json.Unmarshal(file, &config); err != nil {
		logger.Warn(eris.Wrapf(err, "ignoring unreadable session file %s", configFile))
		s.Config = Config{}
		return nil
	}

	s.Config = config
	return nil
}

func (s *Service) Save() error {
	if err := commonConfig.SetupCLIConfigDir(); err != nil {
		return eris.Wrap(ErrCannotSaveConfig, err.Error())
	}

	configFile, err := s.getConfigFileName()
	if err != nil {
		return eris.Wrap(err, "failed get config file name")
	}

	configJSON, err := json.Marshal(s.Config)
	if err != nil {
		return eris.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configFile, configJSON, filePermissions); err != nil {
		return eris.Wrap(ErrCannotSaveConfig, err.Error())
	}
	return nil
}

func (s *Service) getConfigFileName() (string, error) {
	fileName := defaultFileName
	if s.Env == commonConfig.EnvDev || s.Env == commonConfig.EnvLocal {
		fileName = strings.ToLower(s.Env) + "-" + fileName
	}
	fullConfigDir, err := commonConfig.GetCLIConfigDir()
	if err != nil {
		return "", eris.Wrap(err, "failed get config dir")
	}
	return filepath.Join(fullConfigDir, fileName), nil
}
