package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	commonConfig "pkg.festserve.dev/festserve-cli/common/config"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir    string
	origGetDir func() (string, error)
}

func (s *ConfigTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()

	s.origGetDir = commonConfig.GetCLIConfigDir
	//nolint:reassign // test code
	commonConfig.GetCLIConfigDir = func() (string, error) {
		return s.tempDir, nil
	}
}

func (s *ConfigTestSuite) TearDownTest() {
	//nolint:reassign // test code
	commonConfig.GetCLIConfigDir = s.origGetDir
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(name string, cfg Config) {
	data, err := json.Marshal(cfg)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(filepath.Join(s.tempDir, name), data, 0o600))
}

func (s *ConfigTestSuite) TestNewService() {
	service, err := NewService("dev")
	s.Require().NoError(err)
	s.Implements((*ServiceInterface)(nil), service)
	s.Equal(commonConfig.EnvDev, service.(*Service).Env)
}

func (s *ConfigTestSuite) TestGetConfig_NoFile() {
	service, err := NewService(commonConfig.EnvProd)
	s.Require().NoError(err)
	s.Empty(service.GetConfig().Credential.Token)
}

func (s *ConfigTestSuite) TestGetConfig_WithFile() {
	s.writeFile("dev-session.json", Config{Credential: models.Credential{Token: "tok123"}})

	service, err := NewService(commonConfig.EnvDev)
	s.Require().NoError(err)
	s.Equal("tok123", service.GetConfig().Credential.Token)
}

func (s *ConfigTestSuite) TestLoad_DiscardsInMemoryChanges() {
	s.writeFile("session.json", Config{Credential: models.Credential{Token: "on-disk"}})

	service, err := NewService(commonConfig.EnvProd)
	s.Require().NoError(err)
	service.GetConfig().Credential.Token = "in-memory"

	s.Require().NoError(service.Load())
	s.Equal("on-disk", service.GetConfig().Credential.Token)
}

func (s *ConfigTestSuite) TestLoad_FileRemovedExternally() {
	s.writeFile("session.json", Config{Credential: models.Credential{Token: "tok123"}})
	service, err := NewService(commonConfig.EnvProd)
	s.Require().NoError(err)

	s.Require().NoError(os.Remove(filepath.Join(s.tempDir, "session.json")))
	s.Require().NoError(service.Load())
	s.Empty(service.GetConfig().Credential.Token)
}

func (s *ConfigTestSuite) TestLoad_CorruptFile() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.tempDir, "session.json"), []byte("{not json"), 0o600))

	service, err := NewService(commonConfig.EnvProd)
	s.Require().NoError(err)
	s.Empty(service.GetConfig().Credential.Token)

	service.GetConfig().Credential.Token = "tok123"
	s.Require().NoError(service.Save())
	s.Require().NoError(service.Load())
	s.Equal("tok123", service.GetConfig().Credential.Token)
}

func (s *ConfigTestSuite) TestSave() {
	service, err := NewService(commonConfig.EnvDev)
	s.Require().NoError(err)

	service.GetConfig().Credential.Token = "tok123"
	s.Require().NoError(service.Save())

	configFile := filepath.Join(s.tempDir, "dev-session.json")
	s.FileExists(configFile)

	info, err := os.Stat(configFile)
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(configFile)
	s.Require().NoError(err)
	s.JSONEq(`{"credential":{"token":"tok123"}}`, string(data))
}

func (s *ConfigTestSuite) TestGetConfigFileName() {
	tests := []struct {
		name         string
		env          string
		expectedFile string
	}{
		{name: "production config", env: commonConfig.EnvProd, expectedFile: "session.json"},
		{name: "development config", env: commonConfig.EnvDev, expectedFile: "dev-session.json"},
		{name: "local config", env: commonConfig.EnvLocal, expectedFile: "local-session.json"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			service, err := NewService(tt.env)
			s.Require().NoError(err)
			filename, err := service.(*Service).getConfigFileName()
			s.Require().NoError(err)
			s.Equal(filepath.Join(s.tempDir, tt.expectedFile), filename)
		})
	}
}

func (s *ConfigTestSuite) TestMockImplementsInterface() {
	s.Implements((*ServiceInterface)(nil), &MockService{})
}
