package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"pkg.festserve.dev/festserve-cli/common/logger"
)

const (
	FestServeConfigFileEnvVariable = "FESTSERVE_CONFIG_FILE"
	FestServeConfigFilename        = "festserve.toml"

	EnvLocal = "LOCAL"
	EnvDev   = "DEV"
	EnvProd  = "PROD"

	DefaultAPIURL  = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second

	flagForConfigFile = "config"
)

var (
	ErrEmptyConfigFlag = eris.New("config cannot be empty")
	ErrInvalidAPIURL   = eris.New("api_url must be an absolute http(s) URL")
	ErrInvalidEnv      = eris.New("env must be one of PROD, DEV, LOCAL")
)

type Config struct {
	APIURL  string
	Env     string
	Timeout time.Duration
	// File is the config file the values were read from, empty when only defaults and env were used.
	File string
}

// fileConfig is the on-disk shape of festserve.toml.
type fileConfig struct {
	APIURL  string `toml:"api_url"`
	Env     string `toml:"env"`
	Timeout *int   `toml:"timeout"` // seconds, 0 disables the timeout
}

// envConfig holds overrides read from the environment. Unset or empty
// variables do not override; FESTSERVE_TIMEOUT=0s disables the timeout.
type envConfig struct {
	APIURL  string         `env:"FESTSERVE_API_URL"`
	Env     string         `env:"FESTSERVE_ENV"`
	Timeout *time.Duration `env:"FESTSERVE_TIMEOUT"`
}

func AddConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagForConfigFile, "", "a toml encoded config file")
}

func Default() *Config {
	return &Config{
		APIURL:  DefaultAPIURL,
		Env:     EnvProd,
		Timeout: DefaultTimeout,
	}
}

// GetConfig resolves the config from, in order of precedence: environment
// variables, the --config flag or FESTSERVE_CONFIG_FILE, the nearest
// festserve.toml in the working directory or its parents, and defaults.
func GetConfig(cmd *cobra.Command) (*Config, error) {
	filename, err := configFileFromFlag(cmd)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = os.Getenv(FestServeConfigFileEnvVariable)
	}

	cfg := Default()
	if filename != "" {
		if err := loadConfigFromFile(filename, cfg); err != nil {
			return nil, err
		}
	} else if err := findAndLoadConfig(cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFileFromFlag(cmd *cobra.Command) (string, error) {
	if cmd == nil {
		return "", nil
	}
	flag := cmd.Flag(flagForConfigFile)
	if flag == nil || !flag.Changed {
		return "", nil
	}
	if flag.Value.String() == "" {
		return "", ErrEmptyConfigFlag
	}
	return flag.Value.String(), nil
}

func findAndLoadConfig(cfg *Config) error {
	currDir, err := os.Getwd()
	if err != nil {
		return eris.Wrap(err, "failed to get working directory")
	}

	for {
		filename := filepath.Join(currDir, FestServeConfigFilename)
		if _, err := os.Stat(filename); err == nil {
			return loadConfigFromFile(filename, cfg)
		} else if !os.IsNotExist(err) {
			return eris.Wrapf(err, "failed to stat %q", filename)
		}
		parent := filepath.Dir(currDir)
		if parent == currDir {
			break
		}
		currDir = parent
	}

	logger.Info("no festserve.toml found, using defaults")
	return nil
}

func loadConfigFromFile(filename string, cfg *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return eris.Wrapf(err, "failed to open config file %q", filename)
	}
	defer file.Close()

	var fc fileConfig
	if err := toml.NewDecoder(file).Decode(&fc); err != nil {
		return eris.Wrapf(err, "failed to decode config file %q", filename)
	}

	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if fc.Env != "" {
		cfg.Env = fc.Env
	}
	if fc.Timeout != nil {
		cfg.Timeout = time.Duration(*fc.Timeout) * time.Second
	}
	cfg.File = filename

	logger.Infof("loaded config from %q", filename)
	return nil
}

func applyEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return eris.Wrap(err, "failed to parse environment")
	}
	if ec.APIURL != "" {
		cfg.APIURL = ec.APIURL
	}
	if ec.Env != "" {
		cfg.Env = ec.Env
	}
	if ec.Timeout != nil {
		cfg.Timeout = *ec.Timeout
	}
	return nil
}

func (c *Config) validate() error {
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return eris.Wrapf(ErrInvalidAPIURL, "got %q", c.APIURL)
	}

	c.Env = strings.ToUpper(c.Env)
	switch c.Env {
	case EnvProd, EnvDev, EnvLocal:
	default:
		return eris.Wrapf(ErrInvalidEnv, "got %q", c.Env)
	}

	if c.Timeout < 0 {
		c.Timeout = 0
	}
	return nil
}
