package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults filled in after unmarshal when config.yml leaves them unset.
const (
	DefaultDuration   = 30
	DefaultMaxResults = 50
	DefaultTimeoutMS  = 10000
	DefaultStagingDir = "./tmp"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. With no
// arguments it looks for config.yml in the working directory; explicit paths
// override the search list.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.API.Duration == 0 {
		cfg.API.Duration = DefaultDuration
	}
	if cfg.API.MaxResults == 0 {
		cfg.API.MaxResults = DefaultMaxResults
	}
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Staging.Dir == "" {
		cfg.Staging.Dir = DefaultStagingDir
	}
}
