// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bcrentry/internal/fetch"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for config file discovery.
	AppName = "create-bcr-entry"

	// envPrefix namespaces the environment variables read by this tool:
	// BCR_ENTRY_GITHUB_TOKEN, BCR_ENTRY_DOWNLOAD_HOST, BCR_ENTRY_DOWNLOAD_TIMEOUT.
	envPrefix = "BCR_ENTRY"
)

// Config holds the tool's runtime settings. Everything has a working default;
// a config file is never required.
type Config struct {
	// GitHubToken is attached to archive downloads against the configured
	// host, for private repositories. Empty means anonymous.
	GitHubToken string `mapstructure:"github_token"`

	// DownloadHost is the base URL archives are fetched from.
	DownloadHost string `mapstructure:"download_host"`

	// DownloadTimeout bounds the archive download.
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DownloadHost:    "https://github.com",
		DownloadTimeout: fetch.DefaultTimeout,
	}
}

// Load reads configuration from the given file (optional, "" means none) and
// the environment. Environment variables override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("github_token", defaults.GitHubToken)
	v.SetDefault("download_host", defaults.DownloadHost)
	v.SetDefault("download_timeout", defaults.DownloadTimeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the pipeline cannot work with.
func (c *Config) validate() error {
	if c.DownloadHost == "" {
		return errors.New("download_host must not be empty")
	}
	if !strings.HasPrefix(c.DownloadHost, "http://") && !strings.HasPrefix(c.DownloadHost, "https://") {
		return fmt.Errorf("download_host %q must be an http(s) URL", c.DownloadHost)
	}
	if c.DownloadTimeout <= 0 {
		return fmt.Errorf("download_timeout must be positive, got %s", c.DownloadTimeout)
	}
	return nil
}
