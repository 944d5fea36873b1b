// Package config loads the command line settings from defaults, an optional YAML file
// and ARMBANKRATE_ environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ARMBANKRATE"

type Config struct {
	HTTP  HTTPConfig  `mapstructure:"http"`
	Fetch FetchConfig `mapstructure:"fetch"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type FetchConfig struct {
	RetryNum      uint64        `mapstructure:"retry_num"`
	RetryDuration time.Duration `mapstructure:"retry_duration"`
	// RequestTimeout 0 disables the deadline of a fetch cycle
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Load reads the configuration. An empty path searches ./armbankrate.yaml and
// $HOME/.config/armbankrate/armbankrate.yaml, a missing file is not an error then.
// A file given explicitly must exist
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("armbankrate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "armbankrate"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "")

	v.SetDefault("fetch.retry_num", 0)
	v.SetDefault("fetch.retry_duration", 5*time.Second)
	v.SetDefault("fetch.request_timeout", time.Duration(0))
}
