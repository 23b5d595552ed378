package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "DATAVERSE"

// FromEnv loads the configuration from DATAVERSE_* environment variables.
// A .env file in the working directory is loaded first when present
// (real environment variables win over .env entries).
func FromEnv() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	}

	v := newViper()
	v.AutomaticEnv()
	return unmarshal(v)
}

// FromFile loads the configuration from a YAML file. Environment variables
// with the DATAVERSE_ prefix override values from the file.
func FromFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("api_version", DefaultAPIVersion)
	v.SetDefault("connect_timeout", DefaultConnectTimeout)
	v.SetDefault("read_timeout", DefaultReadTimeout)
	v.SetDefault("locked_retry_count", DefaultLockedRetryCount)
	v.SetDefault("locked_retry_interval", DefaultLockedRetryInterval)

	// Keys must be declared for AutomaticEnv to pick them up during Unmarshal.
	for _, key := range []string{
		"base_url",
		"api_key",
		"unblock_key",
		"builtin_user_key",
		"logging.level",
		"logging.format",
		"logging.output",
	} {
		_ = v.BindEnv(key)
	}

	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
