package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dans-knaw/go-dataverse/logger"
)

// Defaults for the Dataverse API client.
const (
	DefaultAPIVersion          = "1"
	DefaultConnectTimeout      = 5 * time.Second
	DefaultReadTimeout         = 300 * time.Second
	DefaultLockedRetryCount    = 10
	DefaultLockedRetryInterval = 500 * time.Millisecond
)

// Config holds the settings for a Dataverse API client.
//
// BaseURL is the server root (e.g. "https://demo.dataverse.org"); the API
// path prefix and version segment are appended by the transport. APIKey may
// be empty for anonymous access to public data.
type Config struct {
	// BaseURL is the root URL of the Dataverse server.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// APIKey is the API token. Empty means anonymous access.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// UnblockKey is the secondary credential for admin endpoints called
	// from non-trusted origins. Optional.
	UnblockKey string `yaml:"unblock_key" mapstructure:"unblock_key"`

	// BuiltinUserKey authorizes creation of builtin user accounts. Optional.
	BuiltinUserKey string `yaml:"builtin_user_key" mapstructure:"builtin_user_key"`

	// APIVersion is the API version segment ("1" gives /api/v1/...).
	APIVersion string `yaml:"api_version" mapstructure:"api_version"`

	// ConnectTimeout bounds establishing the TCP/TLS connection.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout" validate:"gte=0"`

	// ReadTimeout bounds the whole request including reading the body.
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`

	// LockedRetryCount is the number of retries after a locked-dataset
	// failure. Zero means a single attempt with no retry.
	LockedRetryCount int `yaml:"locked_retry_count" mapstructure:"locked_retry_count" validate:"gte=0"`

	// LockedRetryInterval is the fixed delay between locked-dataset retries.
	LockedRetryInterval time.Duration `yaml:"locked_retry_interval" mapstructure:"locked_retry_interval" validate:"gte=0"`

	// Logging configures the client logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// Default returns a Config populated with the documented defaults.
// BaseURL and credentials still have to be filled in.
func Default() Config {
	return Config{
		APIVersion:          DefaultAPIVersion,
		ConnectTimeout:      DefaultConnectTimeout,
		ReadTimeout:         DefaultReadTimeout,
		LockedRetryCount:    DefaultLockedRetryCount,
		LockedRetryInterval: DefaultLockedRetryInterval,
	}
}

// ApplyDefaults fills zero-value fields whose zero is not meaningful.
// LockedRetryCount is left alone: zero legitimately means "no retries".
func (c *Config) ApplyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.LockedRetryInterval == 0 {
		c.LockedRetryInterval = DefaultLockedRetryInterval
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration via struct tags.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return c.Logging.Validate()
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
