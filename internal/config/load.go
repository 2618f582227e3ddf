package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every environment variable read by Load,
// e.g. TASKBOARD_SERVER_PORT.
const EnvPrefix = "TASKBOARD"

// Default values applied before any other source is read.
var defaults = map[string]interface{}{
	"server.port":             8000,
	"server.log_level":        "info",
	"server.shutdown_timeout": "10s",
	"cors.allowed_origins":    []string{"*"},
	"cors.max_age":            300,
	"metrics.enabled":         true,
	"metrics.path":            "/metrics",
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"port":      "server.port",
	"log-level": "server.log_level",
}

// LoadOptions tells Load where to look beyond defaults and the environment.
type LoadOptions struct {
	// ConfigFile is an optional path to a YAML, JSON or TOML config file.
	ConfigFile string
	// DotEnvFile is an optional .env file whose values are exported into the
	// process environment before reading it. A missing file is ignored.
	DotEnvFile string
	// Flags, when set, supplies command-line overrides for the keys in flagKeys.
	Flags *pflag.FlagSet
}

// Load configuration from defaults, an optional config file, environment
// variables and command-line flags, in increasing order of precedence.
// Returns a populated, validated Config or an error if loading/validation fails.
func Load(opts LoadOptions) (*Config, error) {
	if opts.DotEnvFile != "" {
		if err := godotenv.Load(opts.DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.DotEnvFile, err)
		}
	}

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	// TASKBOARD_SERVER_PORT -> server.port
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
