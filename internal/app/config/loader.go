package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Option customizes the viper instance before the configuration is read.
type Option func(vpr *viper.Viper) error

// WithFlags binds command line flags to configuration keys, flag name to key.
// A flag only overrides the environment when it was set explicitly.
func WithFlags(fs *pflag.FlagSet, keys map[string]string) Option {
	return func(vpr *viper.Viper) error {
		for name, key := range keys {
			flag := fs.Lookup(name)
			if flag == nil {
				return fmt.Errorf("unknown flag %q for key %s", name, key)
			}

			if err := vpr.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("bind flag %q: %w", name, err)
			}
		}

		return nil
	}
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")
	vpr.SetDefault("LOG_FORMAT", "json")

	vpr.SetDefault("AIRGAP_BASE_URL", "https://airportgap.com/api/")
	vpr.SetDefault("AIRGAP_REQUEST_TIMEOUT", "30s")
	vpr.SetDefault("AIRGAP_MAX_ATTEMPTS", 10)
	vpr.SetDefault("AIRGAP_BACKOFF_MULTIPLIER", "1s")
	vpr.SetDefault("AIRGAP_BACKOFF_MIN", "5s")
	vpr.SetDefault("AIRGAP_BACKOFF_MAX", "20s")

	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "10s")

	vpr.SetDefault("SANDBOX_EMAIL", "tester@airportgap.test")
	vpr.SetDefault("SANDBOX_PASSWORD", "airportgap")
	vpr.SetDefault("SANDBOX_TOKEN", "sandbox-token")
	vpr.SetDefault("SANDBOX_PAGE_SIZE", 30)
	vpr.SetDefault("SANDBOX_RATE_LIMIT", 100)
	vpr.SetDefault("SANDBOX_LINK_PREFIX", "/api")
	vpr.SetDefault("SANDBOX_ALLOWED_ORIGINS", []string{"*"})

	vpr.SetDefault("REDIS_ADDR", "localhost:6379")
	vpr.SetDefault("REDIS_TIMEOUT", "3s")
}

// LoadConfig reads configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func LoadConfig(configFile string, opts ...Option) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	setDefaults(vpr)

	vpr.AutomaticEnv()

	if configFile != "" {
		vpr.SetConfigFile(configFile)
		vpr.SetConfigType("env")

		if err := vpr.ReadInConfig(); err != nil {
			slog.Warn("config file not found or cannot be read, using environment variables",
				slog.String("file", configFile),
				slog.String("error", err.Error()))
		} else {
			slog.Info("config file loaded successfully", slog.String("file", configFile))
		}
	}

	for _, opt := range opts {
		if err := opt(vpr); err != nil {
			return Config{}, err
		}
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	// Unmarshal configuration into struct
	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot unmarshal config: %w", err)
	}

	return cfg, nil
}

// MustInitConfig is LoadConfig that panics on error.
func MustInitConfig(configFile string, opts ...Option) Config {
	cfg, err := LoadConfig(configFile, opts...)
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// bindEnvFromStruct automatically binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			// If it's an embedded struct without a tag, recurse
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]
		isSquash := false
		for _, p := range parts {
			if strings.TrimSpace(p) == "squash" {
				isSquash = true
				break
			}
		}

		if isSquash && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar != "" {
			_ = vpr.BindEnv(envVar)

			// If it's an array of struct, check if the value is a JSON string and unmarshal it
			if (field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct) ||
				field.Type.Kind() == reflect.Struct {
				val := vpr.Get(envVar)
				if s, ok := val.(string); ok && s != "" {
					var jsonVal interface{}
					if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
						vpr.Set(envVar, jsonVal)
					}
				}
			}
		}
	}
}
