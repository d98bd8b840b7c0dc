package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ANNOTATOR_SERVER_PORT
const EnvPrefix = "ANNOTATOR"

var (
	once    sync.Once
	initErr error

	// ConfigPath is the optional YAML settings file read by Init
	ConfigPath = "./config/settings.yaml"

	// EnvFile is the optional dotenv file loaded before environment binding
	EnvFile = ".env"
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			initErr = fmt.Errorf("error loading env file %s: %w", EnvFile, err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// API_KEY is the variable deployments of this service already export
		_ = viper.BindEnv("auth.api_key", EnvPrefix+"_AUTH_API_KEY", "API_KEY")

		configPath := filepath.Clean(ConfigPath)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing settings file is fine - defaults and env vars apply
			if !errors.Is(err, fs.ErrNotExist) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// Reset clears loaded configuration so Init can run again
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Set overrides a config value, used for command line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// IsProduction reports whether the configured environment is production
func IsProduction() bool {
	env := viper.GetString("environment")
	return env == "production" || env == "prod"
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if err := validateDatabase(viper.GetString("database.driver"), viper.GetString("database.dsn")); err != nil {
		return err
	}

	if viper.GetString("auth.api_key") == "" {
		if IsProduction() {
			return fmt.Errorf("auth.api_key must be set in production")
		}
		fmt.Fprintln(os.Stderr, "Warning: no API key configured, every /videos request will be rejected")
	}

	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}

func validateDatabase(driver, dsn string) error {
	switch driver {
	case "sqlite":
		return nil
	case "mysql", "postgres":
		if dsn == "" {
			return fmt.Errorf("database.dsn is required for driver %q", driver)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if err := validateDatabase(c.Database.Driver, c.Database.DSN); err != nil {
		return err
	}

	if c.Auth.Header == "" {
		c.Auth.Header = "x-api-key"
	}

	if c.RateLimiting.RPS <= 0 {
		c.RateLimiting.RPS = 10
	}
	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 20
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/videos.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	// Auth defaults
	viper.SetDefault("auth.api_key", "")
	viper.SetDefault("auth.header", "x-api-key")

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.driver", "memory")
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("cache.max_size_mb", 16)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.password", "")
	viper.SetDefault("cache.redis.db", 0)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/app.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)
}
