package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Auth         AuthConfig      `mapstructure:"auth"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"` // sqlite, mysql or postgres
	Path                  string        `mapstructure:"path"`   // sqlite only
	DSN                   string        `mapstructure:"dsn"`    // mysql and postgres
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// AuthConfig contains the shared-secret settings for the API key gate
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
	Header string `mapstructure:"header"`
}

// CacheConfig contains video cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Driver    string        `mapstructure:"driver"` // memory (per process) or redis (shared by replicas)
	TTL       time.Duration `mapstructure:"ttl"`
	MaxSizeMB int64         `mapstructure:"max_size_mb"`
	Redis     RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or text
	Output     string `mapstructure:"output"` // stdout or file
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}
