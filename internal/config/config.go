package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// AllowedOrigins lists the frontend origins permitted by CORS.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,url"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"            validate:"required,oneof=postgres sqlite"`
	URL             string        `mapstructure:"url"               validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// CacheConfig contains the settings of the Redis cache in front of the store.
type CacheConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	Addr             string        `mapstructure:"addr"              validate:"required_if=Enabled true"`
	Password         string        `mapstructure:"password"`
	DB               int           `mapstructure:"db"                validate:"gte=0"`
	KeyPrefix        string        `mapstructure:"key_prefix"`
	DefaultTTL       time.Duration `mapstructure:"default_ttl"       validate:"gt=0"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout" validate:"gt=0"`
	DialTimeout      time.Duration `mapstructure:"dial_timeout"      validate:"gt=0"`
	PoolSize         int           `mapstructure:"pool_size"         validate:"gte=1"`
	// InvalidationAttempts bounds how often a failed cache write after a
	// committed store mutation is attempted before it is given up on.
	InvalidationAttempts int           `mapstructure:"invalidation_attempts" validate:"gte=1,lte=10"`
	InvalidationBackoff  time.Duration `mapstructure:"invalidation_backoff"  validate:"gt=0"`
}
