// Package config provides configuration management for the audit trail service.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	River    RiverConfig    `mapstructure:"river"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// One shared pgx pool serves both Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize  int `mapstructure:"general_pool_size"`
	DispatchPoolSize int `mapstructure:"dispatch_pool_size"`
}

// AuditConfig contains audit capture and retention settings.
type AuditConfig struct {
	// MaxMetadataSize caps the serialized metadata, in characters.
	MaxMetadataSize int `mapstructure:"max_metadata_size"`

	// BulkThreshold is the item count above which bulk operations are
	// sampled instead of logged per item.
	BulkThreshold int `mapstructure:"bulk_threshold"`

	// BulkSampleSize is how many items are logged individually when a
	// bulk operation exceeds the threshold.
	BulkSampleSize int `mapstructure:"bulk_sample_size"`

	// SensitiveFields are substrings that mark a field name as sensitive.
	// Matching fields are excluded from change tracking.
	SensitiveFields []string `mapstructure:"sensitive_fields"`

	// AppendTimeout bounds a single record write.
	AppendTimeout time.Duration `mapstructure:"append_timeout"`

	// CleanupBatchSize is the default delete batch for retention cleanup.
	CleanupBatchSize int `mapstructure:"cleanup_batch_size"`

	// CleanupInterval is the period of the scheduled cleanup job.
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`

	// CriticalActions extend the built-in set of long-retention actions.
	CriticalActions []string `mapstructure:"critical_actions"`

	Retention RetentionConfig `mapstructure:"retention"`
}

// RetentionConfig holds per-category retention windows in days.
type RetentionConfig struct {
	AuthenticationDays int `mapstructure:"authentication_days"`
	CriticalDays       int `mapstructure:"critical_days"`
	DefaultDays        int `mapstructure:"default_days"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/audittrail")

	// Maps nested config: database.max_conns -> DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Audit.MaxMetadataSize <= 0 {
		return fmt.Errorf("audit.max_metadata_size must be positive")
	}
	if c.Audit.BulkSampleSize > c.Audit.BulkThreshold {
		return fmt.Errorf("audit.bulk_sample_size must not exceed audit.bulk_threshold")
	}
	if c.Audit.Retention.AuthenticationDays <= 0 ||
		c.Audit.Retention.CriticalDays <= 0 ||
		c.Audit.Retention.DefaultDays <= 0 {
		return fmt.Errorf("audit.retention windows must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database (shared pool)
	// The empty default registers the key so AutomaticEnv picks up
	// DATABASE_URL during Unmarshal.
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "audittrail")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "audittrail")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker Pool
	v.SetDefault("worker.general_pool_size", 50)
	v.SetDefault("worker.dispatch_pool_size", 100)

	// Audit capture
	v.SetDefault("audit.max_metadata_size", 10000)
	v.SetDefault("audit.bulk_threshold", 50)
	v.SetDefault("audit.bulk_sample_size", 10)
	v.SetDefault("audit.sensitive_fields", []string{
		"password", "token", "secret", "key", "hash", "salt",
		"credit_card", "ssn", "social_security", "bank_account",
	})
	v.SetDefault("audit.append_timeout", "5s")
	v.SetDefault("audit.cleanup_batch_size", 1000)
	v.SetDefault("audit.cleanup_interval", "24h")
	v.SetDefault("audit.critical_actions", []string{})

	// Retention windows (days)
	v.SetDefault("audit.retention.authentication_days", 180)
	v.SetDefault("audit.retention.critical_days", 2555)
	v.SetDefault("audit.retention.default_days", 365)
}
