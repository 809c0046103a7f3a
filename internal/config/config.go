package config

import (
	"fmt"
	"strings"

	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SourceDB    = "db"
	SourceMongo = "mongo"

	SinkDB   = "db"
	SinkFile = "file"
)

type Config struct {
	Database       DatabaseConfig
	RecordSource   string
	Mongo          MongoConfig
	Reconciliation ReconciliationConfig
	HTTP           HTTPConfig
	Logging        LoggingConfig
}

type DatabaseConfig struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	LedgerDB string
	FundsDB  string
}

type ReconciliationConfig struct {
	PaidStatus      string
	Category        string
	BatchSize       int
	PageSize        int
	CacheSize       int
	CacheResetEvery int
	ProgressEvery   int
	PartitionSink   string
	ResultsDir      string
}

type HTTPConfig struct {
	Addr        string
	CORSOrigins []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. Call godotenv first if
// a .env file should be honoured.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "loan_reconciliation")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("RECORD_SOURCE", SourceDB)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_LEDGER_DB", "open")
	v.SetDefault("MONGO_FUNDS_DB", "investment_funds")
	v.SetDefault("RECON_CATEGORY", "settled")
	v.SetDefault("RECON_BATCH_SIZE", 500)
	v.SetDefault("RECON_PAGE_SIZE", 500)
	v.SetDefault("RECON_CACHE_SIZE", 100)
	v.SetDefault("RECON_CACHE_RESET_EVERY", 500)
	v.SetDefault("RECON_PROGRESS_EVERY", 100)
	v.SetDefault("RECON_PARTITION_SINK", SinkDB)
	v.SetDefault("RECON_RESULTS_DIR", "results")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		RecordSource: strings.ToLower(v.GetString("RECORD_SOURCE")),
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			LedgerDB: v.GetString("MONGO_LEDGER_DB"),
			FundsDB:  v.GetString("MONGO_FUNDS_DB"),
		},
		Reconciliation: ReconciliationConfig{
			PaidStatus:      strings.TrimSpace(v.GetString("RECON_PAID_STATUS")),
			Category:        v.GetString("RECON_CATEGORY"),
			BatchSize:       v.GetInt("RECON_BATCH_SIZE"),
			PageSize:        v.GetInt("RECON_PAGE_SIZE"),
			CacheSize:       v.GetInt("RECON_CACHE_SIZE"),
			CacheResetEvery: v.GetInt("RECON_CACHE_RESET_EVERY"),
			ProgressEvery:   v.GetInt("RECON_PROGRESS_EVERY"),
			PartitionSink:   strings.ToLower(v.GetString("RECON_PARTITION_SINK")),
			ResultsDir:      v.GetString("RECON_RESULTS_DIR"),
		},
		HTTP: HTTPConfig{
			Addr:        v.GetString("HTTP_ADDR"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings Load cannot default.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return &ConfigError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", c.Database.Driver)}
	}
	switch c.RecordSource {
	case SourceDB, SourceMongo:
	default:
		return &ConfigError{Field: "RECORD_SOURCE", Message: fmt.Sprintf("unsupported source %q", c.RecordSource)}
	}
	if c.RecordSource == SourceMongo && c.Mongo.URI == "" {
		return &ConfigError{Field: "MONGO_URI", Message: "required when RECORD_SOURCE=mongo"}
	}

	r := c.Reconciliation
	if r.PaidStatus == "" {
		return &ConfigError{Field: "RECON_PAID_STATUS", Message: "terminal paid status token is required"}
	}
	switch r.PartitionSink {
	case SinkDB, SinkFile:
	default:
		return &ConfigError{Field: "RECON_PARTITION_SINK", Message: fmt.Sprintf("unsupported sink %q", r.PartitionSink)}
	}
	if r.PartitionSink == SinkFile && r.ResultsDir == "" {
		return &ConfigError{Field: "RECON_RESULTS_DIR", Message: "required for the file sink"}
	}
	for field, n := range map[string]int{
		"RECON_BATCH_SIZE":     r.BatchSize,
		"RECON_PAGE_SIZE":      r.PageSize,
		"RECON_CACHE_SIZE":     r.CacheSize,
		"RECON_PROGRESS_EVERY": r.ProgressEvery,
	} {
		if n <= 0 {
			return &ConfigError{Field: field, Message: "must be positive"}
		}
	}
	if r.CacheResetEvery < 0 {
		return &ConfigError{Field: "RECON_CACHE_RESET_EVERY", Message: "must not be negative"}
	}
	return nil
}

// Options maps the reconciliation settings onto service options.
func (r ReconciliationConfig) Options() reconciliation.Options {
	return reconciliation.Options{
		Category:        r.Category,
		PaidStatus:      r.PaidStatus,
		PageSize:        r.PageSize,
		BatchThreshold:  r.BatchSize,
		CacheSize:       r.CacheSize,
		CacheResetEvery: r.CacheResetEvery,
		ProgressEvery:   r.ProgressEvery,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
