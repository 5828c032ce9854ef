package config

import (
	"fmt"
	"os"
)

const (
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageS3       = "s3"

	HashingPlain  = "plain"
	HashingArgon2 = "argon2"
)

// Config holds runtime settings for the LoanKeeper CLI.
type Config struct {
	StorageBackend string
	DatabasePath   string
	PostgresDSN    string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string

	PasswordHashing string
	LogLevel        string
	Currency        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = StorageSQLite
	c.DatabasePath = "loankeeper.db"
	c.S3Region = "us-east-1"
	c.PasswordHashing = HashingPlain
	c.LogLevel = "warn"
	c.Currency = "$"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("sqlite storage requires a database path")
		}
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres storage requires a DSN")
		}
	case StorageS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("s3 storage requires a bucket")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	switch c.PasswordHashing {
	case HashingPlain, HashingArgon2:
	default:
		return fmt.Errorf("unknown password hashing %q", c.PasswordHashing)
	}
	return nil
}

// LoadConfig constructs a Config from os.Args. See the package doc for the
// order in which sources are applied.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
