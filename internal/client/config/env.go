package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFile is the optional env file read before the environment.
var dotEnvFile = ".env"

func loadDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
}

// parseEnv overlays cfg with LOANKEEPER_* variables. Unset or empty
// variables are ignored.
func parseEnv(cfg *Config) {
	vars := map[string]*string{
		"LOANKEEPER_STORAGE":          &cfg.StorageBackend,
		"LOANKEEPER_DB_PATH":          &cfg.DatabasePath,
		"LOANKEEPER_POSTGRES_DSN":     &cfg.PostgresDSN,
		"LOANKEEPER_S3_BUCKET":        &cfg.S3Bucket,
		"LOANKEEPER_S3_REGION":        &cfg.S3Region,
		"LOANKEEPER_S3_ENDPOINT":      &cfg.S3Endpoint,
		"LOANKEEPER_S3_ACCESS_KEY":    &cfg.S3AccessKey,
		"LOANKEEPER_S3_SECRET_KEY":    &cfg.S3SecretKey,
		"LOANKEEPER_S3_PREFIX":        &cfg.S3Prefix,
		"LOANKEEPER_PASSWORD_HASHING": &cfg.PasswordHashing,
		"LOANKEEPER_LOG_LEVEL":        &cfg.LogLevel,
		"LOANKEEPER_CURRENCY":         &cfg.Currency,
	}
	for name, dst := range vars {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
}
