package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/loankeeper/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish an absent key from an empty value.
type JSONConfig struct {
	StorageBackend  *string `json:"storage"`
	DatabasePath    *string `json:"database_path"`
	PostgresDSN     *string `json:"postgres_dsn"`
	S3Bucket        *string `json:"s3_bucket"`
	S3Region        *string `json:"s3_region"`
	S3Endpoint      *string `json:"s3_endpoint"`
	S3AccessKey     *string `json:"s3_access_key"`
	S3SecretKey     *string `json:"s3_secret_key"`
	S3Prefix        *string `json:"s3_prefix"`
	PasswordHashing *string `json:"password_hashing"`
	LogLevel        *string `json:"log_level"`
	Currency        *string `json:"currency"`
}

// parseJSON overlays cfg with the file named by -c or -config in args.
// Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.StorageBackend, jc.StorageBackend)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.PostgresDSN, jc.PostgresDSN)
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3Endpoint, jc.S3Endpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
	set(&cfg.S3Prefix, jc.S3Prefix)
	set(&cfg.PasswordHashing, jc.PasswordHashing)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.Currency, jc.Currency)
	return nil
}
