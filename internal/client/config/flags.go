package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/loankeeper/internal/flagx"
)

var ownFlags = []string{"-s", "-d", "-pg", "-bucket", "-prefix", "-hash", "-log"}

// parseFlags populates cfg from the flags it owns in args. Other flags,
// such as -c, are filtered out with flagx.FilterArgs beforehand.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("loankeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, memory, postgres or s3")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "pg", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Prefix, "prefix", cfg.S3Prefix, "S3 key prefix")
	fs.StringVar(&cfg.PasswordHashing, "hash", cfg.PasswordHashing, "password storage: plain or argon2")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, ownFlags))
}
