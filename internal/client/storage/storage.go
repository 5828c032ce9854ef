// Package storage opens the kv.Store selected by the configuration and
// applies the embedded schema migrations to SQL backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/loankeeper/internal/client/config"
	"github.com/dmitrijs2005/loankeeper/internal/client/migrations"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	_ "modernc.org/sqlite"
)

// RunMigrations applies the migrations of dialect (database.DialectSQLite3
// or database.DialectPostgres) to db. Already applied versions are skipped.
func RunMigrations(ctx context.Context, db *sql.DB, dialect database.Dialect) error {
	var dir string
	switch dialect {
	case database.DialectSQLite3:
		dir = "sqlite"
	case database.DialectPostgres:
		dir = "postgres"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	fsys, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open returns the store configured by cfg.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return kv.NewMemoryStore(), nil

	case config.StorageSQLite:
		if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
			return nil, err
		}
		db, err := openSQL(ctx, "sqlite", cfg.DatabasePath, database.DialectSQLite3)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLiteStore(db), nil

	case config.StoragePostgres:
		db, err := openSQL(ctx, "pgx", cfg.PostgresDSN, database.DialectPostgres)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(db), nil

	case config.StorageS3:
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return kv.NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func openSQL(ctx context.Context, driver, dsn string, dialect database.Dialect) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
