// Package postgres persists the catering state in PostgreSQL. The schema is
// managed by goose migrations embedded in the binary; reads and writes go
// through GORM.
//
// Example:
//
//	db, err := postgres.Open(ctx, "host=localhost user=catering password=secret dbname=catering sslmode=disable")
//	if err != nil {
//	    return fmt.Errorf("failed to open database: %w", err)
//	}
//	store := postgres.NewStore(db)
//
//	snapshot, err := store.LoadAll(ctx)
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Open connects to PostgreSQL, applies pending migrations and hands the
// connection to GORM.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db error: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db error: %w", err)
	}

	if err = Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("gorm open error: %w", err)
	}

	return db, nil
}

// Migrate applies every embedded migration that has not run yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider error: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up error: %w", err)
	}

	return nil
}
