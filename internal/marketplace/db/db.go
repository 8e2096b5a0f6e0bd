// Package db implements the GORM-backed repository for the platform.
// All persistence goes through a single Repository handle that callers
// receive via dependency injection; there is no package-level connection.
package db

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewRepository connects to Postgres, retrying with exponential backoff so
// the service survives a database that is still coming up, and runs the
// schema migration. TranslateError lets unique-key violations surface as
// gorm.ErrDuplicatedKey across drivers.
func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var gdb *gorm.DB
	err := backoff.Retry(func() error {
		var openErr error
		gdb, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		return openErr
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: gdb}, nil
}

// Migrate creates or updates the schema for every platform entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.VendorProfile{},
		&models.Project{},
		&models.ProjectRequest{},
		&models.ProjectShortlist{},
		&models.Review{},
		&models.PlatformFeedback{},
	)
}

// WithTransaction runs fn against a repository bound to a single database
// transaction, committing on nil and rolling back on error.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
