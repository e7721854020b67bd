package db

import (
	"context"
	"database/sql"

	"blog-service/internal/db/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations against the database.
func RunMigrations(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, sqlDB, ".")
}
