package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/migrations"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/messages"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/metadata"
)

// Repositories bundles the local-storage repositories backed by one
// sqlite database file.
type Repositories struct {
	Metadata metadata.Repository
	Messages messages.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local sqlite database at dsn,
// applies pending migrations and returns the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Messages: messages.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
