// Package migrations встроенные goose-миграции схемы БД.
// Применяются автоматически при старте сервиса.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedded embed.FS

// Up применяет все pending миграции
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedded)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: apply: %w", err)
	}

	return nil
}

// Version возвращает текущую версию схемы
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migrations: get version: %w", err)
	}
	return version, nil
}
