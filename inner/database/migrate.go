package database

import (
	"context"
	"embed"
	"fmt"

	"ems/inner/common"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// gooseLogger направляет вывод goose в zap
type gooseLogger struct {
	logger *common.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Sugar().Fatalf(format, v...)
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Sugar().Infof(format, v...)
}

// Migrate применяет схему таблицы employee и хранимые функции списка
func Migrate(ctx context.Context, db *sqlx.DB, logger *common.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
