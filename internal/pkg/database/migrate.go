package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// NewPostgresMigrator returns a migrator bound to the pool. Closing it closes
// the database/sql bridge, not the pool.
func NewPostgresMigrator(db *DB) (*migrate.Migrate, error) {
	src, err := iofs.New(postgresMigrations, "migrations/postgres")
	if err != nil {
		return nil, fmt.Errorf("load postgres migrations: %w", err)
	}

	driver, err := migratepgx.WithInstance(stdlib.OpenDBFromPool(db.Pool), &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("init postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	m.Log = &migrateLogger{}
	return m, nil
}

// NewSQLiteMigrator returns a migrator bound to db. Closing it closes db.
func NewSQLiteMigrator(db *SQLiteDB) (*migrate.Migrate, error) {
	src, err := iofs.New(sqliteMigrations, "migrations/sqlite")
	if err != nil {
		return nil, fmt.Errorf("load sqlite migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("init sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	m.Log = &migrateLogger{}
	return m, nil
}

// MigratePostgres applies every pending migration to the pool.
func MigratePostgres(db *DB) error {
	m, err := NewPostgresMigrator(db)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("close migrator", "source_error", srcErr, "database_error", dbErr)
		}
	}()
	return Up(m)
}

// MigrateSQLite applies every pending migration. The migrator is not closed
// because that would close db.
func MigrateSQLite(db *SQLiteDB) error {
	m, err := NewSQLiteMigrator(db)
	if err != nil {
		return err
	}
	return Up(m)
}

// Up runs pending migrations, treating "nothing to do" as success.
func Up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool { return false }
