package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cmlabs-crm/crm-backend-go/internal/config"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/golang-migrate/migrate/v4"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		fatalf("load config: %v", err)
	}

	m, closeDB, err := newMigrator(context.Background(), cfg)
	if err != nil {
		fatalf("migration init failed: %v", err)
	}
	defer closeDB()

	command := args[0]
	switch command {
	case "up":
		if err := database.Up(m); err != nil {
			fatalf("up failed: %v", err)
		}
		slog.Info("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				fatalf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fatalf("down failed: %v", err)
		}
		slog.Info("migrations: down completed", "steps", steps)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			fatalf("version failed: %v", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			fatalf("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			fatalf("force: invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			fatalf("force failed: %v", err)
		}
		slog.Info("migrations: forced", "version", v)

	default:
		usage()
		os.Exit(1)
	}
}

// newMigrator binds the embedded migrations to the configured store. The
// returned func releases the migrator and the underlying connection.
func newMigrator(ctx context.Context, cfg *config.Config) (*migrate.Migrate, func(), error) {
	if cfg.Database.Driver == config.DriverSQLite {
		db, err := database.NewSQLiteDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, err
		}
		m, err := database.NewSQLiteMigrator(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return m, func() { m.Close() }, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, nil, err
	}
	m, err := database.NewPostgresMigrator(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return m, func() {
		m.Close()
		db.Close()
	}, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Rollback N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (bypass dirty state)

Environment:
  DB_DRIVER     postgres (default) or sqlite
  DB_*          PostgreSQL connection settings
  SQLITE_PATH   SQLite database file (default: crm.db)`)
}

func fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
