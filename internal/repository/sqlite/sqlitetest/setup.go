// Package sqlitetest provides migrated, isolated SQLite databases for tests.
package sqlitetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

// NewTestDatabase opens a private in-memory database with every migration
// applied. It is closed when the test ends.
func NewTestDatabase(t testing.TB) *database.SQLiteDB {
	t.Helper()

	dsn := fmt.Sprintf("file:crm-test-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLiteDB(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.MigrateSQLite(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
