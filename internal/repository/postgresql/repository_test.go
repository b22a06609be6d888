package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, migrates it and empties every table.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.MigratePostgres(db))

	_, err = db.Exec(ctx, `TRUNCATE TABLE communications, communication_methods, companies, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return db
}

func TestCompanyRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := postgresql.NewCompanyRepository(db)

	created, err := repo.Create(ctx, company.Company{Name: "Acme", CommunicationPeriodicity: 14})
	require.NoError(t, err)

	name := "Acme Corp"
	require.NoError(t, repo.Update(ctx, created.ID, company.UpdateCompanyRequest{Name: &name}))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, 14, got.CommunicationPeriodicity)

	err = repo.Update(ctx, created.ID+100, company.UpdateCompanyRequest{Name: &name})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), company.ErrCompanyNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := postgresql.NewUserRepository(newTestDB(t))

	created, err := repo.Create(ctx, user.User{Name: "Alice", Email: "a@x.io", Role: user.RoleUser, PasswordHash: "hash"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, user.RoleUser, got.Role)

	_, err = repo.Create(ctx, user.User{Name: "Dup", Email: "a@x.io", Role: user.RoleUser, PasswordHash: "h"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.GetByEmail(ctx, "ghost@x.io")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCommunicationRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	companies := postgresql.NewCompanyRepository(db)
	methods := postgresql.NewMethodRepository(db)
	repo := postgresql.NewCommunicationRepository(db)

	acme, err := companies.Create(ctx, company.Company{Name: "Acme", CommunicationPeriodicity: 14})
	require.NoError(t, err)
	email, err := methods.Create(ctx, communication.Method{Name: "Email", Sequence: 1})
	require.NoError(t, err)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, communication.Communication{CompanyID: acme.ID, MethodID: email.ID, Date: date})
	require.NoError(t, err)

	list, err := repo.List(ctx, communication.ListCommunicationsFilter{CompanyID: &acme.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "2024-03-01T00:00:00", communication.NewCommunicationResponse(list[0]).Date)

	_, err = repo.Create(ctx, communication.Communication{CompanyID: acme.ID + 100, MethodID: email.ID, Date: date})
	assert.ErrorIs(t, err, communication.ErrInvalidReference)

	assert.ErrorIs(t, companies.Delete(ctx, acme.ID), company.ErrCompanyHasCommunications)
}
