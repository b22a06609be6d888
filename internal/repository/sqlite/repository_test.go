package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCompanyRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCompanyRepository(sqlitetest.NewTestDatabase(t))

	created, err := repo.Create(ctx, company.Company{
		Name:                     "Acme",
		Emails:                   "sales@acme.test",
		CommunicationPeriodicity: 14,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, repo.Update(ctx, created.ID, company.UpdateCompanyRequest{
		Name:     strPtr("Acme Corp"),
		Location: strPtr("Berlin"),
	}))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "Berlin", got.Location)
	assert.Equal(t, "sales@acme.test", got.Emails)

	err = repo.Update(ctx, 99, company.UpdateCompanyRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), company.ErrCompanyNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewUserRepository(sqlitetest.NewTestDatabase(t))

	created, err := repo.Create(ctx, user.User{
		Name:         "Alice",
		Email:        "a@x.io",
		Role:         user.RoleUser,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.Create(ctx, user.User{Name: "Other", Email: "a@x.io", Role: user.RoleUser, PasswordHash: "h"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.GetByEmail(ctx, "ghost@x.io")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCommunicationRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	companies := sqlite.NewCompanyRepository(db)
	methods := sqlite.NewMethodRepository(db)
	repo := sqlite.NewCommunicationRepository(db)

	acme, err := companies.Create(ctx, company.Company{Name: "Acme", CommunicationPeriodicity: 14})
	require.NoError(t, err)
	globex, err := companies.Create(ctx, company.Company{Name: "Globex", CommunicationPeriodicity: 14})
	require.NoError(t, err)

	count, err := methods.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	email, err := methods.Create(ctx, communication.Method{Name: "Email", Sequence: 1, MandatoryFlag: true})
	require.NoError(t, err)

	count, err = methods.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, communication.Communication{CompanyID: acme.ID, MethodID: email.ID, Date: date, Notes: "hi"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, communication.Communication{CompanyID: globex.ID, MethodID: email.ID, Date: date})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Notes)
	assert.True(t, date.Equal(got.Date))

	all, err := repo.List(ctx, communication.ListCommunicationsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.List(ctx, communication.ListCommunicationsFilter{CompanyID: &globex.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, globex.ID, filtered[0].CompanyID)

	_, err = repo.Create(ctx, communication.Communication{CompanyID: 404, MethodID: email.ID, Date: date})
	assert.ErrorIs(t, err, communication.ErrInvalidReference)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, communication.ErrCommunicationNotFound)

	assert.ErrorIs(t, companies.Delete(ctx, acme.ID), company.ErrCompanyHasCommunications)
}

func TestTransactor_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	repo := sqlite.NewCompanyRepository(db)

	err := sqlite.NewTransactor(db).WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, company.Company{Name: "Acme", CommunicationPeriodicity: 14}); err != nil {
			return err
		}
		return company.ErrCompanyNotFound
	})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCompanyRepository_DeleteReferencedCompany(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.NewTestDatabase(t)
	companies := sqlite.NewCompanyRepository(db)

	method, err := sqlite.NewMethodRepository(db).Create(ctx, communication.Method{Name: "Email", Sequence: 1})
	require.NoError(t, err)
	acme, err := companies.Create(ctx, company.Company{Name: "Acme", CommunicationPeriodicity: 14})
	require.NoError(t, err)
	_, err = sqlite.NewCommunicationRepository(db).Create(ctx, communication.Communication{
		CompanyID: acme.ID,
		MethodID:  method.ID,
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = companies.Delete(ctx, acme.ID)
	assert.ErrorIs(t, err, company.ErrCompanyHasCommunications)

	got, err := companies.GetByID(ctx, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}
