package company

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/validator"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-crm/crm-backend-go/internal/repository/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompanyService(t *testing.T) (company.CompanyService, *database.SQLiteDB) {
	t.Helper()
	db := sqlitetest.NewTestDatabase(t)
	return NewCompanyService(sqlite.NewTransactor(db), sqlite.NewCompanyRepository(db)), db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCompanyService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: strPtr("Acme")})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, company.DefaultCommunicationPeriodicity, got.CommunicationPeriodicity)
}

func TestCompanyService_CreateValidation(t *testing.T) {
	svc, _ := newTestCompanyService(t)

	_, err := svc.Create(context.Background(), company.CreateCompanyRequest{Location: "Berlin"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCompanyService_ListOrdered(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCompanyService(t)

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := svc.Create(ctx, company.CreateCompanyRequest{Name: strPtr(name)})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "One", list[0].Name)
	assert.Equal(t, "Three", list[2].Name)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: strPtr("Acme"), Location: "Berlin"})
	require.NoError(t, err)

	t.Run("partial patch leaves other fields", func(t *testing.T) {
		err := svc.Update(ctx, created.ID, company.UpdateCompanyRequest{
			Comments:                 strPtr("hot lead"),
			CommunicationPeriodicity: intPtr(7),
		})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, "Berlin", got.Location)
		assert.Equal(t, "hot lead", got.Comments)
		assert.Equal(t, 7, got.CommunicationPeriodicity)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, created.ID, company.UpdateCompanyRequest{}))

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "hot lead", got.Comments)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Update(ctx, 9999, company.UpdateCompanyRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})

	t.Run("empty patch on unknown id", func(t *testing.T) {
		err := svc.Update(ctx, 9999, company.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})

	t.Run("invalid periodicity", func(t *testing.T) {
		err := svc.Update(ctx, created.ID, company.UpdateCompanyRequest{CommunicationPeriodicity: intPtr(0)})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: strPtr("Acme")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	t.Run("restricted while communications exist", func(t *testing.T) {
		referenced, err := svc.Create(ctx, company.CreateCompanyRequest{Name: strPtr("Globex")})
		require.NoError(t, err)

		method, err := sqlite.NewMethodRepository(db).Create(ctx, communication.Method{Name: "Email", Sequence: 1})
		require.NoError(t, err)
		_, err = sqlite.NewCommunicationRepository(db).Create(ctx, communication.Communication{
			CompanyID: referenced.ID,
			MethodID:  method.ID,
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		err = svc.Delete(ctx, referenced.ID)
		assert.ErrorIs(t, err, company.ErrCompanyHasCommunications)

		_, err = svc.GetByID(ctx, referenced.ID)
		assert.NoError(t, err)
	})
}
