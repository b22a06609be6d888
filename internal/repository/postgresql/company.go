package postgresql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, name, location, linkedin_profile, emails, phone_numbers, comments, communication_periodicity`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Location,
		&c.LinkedInProfile,
		&c.Emails,
		&c.PhoneNumbers,
		&c.Comments,
		&c.CommunicationPeriodicity,
	)
	return c, err
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	found, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company with id %d: %w", id, err)
	}
	return found, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, location, linkedin_profile, emails, phone_numbers, comments, communication_periodicity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.Location,
		newCompany.LinkedInProfile,
		newCompany.Emails,
		newCompany.PhoneNumbers,
		newCompany.Comments,
		newCompany.CommunicationPeriodicity,
	))
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := req.Columns()
	if len(updates) == 0 {
		return nil
	}

	columns := make([]string, 0, len(updates))
	for col := range updates {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, col := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, updates[col])
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", len(columns)+1)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company with id %d: %w", id, err)
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return company.ErrCompanyHasCommunications
		}
		return fmt.Errorf("failed to delete company with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
