package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/company"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
)

const companyColumns = `id, name, location, linkedin_profile, emails, phone_numbers, comments, communication_periodicity`

type companyRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewCompanyRepository(db *database.SQLiteDB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner) (company.Company, error) {
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

	rows, err := q.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
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

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`

	found, err := scanCompany(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		newCompany.Name,
		newCompany.Location,
		newCompany.LinkedInProfile,
		newCompany.Emails,
		newCompany.PhoneNumbers,
		newCompany.Comments,
		newCompany.CommunicationPeriodicity,
	)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to read company id: %w", err)
	}
	newCompany.ID = id
	return newCompany, nil
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
	for _, col := range columns {
		setClauses = append(setClauses, col+" = ?")
		args = append(args, updates[col])
	}
	args = append(args, id)

	result, err := q.ExecContext(ctx, "UPDATE companies SET "+strings.Join(setClauses, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update company with id %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update company with id %d: %w", id, err)
	}
	if affected == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	result, err := q.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		if isRestrictViolation(err) {
			return company.ErrCompanyHasCommunications
		}
		return fmt.Errorf("failed to delete company with id %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete company with id %d: %w", id, err)
	}
	if affected == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
