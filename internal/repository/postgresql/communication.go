package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const communicationColumns = `id, company_id, method_id, date, notes`

type communicationRepositoryImpl struct {
	db *database.DB
}

func NewCommunicationRepository(db *database.DB) communication.CommunicationRepository {
	return &communicationRepositoryImpl{db: db}
}

func scanCommunication(row pgx.Row) (communication.Communication, error) {
	var c communication.Communication
	err := row.Scan(&c.ID, &c.CompanyID, &c.MethodID, &c.Date, &c.Notes)
	return c, err
}

// Create implements communication.CommunicationRepository.
func (r *communicationRepositoryImpl) Create(ctx context.Context, newCommunication communication.Communication) (communication.Communication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO communications (company_id, method_id, date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + communicationColumns

	created, err := scanCommunication(q.QueryRow(ctx, query,
		newCommunication.CompanyID,
		newCommunication.MethodID,
		newCommunication.Date,
		newCommunication.Notes,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return communication.Communication{}, communication.ErrInvalidReference
		}
		return communication.Communication{}, fmt.Errorf("failed to create communication: %w", err)
	}
	return created, nil
}

// GetByID implements communication.CommunicationRepository.
func (r *communicationRepositoryImpl) GetByID(ctx context.Context, id int64) (communication.Communication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + communicationColumns + ` FROM communications WHERE id = $1`

	found, err := scanCommunication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return communication.Communication{}, communication.ErrCommunicationNotFound
		}
		return communication.Communication{}, fmt.Errorf("failed to get communication with id %d: %w", id, err)
	}
	return found, nil
}

// List implements communication.CommunicationRepository.
func (r *communicationRepositoryImpl) List(ctx context.Context, filter communication.ListCommunicationsFilter) ([]communication.Communication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + communicationColumns + ` FROM communications`
	args := []interface{}{}
	if filter.CompanyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *filter.CompanyID)
	}
	query += ` ORDER BY id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	defer rows.Close()

	communications := make([]communication.Communication, 0)
	for rows.Next() {
		found, err := scanCommunication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan communication: %w", err)
		}
		communications = append(communications, found)
	}
	return communications, rows.Err()
}
