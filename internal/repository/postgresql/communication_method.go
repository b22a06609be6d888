package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/communication"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
)

type methodRepositoryImpl struct {
	db *database.DB
}

func NewMethodRepository(db *database.DB) communication.MethodRepository {
	return &methodRepositoryImpl{db: db}
}

// Count implements communication.MethodRepository.
func (r *methodRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM communication_methods`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count communication methods: %w", err)
	}
	return count, nil
}

// Create implements communication.MethodRepository.
func (r *methodRepositoryImpl) Create(ctx context.Context, newMethod communication.Method) (communication.Method, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO communication_methods (name, description, sequence, mandatory_flag)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, sequence, mandatory_flag
	`

	var created communication.Method
	err := q.QueryRow(ctx, query,
		newMethod.Name,
		newMethod.Description,
		newMethod.Sequence,
		newMethod.MandatoryFlag,
	).Scan(&created.ID, &created.Name, &created.Description, &created.Sequence, &created.MandatoryFlag)
	if err != nil {
		return communication.Method{}, fmt.Errorf("failed to create communication method: %w", err)
	}
	return created, nil
}
