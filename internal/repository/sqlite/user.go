package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.SQLiteDB
}

func NewUserRepository(db *database.SQLiteDB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, role, password_hash
		FROM users
		WHERE email = ?
	`

	var found user.User
	var role string
	err := q.QueryRowContext(ctx, query, email).Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&role,
		&found.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	found.Role = user.Role(role)
	return found, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, role, password_hash)
		VALUES (?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		newUser.Name,
		newUser.Email,
		string(newUser.Role),
		newUser.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to read user id: %w", err)
	}
	newUser.ID = id
	return newUser, nil
}
