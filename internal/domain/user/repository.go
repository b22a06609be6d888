package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
}
