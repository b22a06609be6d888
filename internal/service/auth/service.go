package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-crm/crm-backend-go/internal/domain/auth"
	"github.com/cmlabs-crm/crm-backend-go/internal/domain/user"
	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the email is unknown so both
// login failures cost one bcrypt comparison.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("crm-login-placeholder"), bcrypt.DefaultCost)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	comparePassword func(hash, password []byte) error
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:  userRepository,
		Service:         jwtService,
		comparePassword: bcrypt.CompareHashAndPassword,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleUser
	if req.Role != nil {
		role = user.Role(*req.Role)
	}

	_, err = a.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: passwordHash,
	})
	return err
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = a.comparePassword(dummyPasswordHash, []byte(req.Password))
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.comparePassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, err := a.Service.GenerateAccessToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token: token,
		Role:  string(userData.Role),
	}, nil
}
