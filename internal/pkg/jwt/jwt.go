package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken signs a token whose only claim is user_id, plus exp
	// when an expiration is configured.
	GenerateAccessToken(userID int64) (token string, err error)
	// UserIDFromToken verifies tokenString and returns its user_id claim.
	UserIDFromToken(ctx context.Context, tokenString string) (int64, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService builds the HS256 signer. An empty accessTokenExpirationTime
// issues tokens without an exp claim.
func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	var expiration time.Duration
	if accessTokenExpirationTime != "" {
		d, err := time.ParseDuration(accessTokenExpirationTime)
		if err != nil {
			return nil, fmt.Errorf("invalid access token expiration: %w", err)
		}
		expiration = d
	}
	return &JWTService{
		accessTokenExpiration: expiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) GenerateAccessToken(userID int64) (string, error) {
	claims := map[string]interface{}{
		"user_id": userID,
	}
	if j.accessTokenExpiration > 0 {
		jwtauth.SetExpiryIn(claims, j.accessTokenExpiration)
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}

func (j *JWTService) UserIDFromToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return 0, err
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return 0, err
	}
	return UserIDFromClaims(claims)
}

// UserIDFromClaims extracts user_id. JSON numbers decode as float64.
func UserIDFromClaims(claims map[string]interface{}) (int64, error) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, jwt.ErrInvalidJWT()
	}
}
