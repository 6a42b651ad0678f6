package service

import (
	"context"
	"fmt"
	"time"

	"bloglist/internal/apperrors"
	"bloglist/internal/credentials"
	"bloglist/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const (
	tokenTTL          = time.Hour
	defaultSigningKey = "bloglist-dev-key" // overridden by jwt.signing_key / JWT_SIGNING_KEY
)

// TokenResult is what a successful login returns.
type TokenResult struct {
	Token    string
	Username string
	Name     string
}

// Claims defines the JWT claims carried by access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// AuthService validates login credentials and issues/parses access tokens.
type AuthService struct {
	userRepo repository.Users
}

func NewAuthService(repo repository.Users) *AuthService {
	return &AuthService{userRepo: repo}
}

var _ Authorization = (*AuthService)(nil)

// GenerateToken checks the credentials and returns a signed token. The
// failure never reveals whether the username or the password was wrong.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (TokenResult, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return TokenResult{}, err
	}
	if u == nil {
		return TokenResult{}, apperrors.ErrInvalidCredentials
	}
	if err := credentials.Verify(u.PasswordHash, password); err != nil {
		return TokenResult{}, apperrors.ErrInvalidCredentials
	}

	token, err := issueToken(u.ID)
	if err != nil {
		return TokenResult{}, err
	}
	return TokenResult{Token: token, Username: u.Username, Name: u.Name}, nil
}

// ParseToken verifies a token and returns the user id it was issued for.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}
	return claims.UserID, nil
}

func issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(signingKey())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func signingKey() []byte {
	if key := viper.GetString("jwt.signing_key"); key != "" {
		return []byte(key)
	}
	return []byte(defaultSigningKey)
}
