package services

import (
	"errors"
	"time"

	"recyclehub-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const tokenTTL = 2 * time.Hour

type AuthService struct {
	secretKey []byte
	logger    zerolog.Logger
}

type Claims struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	IsVerified bool   `json:"isVerified"`
	jwt.RegisteredClaims
}

// NewAuthService refuses to run without a signing secret; tokens minted under
// a known key would make the authorization gate forgeable.
func NewAuthService(secretKey string, logger zerolog.Logger) (*AuthService, error) {
	if secretKey == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}

	return &AuthService{
		secretKey: []byte(secretKey),
		logger:    logger,
	}, nil
}

// IssueToken mints a bearer credential carrying the user document as claims.
// Fixed two-hour expiry; no refresh, no revocation list.
func (s *AuthService) IssueToken(user models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Error issuing token")
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
