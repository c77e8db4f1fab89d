package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bankist/internal/config"
	"bankist/internal/models"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrWrongTokenType  = errors.New("wrong token type")
	ErrMissingAuthData = errors.New("missing authorization header")
)

const sessionTokenType = "session"

type tokenService struct {
	config *config.JWTConfig
}

// NewTokenService creates a service that signs session tokens with RS256.
func NewTokenService(cfg *config.JWTConfig) TokenServiceInterface {
	return &tokenService{config: cfg}
}

// GenerateSessionToken issues a token bound to one login session. The token
// outlives the inactivity countdown on purpose; liveness is checked against
// the session manager, not the token expiry.
func (s *tokenService) GenerateSessionToken(account *models.Account, sessionID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &models.SessionClaims{
		AccountID: account.ID.String(),
		Username:  account.Username,
		SessionID: sessionID.String(),
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenDuration)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	signed, err := token.SignedString(s.config.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (s *tokenService) ValidateSessionToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.config.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != sessionTokenType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an Authorization
// header value.
func (s *tokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthData
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
