package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"serenity/config"
	"serenity/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims binds a browser to its server-side admin session.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Signer seals session ids into the admin cookie. Tokens expire with the
// server-side session after SESSION_TTL_MIN minutes; zero disables expiry.
type Signer interface {
	Sign(sessionID string) (string, error)
	Parse(tokenString string) (sessionID string, err error)
}

type signerImpl struct {
	config *config.Config
}

func New(cfg *config.Config) Signer {
	return &signerImpl{
		config: cfg,
	}
}

func (s *signerImpl) Sign(sessionID string) (string, error) {
	now := timezone.Now()

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   s.config.App.Name,
			ID:       uuid.NewString(),
		},
	}
	if ttl := s.config.Session.TTLMinutes; ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(ttl) * time.Minute))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signedToken, nil
}

func (s *signerImpl) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Session.Secret), nil
	}, jwt.WithIssuer(s.config.App.Name))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.SessionID == "" {
		return "", ErrInvalidClaim
	}

	return claims.SessionID, nil
}
