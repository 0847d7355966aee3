// Package share issues and verifies signed tokens for read-only
// share links to a project's settlement overview.
package share

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type claims struct {
	jwt.RegisteredClaims
	ProjectID string `json:"pid"`
}

// Service signs and parses share tokens with an HS256 secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Enabled reports whether a signing secret is configured. Without one
// no links can be issued or verified.
func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

// Issue creates a share token for the project, valid for the
// configured TTL.
func (s *Service) Issue(projectID uuid.UUID) (string, error) {
	if !s.Enabled() {
		return "", ErrSharingDisabled
	}

	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		ProjectID: projectID.String(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing share token: %w", err)
	}

	return signed, nil
}

// Verify parses a share token and returns the project it grants
// access to.
func (s *Service) Verify(tokenString string) (uuid.UUID, error) {
	if !s.Enabled() {
		return uuid.Nil, ErrSharingDisabled
	}

	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	projectID, err := uuid.Parse(parsed.ProjectID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad project id", ErrInvalidToken)
	}

	return projectID, nil
}
