package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// sessionClaims is the JWT payload: the caller's identity claim plus the
// registered exp/iat fields.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Tests use it to move past expiry.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs claim as-is; the service does not confirm that the email is true.
func (s *TokenService) Issue(claim ports.IdentityClaim) (string, error) {
	email := domain.NormalizeEmail(claim.Email)
	if email == "" {
		return "", fmt.Errorf("issue token: %w: email is required", domain.ErrInvalidInput)
	}

	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: email,
		Name:  claim.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify returns the embedded claim, or domain.ErrUnauthorized when the token
// is malformed, tampered, signed with another algorithm or secret, or expired.
func (s *TokenService) Verify(token string) (*ports.IdentityClaim, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("verify token: %w", domain.ErrUnauthorized)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("verify token: %w: missing email claim", domain.ErrUnauthorized)
	}
	return &ports.IdentityClaim{Email: claims.Email, Name: claims.Name}, nil
}
