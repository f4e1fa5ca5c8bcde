package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, tampered, expired and incomplete tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Claims is the session payload carried by every token.
type Claims struct {
	AccountID string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Validate is invoked by the jwt parser after the signature and time checks.
func (c *Claims) Validate() error {
	if c.AccountID == "" {
		return errors.New("missing id claim")
	}
	if !c.Role.Valid() {
		return fmt.Errorf("unknown role %q", c.Role)
	}
	if c.ExpiresAt == nil {
		return errors.New("missing exp claim")
	}
	return nil
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs claims with the configured lifetime.
func (s *TokenService) Issue(claims Claims) (string, error) {
	return s.IssueFor(claims, s.ttl)
}

func (s *TokenService) IssueFor(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.Subject = claims.AccountID
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, s.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Keyfunc resolves the HMAC key and rejects any other signing method.
func (s *TokenService) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return s.secret, nil
}
