// Package token mints and verifies the HS256 access/refresh tokens handed out
// at login. Tokens are stateless: expiry is the only way they stop working.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// Kind distinguishes access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

const (
	defaultAccessTTL  = 5 * time.Minute
	defaultRefreshTTL = 24 * time.Hour
)

// Claims is the payload carried by both token kinds.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     Kind   `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewManager returns a Manager signing with secret. Non-positive TTLs fall
// back to 5 minutes (access) and 24 hours (refresh).
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair mints an access and a refresh token for u.
func (m *Manager) IssuePair(u *domain.User) (*domain.TokenPair, error) {
	access, err := m.issue(u, KindAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.issue(u, KindRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess mints a single access token for u.
func (m *Manager) IssueAccess(u *domain.User) (string, error) {
	return m.issue(u, KindAccess, m.accessTTL)
}

func (m *Manager) issue(u *domain.User, kind Kind, ttl time.Duration) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Parse verifies raw and returns its claims. Any failure, including a token of
// the wrong kind, is reported as domain.ErrInvalidToken.
func (m *Manager) Parse(raw string, want Kind) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Kind != want || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
