package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleReceptionist, IsActive: true}
}

func TestManager_IssuePair_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)

	pair, err := m.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	access, err := m.Parse(pair.Access, KindAccess)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if access.UserID != "u1" || access.Username != "alice" || access.Role != domain.RoleReceptionist {
		t.Fatalf("unexpected access claims: %+v", access)
	}
	if access.ID == "" {
		t.Fatalf("expected jti to be set")
	}

	refresh, err := m.Parse(pair.Refresh, KindRefresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if refresh.ID == access.ID {
		t.Fatalf("access and refresh share a jti")
	}
	if !refresh.ExpiresAt.After(access.ExpiresAt.Time) {
		t.Fatalf("refresh should outlive access: %v vs %v", refresh.ExpiresAt, access.ExpiresAt)
	}
}

func TestManager_Parse_WrongKind(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	pair, _ := m.IssuePair(testUser())

	if _, err := m.Parse(pair.Refresh, KindAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("refresh used as access: expected ErrInvalidToken, got %v", err)
	}
	if _, err := m.Parse(pair.Access, KindRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access used as refresh: expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	pair, err := m.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(pair.Refresh, KindRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Parse_Tampered(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	pair, _ := m.IssuePair(testUser())

	parts := strings.Split(pair.Refresh, ".")
	forged := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := m.Parse(forged, KindRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}

	other := NewManager("other-secret", time.Minute, time.Hour)
	if _, err := other.Parse(pair.Refresh, KindRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}

	if _, err := m.Parse("not-a-token", KindRefresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestManager_Parse_RejectsOtherAlgorithms(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	claims := Claims{
		UserID: "u1",
		Kind:   KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Parse(signed, KindAccess); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}
}

func TestNewManager_DefaultTTLs(t *testing.T) {
	m := NewManager("secret", 0, -1)
	if m.accessTTL != defaultAccessTTL || m.refreshTTL != defaultRefreshTTL {
		t.Fatalf("unexpected TTLs: %v %v", m.accessTTL, m.refreshTTL)
	}
}
