package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username:  "alice",
		Password:  "pass1234",
		FirstName: "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleReceptionist,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected ID to be assigned")
	}
	if !user.IsActive {
		t.Fatalf("expected new users to default to active")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, []string{"admin", "visitor"}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{Password: "pass1234", Role: "janitor"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["username"]; !ok {
		t.Fatalf("expected username field error, got %+v", verr.Fields)
	}
	if _, ok := verr.Fields["role"]; !ok {
		t.Fatalf("expected role field error, got %+v", verr.Fields)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected nothing persisted, got %d users", len(repo.users))
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	in := ports.CreateUserInput{Username: "bob", Password: "pass1234", Role: domain.RoleStaff}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), in)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["username"] != domain.MsgUsernameTaken {
		t.Fatalf("expected username ValidationError, got %v", err)
	}
}

func TestUserService_Update_AppliesSuppliedFieldsOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "carol", Password: "pass1234", FirstName: "Carol", LastName: "King", Role: domain.RoleStaff,
	})

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		LastName: strPtr("Queen"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.LastName != "Queen" || updated.IsActive {
		t.Fatalf("supplied fields not applied: %+v", updated)
	}
	if updated.FirstName != "Carol" || updated.Username != "carol" || updated.Role != domain.RoleStaff {
		t.Fatalf("unsupplied fields changed: %+v", updated)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("password hash changed without a password in the payload")
	}
}

func TestUserService_Update_AllOrNothing(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "dave", Password: "pass1234", FirstName: "Dave", Role: domain.RoleStaff,
	})

	_, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		FirstName: strPtr("David"),
		Role:      strPtr("overlord"),
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("expected no write, got %d", repo.updates)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.FirstName != "Dave" || stored.Role != domain.RoleStaff {
		t.Fatalf("stored record partially mutated: %+v", stored)
	}
}

func TestUserService_Update_UsernameTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	_, _ = svc.Create(context.Background(), ports.CreateUserInput{Username: "erin", Password: "pass1234", Role: domain.RoleStaff})
	frank, _ := svc.Create(context.Background(), ports.CreateUserInput{Username: "frank", Password: "pass1234", Role: domain.RoleStaff})

	_, err := svc.Update(context.Background(), frank.ID, ports.UpdateUserInput{Username: strPtr("erin"), FirstName: strPtr("F")})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["username"] != domain.MsgUsernameTaken {
		t.Fatalf("expected username ValidationError, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), frank.ID)
	if stored.Username != "frank" || stored.FirstName != "" {
		t.Fatalf("stored record mutated: %+v", stored)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "999", ports.UpdateUserInput{Role: strPtr("bogus")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("expected no write")
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	created, _ := svc.Create(context.Background(), ports.CreateUserInput{Username: "gail", Password: "pass1234", Role: domain.RoleStaff})

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: strPtr("newpass99")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass99")) != nil {
		t.Fatalf("new password not stored")
	}
}

func TestUserService_ListActiveVisitors(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	mk := func(name, role string, active bool) {
		if _, err := svc.Create(ctx, ports.CreateUserInput{Username: name, Password: "pass1234", Role: role, IsActive: boolPtr(active)}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	mk("v1", domain.RoleVisitor, true)
	mk("v2", domain.RoleVisitor, false)
	mk("s1", domain.RoleStaff, true)
	mk("a1", domain.RoleAdmin, false)
	mk("v3", domain.RoleVisitor, true)

	got, err := svc.ListActiveVisitors(ctx)
	if err != nil {
		t.Fatalf("ListActiveVisitors: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active visitors, got %d", len(got))
	}
	for _, u := range got {
		if u.Role != domain.RoleVisitor || !u.IsActive {
			t.Fatalf("unexpected user in result: %+v", u)
		}
	}
}
