package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

// UserService implements account management and the active-visitor query.
type UserService struct {
	repo  ports.UserRepository
	roles []string
	log   zerolog.Logger
	now   func() time.Time
}

// NewUserService returns a UserService accepting the given roles.
// An empty role list falls back to domain.DefaultRoles.
func NewUserService(repo ports.UserRepository, roles []string, log zerolog.Logger) *UserService {
	if len(roles) == 0 {
		roles = domain.DefaultRoles
	}
	return &UserService{repo: repo, roles: roles, log: log, now: time.Now}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(in.Username) == "" {
		verr.Add("username", "username is required")
	}
	if in.Password == "" {
		verr.Add("password", "password is required")
	}
	s.checkRole(in.Role, verr)
	if !verr.Empty() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.NewValidationError("username", domain.MsgUsernameTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies the supplied fields to a copy of the stored user and writes
// it back in one call. Nothing is persisted unless every field is valid.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	verr := &domain.ValidationError{}

	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			verr.Add("username", "username may not be blank")
		}
		next.Username = *in.Username
	}
	if in.FirstName != nil {
		next.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		next.LastName = *in.LastName
	}
	if in.Email != nil {
		next.Email = *in.Email
	}
	if in.Role != nil {
		s.checkRole(*in.Role, verr)
		next.Role = *in.Role
	}
	if in.IsActive != nil {
		next.IsActive = *in.IsActive
	}
	if in.Password != nil && *in.Password == "" {
		verr.Add("password", "password may not be blank")
	}
	if !verr.Empty() {
		return nil, verr
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		next.PasswordHash = string(hash)
	}
	next.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.NewValidationError("username", domain.MsgUsernameTaken)
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListActiveVisitors returns active users whose role is visitor.
func (s *UserService) ListActiveVisitors(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.ListActiveByRole(ctx, domain.RoleVisitor)
	if err != nil {
		return nil, fmt.Errorf("list active visitors: %w", err)
	}
	return users, nil
}

func (s *UserService) checkRole(role string, verr *domain.ValidationError) {
	switch {
	case role == "":
		verr.Add("role", "role is required")
	case !slices.Contains(s.roles, role):
		verr.Add("role", "role must be one of: "+strings.Join(s.roles, ", "))
	}
}
