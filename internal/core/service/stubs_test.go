package service

import (
	"context"
	"strconv"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository keyed by ID.
type stubUserRepo struct {
	users     map[string]*domain.User
	order     []string
	nextID    int
	updates   int
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := user.Clone()
	clone.ID = strconv.Itoa(r.nextID)
	r.users[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return clone.Clone(), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.updates++
	r.users[user.ID] = user.Clone()
	return user.Clone(), nil
}

func (r *stubUserRepo) ListActiveByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range r.order {
		u := r.users[id]
		if u.IsActive && u.Role == role {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}
