// Package memory holds process-local repositories used for local runs and
// router tests. Data is lost on restart.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// Store exposes the in-memory repositories with the same shape as the
// database-backed stores.
type Store struct {
	Users    *UserRepository
	Visitors *VisitorRepository
}

func NewStore() *Store {
	return &Store{
		Users:    NewUserRepository(),
		Visitors: NewVisitorRepository(),
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.User
	order  []string
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameTaken(user.Username, "") {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	u := user.Clone()
	u.ID = strconv.FormatInt(r.nextID, 10)
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return u.Clone(), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return nil, domain.ErrUserExists
	}
	r.byID[user.ID] = user.Clone()
	return user.Clone(), nil
}

func (r *UserRepository) ListActiveByRole(_ context.Context, role string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0)
	for _, id := range r.order {
		if u := r.byID[id]; u.IsActive && u.Role == role {
			users = append(users, u.Clone())
		}
	}
	return users, nil
}

// usernameTaken must be called with r.mu held.
func (r *UserRepository) usernameTaken(username, exceptID string) bool {
	for id, u := range r.byID {
		if id != exceptID && u.Username == username {
			return true
		}
	}
	return false
}

// VisitorRepository implements ports.VisitorRepository. CreatedAt is strictly
// increasing across inserts even when the wall clock does not advance.
type VisitorRepository struct {
	mu       sync.RWMutex
	visitors []domain.Visitor
	last     time.Time
	now      func() time.Time
}

func NewVisitorRepository() *VisitorRepository {
	return &VisitorRepository{now: time.Now}
}

func (r *VisitorRepository) Create(_ context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now().UTC()
	if !ts.After(r.last) {
		ts = r.last.Add(time.Microsecond)
	}
	r.last = ts

	rec := *v
	rec.ID = strconv.Itoa(len(r.visitors) + 1)
	rec.CreatedAt = ts
	r.visitors = append(r.visitors, rec)

	out := rec
	return &out, nil
}

func (r *VisitorRepository) ListNewestFirst(_ context.Context) ([]*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Visitor, 0, len(r.visitors))
	for i := len(r.visitors) - 1; i >= 0; i-- {
		v := r.visitors[i]
		out = append(out, &v)
	}
	return out, nil
}
