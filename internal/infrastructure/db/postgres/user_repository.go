package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

const userColumns = `id, username, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		id int64
		u  domain.User
	)
	if err := row.Scan(&id, &u.Username, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.ID = strconv.FormatInt(id, 10)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO users (username, first_name, last_name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, q, user.Username, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.Role, user.IsActive, user.CreatedAt.UTC(), user.UpdatedAt.UTC())
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, n)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) findOne(ctx context.Context, q string, arg any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Update rewrites every mutable column in one statement.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	n, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	const q = `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5,
		    password_hash = $6, role = $7, is_active = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, q, n, user.Username, user.FirstName, user.LastName,
		user.Email, user.PasswordHash, user.Role, user.IsActive, user.UpdatedAt.UTC()))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, domain.ErrUserNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// ListActiveByRole returns matching users ordered by id (insertion order).
func (r *UserRepository) ListActiveByRole(ctx context.Context, role string) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 AND is_active = TRUE ORDER BY id`, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
