// Package seed loads bootstrap accounts from a YAML file so that the first
// administrator exists before anyone can call the authenticated create-user
// endpoint.
//
//	users:
//	  - username: admin
//	    password: change-me-now
//	    role: admin
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

type usersFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Role      string `yaml:"role"`
	IsActive  *bool  `yaml:"is_active"`
}

// Users creates every account listed in path that does not exist yet.
// It returns the number of accounts created.
func Users(ctx context.Context, path string, repo ports.UserRepository, users ports.UserService, log zerolog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	return load(ctx, data, repo, users, log)
}

func load(ctx context.Context, data []byte, repo ports.UserRepository, users ports.UserService, log zerolog.Logger) (int, error) {
	var uf usersFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	created := 0
	for _, u := range uf.Users {
		if u.Username == "" || u.Password == "" {
			log.Warn().Str("username", u.Username).Msg("seed entry without username or password skipped")
			continue
		}

		if _, err := repo.FindByUsername(ctx, u.Username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return created, fmt.Errorf("seed %s: %w", u.Username, err)
		}

		if _, err := users.Create(ctx, ports.CreateUserInput{
			Username:  u.Username,
			Password:  u.Password,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			IsActive:  u.IsActive,
		}); err != nil {
			return created, fmt.Errorf("seed %s: %w", u.Username, err)
		}
		created++
		log.Info().Str("username", u.Username).Str("role", u.Role).Msg("seeded user")
	}
	return created, nil
}
