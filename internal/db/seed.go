package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/auth"
	"github.com/mercuryins/pas-service/internal/model"
	"github.com/mercuryins/pas-service/internal/repository"
)

type seedUser struct {
	firstName string
	lastName  string
	email     string
	password  string
	role      model.Role
}

var seedUsers = []seedUser{
	{"System", "Admin", "admin@mercury.com", "Admin@123", model.RoleAdmin},
	{"Default", "Agent", "agent@mercury.com", "Agent@123", model.RoleAgent},
	{"Demo", "Customer", "customer@mercury.com", "Customer@123", model.RoleCustomer},
}

// Seed creates the default admin, agent and customer accounts when they
// are absent.
func Seed(ctx context.Context, database *gorm.DB, log zerolog.Logger) error {
	users := repository.NewUserRepository(database)

	for _, s := range seedUsers {
		_, err := users.GetByEmail(ctx, s.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(s.password)
		if err != nil {
			return err
		}
		user := &model.User{
			ID:           uuid.New(),
			FirstName:    s.firstName,
			LastName:     s.lastName,
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
			CreatedAt:    time.Now(),
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		log.Info().Str("email", s.email).Str("role", string(s.role)).Msg("seeded user")
	}
	return nil
}
