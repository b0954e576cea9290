package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/emre/devfolio/internal/app/models"
	appRepos "github.com/emre/devfolio/internal/app/repositories"
	"github.com/emre/devfolio/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData creates the default admin account if no account with that
// username exists. Existing accounts are never touched, so a changed password
// survives restarts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	exists, err := adminRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("username", defaultAdminUsername).Msg("Default admin already present, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &appModels.Admin{
		Username: defaultAdminUsername,
		Password: hash,
	}
	id, err := adminRepo.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Int64("adminID", id).Str("username", defaultAdminUsername).Msg("Default admin account created")
	return nil
}
