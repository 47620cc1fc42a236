package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

const (
	// AdminUsername is the only account the library knows about.
	AdminUsername = "admin"
	// DefaultPassword is seeded on first run.
	DefaultPassword = "pass"
)

// CredentialStore defines the data access the authenticator needs.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*entities.Credential, error)
	SeedIfEmpty(ctx context.Context, cred *entities.Credential) (bool, error)
}

// Authenticator checks the admin password against the stored digest.
type Authenticator struct {
	store CredentialStore
	log   zerolog.Logger
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(store CredentialStore, log zerolog.Logger) *Authenticator {
	return &Authenticator{store: store, log: log}
}

// SeedDefault stores the default admin credential if the login table is empty.
func (a *Authenticator) SeedDefault(ctx context.Context) error {
	created, err := a.store.SeedIfEmpty(ctx, &entities.Credential{
		Username: AdminUsername,
		Password: HashPassword(DefaultPassword),
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}
	if created {
		a.log.Info().Str("user", AdminUsername).Msg("Seeded default admin credential")
	}
	return nil
}

// Login returns nil when password matches the admin credential,
// ErrInvalidPassword when it does not.
func (a *Authenticator) Login(ctx context.Context, password string) error {
	return a.LoginAs(ctx, AdminUsername, password)
}

// LoginAs is Login for an explicit username. An unknown user is reported as
// ErrInvalidPassword so callers cannot tell the two apart.
func (a *Authenticator) LoginAs(ctx context.Context, username, password string) error {
	if username == "" {
		return ErrInvalidPassword
	}

	cred, err := a.store.GetByUsername(ctx, username)
	if err != nil {
		if database.IsNotFound(err) {
			a.log.Debug().Str("user", username).Msg("Login for unknown user")
			return ErrInvalidPassword
		}
		return fmt.Errorf("failed to load credential: %w", err)
	}

	if err := CheckPassword(password, cred.Password); err != nil {
		a.log.Debug().Str("user", username).Msg("Rejected login attempt")
		return err
	}
	return nil
}

// IsInvalidPassword reports whether err is a rejected login rather than a storage failure.
func IsInvalidPassword(err error) bool {
	return errors.Is(err, ErrInvalidPassword)
}
