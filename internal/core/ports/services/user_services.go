package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// UserSvcFacade defines operations for operator accounts and credentials.
type UserSvcFacade interface {
	// CreateUser registers a new operator account with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
