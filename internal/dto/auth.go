package dto

import (
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// LoginRequest defines the credentials for a login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest defines the data needed to create an operator account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// RefreshRequest carries the refresh token to exchange for a new pair.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPairResponse is the access/refresh pair returned by login and refresh.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserResponse defines the data returned for an operator account.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
