package dto

import (
	"time"

	"github.com/Manav933/Feedback/internal/domain"
)

// RegisterRequest payload for new reviewer accounts.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest payload for refresh and logout.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UserResponse is the credential-free account view.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserResponse maps a domain user, never exposing the credential.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username, Email: user.Email}
}

// AuthResponse carries the issued token pair.
type AuthResponse struct {
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	ExpiresAt time.Time `json:"expires_at"`
}
