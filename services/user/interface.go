package user

import "salonq/models"

// RegisterRequest carries the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	SalonID string `json:"salonId,omitempty"`
	Token   string `json:"token"`
}

// UserService manages accounts and authentication.
type UserService interface {
	// Register creates an account and returns a fresh session.
	Register(req RegisterRequest) (*AuthResponse, error)
	// Authenticate verifies credentials and returns a fresh session.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID fetches one user.
	GetUserByID(id string) (*models.User, error)
	// GetAllUsers lists every account; main-admin only surface.
	GetAllUsers() ([]models.User, error)
}
