package dto

import (
	"time"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// SignInRequest payload for login.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest payload for new accounts.
type SignUpRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Age       int    `json:"age"`
	Country   string `json:"country"`
	Passport  string `json:"passport"`
}

// UserResponse is the account representation returned to clients. The
// password hash never leaves the service.
type UserResponse struct {
	ID         int64       `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	Age        int         `json:"age"`
	Country    string      `json:"country"`
	Passport   string      `json:"passport"`
	Percentage int         `json:"percentage"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// AuthResponse carries an issued token, with the account on login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user,omitempty"`
}

// NewUserResponse maps a domain user to its API shape.
func NewUserResponse(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       user.Role,
		Age:        user.Age,
		Country:    user.Country,
		Passport:   user.Passport,
		Percentage: user.Percentage,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
