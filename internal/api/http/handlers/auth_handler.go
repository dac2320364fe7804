package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// AuthHandler exposes login and signup.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		// One generic 401 regardless of which check failed.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("invalid email or password")
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(http.StatusBadRequest, "first_name, last_name, email, password required")
	}

	_, token, _, err := h.auth.Signup(c.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		Country:   req.Country,
		Passport:  req.Passport,
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.AuthResponse{Token: token})
}
