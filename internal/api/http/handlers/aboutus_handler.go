package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// AboutUsHandler exposes the about-us page endpoints.
type AboutUsHandler struct {
	aboutus *service.AboutUsService
}

// NewAboutUsHandler constructs the handler.
func NewAboutUsHandler(aboutus *service.AboutUsService) *AboutUsHandler {
	return &AboutUsHandler{aboutus: aboutus}
}

// List handles GET /aboutus.
func (h *AboutUsHandler) List(c *fiber.Ctx) error {
	entries, err := h.aboutus.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAboutUsResponses(entries))
}

// Get handles GET /aboutus/:id.
func (h *AboutUsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entry, err := h.aboutus.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAboutUsResponse(entry))
}

// Create handles POST /aboutus.
func (h *AboutUsHandler) Create(c *fiber.Ctx) error {
	var req dto.AboutUsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	entry := &domain.AboutUs{Title: req.Title, Body: req.Body, ImageURL: req.ImageURL}
	if err := h.aboutus.Save(c.Context(), entry); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAboutUsResponse(entry))
}

// Update handles PUT /aboutus/:id.
func (h *AboutUsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AboutUsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	entry := &domain.AboutUs{ID: id, Title: req.Title, Body: req.Body, ImageURL: req.ImageURL}
	if err := h.aboutus.Save(c.Context(), entry); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAboutUsResponse(entry))
}
