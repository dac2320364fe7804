package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// ProvidersHandler exposes provider administration endpoints.
type ProvidersHandler struct {
	providers *service.ProviderService
}

// NewProvidersHandler constructs the handler.
func NewProvidersHandler(providers *service.ProviderService) *ProvidersHandler {
	return &ProvidersHandler{providers: providers}
}

// List handles GET /providers.
func (h *ProvidersHandler) List(c *fiber.Ctx) error {
	providers, err := h.providers.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewProviderResponses(providers))
}

// ListByType handles GET /providers/type/:type.
func (h *ProvidersHandler) ListByType(c *fiber.Ctx) error {
	providers, err := h.providers.ListByType(c.Context(), domain.ProviderType(c.Params("type")))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewProviderResponses(providers))
}

// Get handles GET /providers/:id.
func (h *ProvidersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	provider, err := h.providers.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewProviderResponse(provider))
}

// Create handles POST /providers.
func (h *ProvidersHandler) Create(c *fiber.Ctx) error {
	var req dto.ProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProviderName == "" {
		return fiber.NewError(http.StatusBadRequest, "provider_name required")
	}
	provider := &domain.Provider{
		ProviderName:       req.ProviderName,
		ProviderURL:        req.ProviderURL,
		Type:               req.Type,
		PercentageDiscount: req.PercentageDiscount,
		GainsFlights:       req.GainsFlights,
		GainsHotel:         req.GainsHotel,
	}
	if err := h.providers.Create(c.Context(), provider); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewProviderResponse(provider))
}

// Update handles PUT /providers/:id.
func (h *ProvidersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	provider := &domain.Provider{
		ID:                 id,
		ProviderName:       req.ProviderName,
		ProviderURL:        req.ProviderURL,
		Type:               req.Type,
		PercentageDiscount: req.PercentageDiscount,
		GainsFlights:       req.GainsFlights,
		GainsHotel:         req.GainsHotel,
	}
	if err := h.providers.Update(c.Context(), provider); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewProviderResponse(provider))
}

// Delete handles DELETE /providers/:id.
func (h *ProvidersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.providers.Delete(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
