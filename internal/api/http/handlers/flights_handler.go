package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// FlightsHandler exposes flight booking and catalog endpoints.
type FlightsHandler struct {
	flights *service.FlightService
}

// NewFlightsHandler constructs the handler.
func NewFlightsHandler(flights *service.FlightService) *FlightsHandler {
	return &FlightsHandler{flights: flights}
}

// List handles GET /flights.
func (h *FlightsHandler) List(c *fiber.Ctx) error {
	flights, err := h.flights.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewFlightResponses(flights))
}

// Get handles GET /flights/:id.
func (h *FlightsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	flight, err := h.flights.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewFlightResponse(flight))
}

// ListByUser handles GET /flights/user/:userId.
func (h *FlightsHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	flights, err := h.flights.ListByUser(c.Context(), userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewFlightResponses(flights))
}

// Create handles POST /flights.
func (h *FlightsHandler) Create(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	flight := req.ToDomain()
	if err := h.flights.Create(c.Context(), flight); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewFlightResponse(flight))
}

// Update handles PUT /flights/:id.
func (h *FlightsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	flight := req.ToDomain()
	flight.ID = id
	if err := h.flights.Update(c.Context(), flight); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewFlightResponse(flight))
}

// Delete handles DELETE /flights/:id.
func (h *FlightsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.flights.Delete(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Purchase handles POST /flights/purchase.
func (h *FlightsHandler) Purchase(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FlightNumber == "" || req.UserID == 0 {
		return fiber.NewError(http.StatusBadRequest, "user_id and flight_number required")
	}
	flight, err := h.flights.Purchase(c.Context(), req.ToDomain(), req.Seats)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewFlightResponse(flight))
}

// Deactivate handles PUT /flights/deactivate/:flightNumber. Public so
// cancellation links work without a session.
func (h *FlightsHandler) Deactivate(c *fiber.Ctx) error {
	flightNumber := c.Params("flightNumber")
	if flightNumber == "" {
		return fiber.NewError(http.StatusBadRequest, "flightNumber required")
	}
	if err := h.flights.DeactivateByFlightNumber(c.Context(), flightNumber); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"status": "deactivated"})
}

// DeactivateByID handles PUT /flights/deactivateById/:id.
func (h *FlightsHandler) DeactivateByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.flights.Deactivate(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"status": "deactivated"})
}

// DeactivateTicket handles PUT /flights/deactivateTicket/:id.
func (h *FlightsHandler) DeactivateTicket(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.flights.DeactivateTicket(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"status": "deactivated"})
}

// Cities handles GET /flights/avianca/cities.
func (h *FlightsHandler) Cities(c *fiber.Ctx) error {
	return c.JSON(h.flights.SearchCities(c.Context()))
}

// Offers handles GET /flights/avianca/flights.
func (h *FlightsHandler) Offers(c *fiber.Ctx) error {
	return c.JSON(h.flights.SearchFlights(c.Context()))
}

// OneWay handles GET /flights/avianca/one-way-flights.
func (h *FlightsHandler) OneWay(c *fiber.Ctx) error {
	return c.JSON(h.flights.SearchOneWay(c.Context(),
		c.Query("from"), c.Query("to"), c.Query("date")))
}

// RoundTrip handles GET /flights/avianca/round-trip-flights.
func (h *FlightsHandler) RoundTrip(c *fiber.Ctx) error {
	return c.JSON(h.flights.SearchRoundTrip(c.Context(),
		c.Query("from"), c.Query("to"), c.Query("date"), c.Query("return_date")))
}
