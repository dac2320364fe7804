package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// ReservationsHandler exposes hotel reservation and search endpoints.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs the handler.
func NewReservationsHandler(reservations *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservations}
}

// List handles GET /reservations.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	reservations, err := h.reservations.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewReservationResponses(reservations))
}

// Get handles GET /reservations/:id.
func (h *ReservationsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reservation, err := h.reservations.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewReservationResponse(reservation))
}

// ListByUser handles GET /reservations/user/:userId.
func (h *ReservationsHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	reservations, err := h.reservations.ListByUser(c.Context(), userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewReservationResponses(reservations))
}

// Create handles POST /reservations.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == 0 || req.Hotel == "" {
		return fiber.NewError(http.StatusBadRequest, "user_id and hotel required")
	}
	reservation := req.ToDomain()
	if err := h.reservations.Create(c.Context(), reservation); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewReservationResponse(reservation))
}

// Update handles PUT /reservations/:id.
func (h *ReservationsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	reservation := req.ToDomain()
	reservation.ID = id
	if err := h.reservations.Update(c.Context(), reservation); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewReservationResponse(reservation))
}

// Delete handles DELETE /reservations/:id.
func (h *ReservationsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reservations.Delete(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Cancel handles PUT /reservations/cancel/:id. Public so cancellation
// links work without a session.
func (h *ReservationsHandler) Cancel(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reservations.Cancel(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"status": "cancelled"})
}

// CancelByHotel handles PUT /reservations/cancelHotel/:hotelId.
func (h *ReservationsHandler) CancelByHotel(c *fiber.Ctx) error {
	hotelID := c.Params("hotelId")
	if hotelID == "" {
		return fiber.NewError(http.StatusBadRequest, "hotelId required")
	}
	if err := h.reservations.CancelByHotel(c.Context(), hotelID); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"status": "cancelled"})
}

// Cities handles GET /reservations/cities.
func (h *ReservationsHandler) Cities(c *fiber.Ctx) error {
	return c.JSON(h.reservations.SearchCities(c.Context()))
}

// HotelSearch handles GET /reservations/hotelsearch.
func (h *ReservationsHandler) HotelSearch(c *fiber.Ctx) error {
	return c.JSON(h.reservations.SearchHotels(c.Context(),
		c.Query("location"), c.Query("check_in"), c.Query("check_out")))
}

// RoomSearch handles GET /reservations/roomsearch.
func (h *ReservationsHandler) RoomSearch(c *fiber.Ctx) error {
	return c.JSON(h.reservations.SearchRooms(c.Context(),
		c.Query("hotel_id"), c.Query("guests")))
}
