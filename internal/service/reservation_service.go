package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/events"
	"github.com/signaidy/nexus-standalone/internal/repository"
	"github.com/signaidy/nexus-standalone/internal/upstream"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// ReservationService covers hotel reservations and hotel catalog searches.
type ReservationService struct {
	reservations repository.ReservationRepository
	aggregator   *upstream.Client
	dispatcher   events.Dispatcher
}

// NewReservationService builds the service.
func NewReservationService(reservations repository.ReservationRepository, aggregator *upstream.Client, dispatcher events.Dispatcher) *ReservationService {
	return &ReservationService{reservations: reservations, aggregator: aggregator, dispatcher: dispatcher}
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

// Get returns one reservation by id.
func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservations.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("reservation", map[string]any{"id": id})
	}
	return reservation, err
}

// ListByUser returns a traveler's reservations.
func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// Create books a stay, assigning a reservation number, and emits a
// creation event for notification.
func (s *ReservationService) Create(ctx context.Context, reservation *domain.Reservation) error {
	if reservation.ReservationNumber == "" {
		reservation.ReservationNumber = uuid.NewString()
	}
	if reservation.State == "" {
		reservation.State = domain.ReservationStateActive
	}
	if reservation.TotalDays == 0 && reservation.DateEnd.After(reservation.DateStart) {
		reservation.TotalDays = int(reservation.DateEnd.Sub(reservation.DateStart).Hours() / 24)
	}
	if reservation.TotalPrice == 0 {
		reservation.TotalPrice = reservation.Price * float64(reservation.TotalDays)
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return err
	}

	s.publish(ctx, events.EventReservationCreated, reservation.UserID, events.ReservationCreatedPayload{
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		Hotel:             reservation.Hotel,
	})
	return nil
}

// Update replaces reservation fields.
func (s *ReservationService) Update(ctx context.Context, reservation *domain.Reservation) error {
	err := s.reservations.Update(ctx, reservation)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("reservation", map[string]any{"id": reservation.ID})
	}
	return err
}

// Delete removes a reservation.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	err := s.reservations.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("reservation", map[string]any{"id": id})
	}
	return err
}

// Cancel marks a reservation cancelled. Cancellation links in
// confirmation emails hit this without a session.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	reservation, err := s.reservations.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("reservation", map[string]any{"id": id})
	}
	if err != nil {
		return err
	}
	if err := s.reservations.Cancel(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventReservationCancelled, reservation.UserID, events.ReservationCancelledPayload{ReservationID: id})
	return nil
}

// CancelByHotel cancels every reservation for a hotel.
func (s *ReservationService) CancelByHotel(ctx context.Context, hotelID string) error {
	err := s.reservations.CancelByHotel(ctx, hotelID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("reservation", map[string]any{"hotel_id": hotelID})
	}
	if err != nil {
		return err
	}
	s.publish(ctx, events.EventReservationCancelled, 0, events.ReservationCancelledPayload{HotelID: hotelID})
	return nil
}

// SearchCities proxies the aggregator's city catalog.
func (s *ReservationService) SearchCities(ctx context.Context) []upstream.City {
	return s.aggregator.Cities(ctx)
}

// SearchHotels proxies a hotel search.
func (s *ReservationService) SearchHotels(ctx context.Context, location, checkIn, checkOut string) []upstream.HotelOffer {
	return s.aggregator.Hotels(ctx, location, checkIn, checkOut)
}

// SearchRooms proxies a room search.
func (s *ReservationService) SearchRooms(ctx context.Context, hotelID, guests string) []upstream.RoomOffer {
	return s.aggregator.Rooms(ctx, hotelID, guests)
}

func (s *ReservationService) publish(ctx context.Context, eventType events.EventType, userID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
