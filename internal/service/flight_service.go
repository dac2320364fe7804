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

// FlightService covers flight bookings and catalog searches.
type FlightService struct {
	flights    repository.FlightRepository
	aggregator *upstream.Client
	dispatcher events.Dispatcher
}

// NewFlightService builds the service.
func NewFlightService(flights repository.FlightRepository, aggregator *upstream.Client, dispatcher events.Dispatcher) *FlightService {
	return &FlightService{flights: flights, aggregator: aggregator, dispatcher: dispatcher}
}

// List returns all flight bookings.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}

// Get returns one booking by id.
func (s *FlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("flight", map[string]any{"id": id})
	}
	return flight, err
}

// ListByUser returns a traveler's bookings.
func (s *FlightService) ListByUser(ctx context.Context, userID int64) ([]domain.Flight, error) {
	return s.flights.ListByUser(ctx, userID)
}

// Create stores a booking as-is (admin path).
func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.State == "" {
		flight.State = domain.FlightStateActive
	}
	if flight.PurchaseDate.IsZero() {
		flight.PurchaseDate = time.Now()
	}
	return s.flights.Create(ctx, flight)
}

// Update replaces booking fields.
func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) error {
	err := s.flights.Update(ctx, flight)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("flight", map[string]any{"id": flight.ID})
	}
	return err
}

// Delete removes a booking.
func (s *FlightService) Delete(ctx context.Context, id int64) error {
	err := s.flights.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("flight", map[string]any{"id": id})
	}
	return err
}

// Purchase books a flight and one ticket row per seat, then emits a
// purchase event for notification.
func (s *FlightService) Purchase(ctx context.Context, flight *domain.Flight, seats int) (*domain.Flight, error) {
	if seats <= 0 {
		seats = 1
	}
	flight.State = domain.FlightStateActive
	flight.PurchaseDate = time.Now()

	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	for i := 0; i < seats; i++ {
		ticket := &domain.TicketPurchase{
			FlightID:          flight.ID,
			UserID:            flight.UserID,
			FlightNumber:      flight.FlightNumber,
			DepartureDate:     flight.DepartureDate,
			DepartureLocation: flight.DepartureLocation,
			ArrivalLocation:   flight.ArrivalLocation,
			ReturnDate:        flight.ReturnDate,
			Type:              flight.Type,
			PurchaseDate:      flight.PurchaseDate,
			Price:             flight.Price,
			State:             domain.FlightStateActive,
			Bundle:            flight.Bundle,
		}
		if err := s.flights.CreateTicket(ctx, ticket); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, events.EventFlightPurchased, flight.UserID, events.FlightPurchasedPayload{
		FlightID:     flight.ID,
		FlightNumber: flight.FlightNumber,
		Price:        flight.Price,
		Tickets:      seats,
	})
	return flight, nil
}

// Deactivate turns off a booking by id. Cancellation links in
// confirmation emails hit this without a session.
func (s *FlightService) Deactivate(ctx context.Context, id int64) error {
	flight, err := s.flights.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("flight", map[string]any{"id": id})
	}
	if err != nil {
		return err
	}
	if err := s.flights.Deactivate(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventFlightDeactivated, flight.UserID, events.FlightDeactivatedPayload{FlightID: id})
	return nil
}

// DeactivateByFlightNumber turns off every booking on a flight number.
func (s *FlightService) DeactivateByFlightNumber(ctx context.Context, flightNumber string) error {
	err := s.flights.DeactivateByFlightNumber(ctx, flightNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("flight", map[string]any{"flight_number": flightNumber})
	}
	if err != nil {
		return err
	}
	s.publish(ctx, events.EventFlightDeactivated, 0, events.FlightDeactivatedPayload{FlightNumber: flightNumber})
	return nil
}

// DeactivateTicket turns off a single ticket row.
func (s *FlightService) DeactivateTicket(ctx context.Context, ticketID int64) error {
	err := s.flights.DeactivateTicket(ctx, ticketID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	return err
}

// SearchCities proxies the aggregator's city catalog.
func (s *FlightService) SearchCities(ctx context.Context) []upstream.City {
	return s.aggregator.Cities(ctx)
}

// SearchFlights proxies the aggregator's full offer catalog.
func (s *FlightService) SearchFlights(ctx context.Context) []upstream.FlightOffer {
	return s.aggregator.Flights(ctx)
}

// SearchOneWay proxies a one-way offer search.
func (s *FlightService) SearchOneWay(ctx context.Context, from, to, date string) []upstream.FlightOffer {
	return s.aggregator.OneWayFlights(ctx, from, to, date)
}

// SearchRoundTrip proxies a round-trip offer search.
func (s *FlightService) SearchRoundTrip(ctx context.Context, from, to, date, returnDate string) []upstream.FlightOffer {
	return s.aggregator.RoundTripFlights(ctx, from, to, date, returnDate)
}

func (s *FlightService) publish(ctx context.Context, eventType events.EventType, userID int64, payload any) {
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
