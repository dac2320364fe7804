package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFlightPurchased      EventType = "flight_purchased"
	EventFlightDeactivated    EventType = "flight_deactivated"
	EventReservationCreated   EventType = "reservation_created"
	EventReservationCancelled EventType = "reservation_cancelled"
)

// Event represents a domain event emitted by booking services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// FlightPurchasedPayload payload.
type FlightPurchasedPayload struct {
	FlightID     int64   `json:"flight_id"`
	FlightNumber string  `json:"flight_number"`
	Price        float64 `json:"price"`
	Tickets      int     `json:"tickets"`
}

// FlightDeactivatedPayload payload.
type FlightDeactivatedPayload struct {
	FlightID     int64  `json:"flight_id,omitempty"`
	FlightNumber string `json:"flight_number,omitempty"`
}

// ReservationCreatedPayload payload.
type ReservationCreatedPayload struct {
	ReservationID     int64  `json:"reservation_id"`
	ReservationNumber string `json:"reservation_number"`
	Hotel             string `json:"hotel"`
}

// ReservationCancelledPayload payload.
type ReservationCancelledPayload struct {
	ReservationID int64  `json:"reservation_id,omitempty"`
	HotelID       string `json:"hotel_id,omitempty"`
}
