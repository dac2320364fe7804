package domain

import "time"

// FlightState enumerates ticket lifecycle states.
type FlightState string

const (
	FlightStateActive   FlightState = "active"
	FlightStateInactive FlightState = "inactive"
)

// Flight is a purchased flight booking owned by a user.
type Flight struct {
	ID                int64
	UserID            int64
	FlightNumber      string
	DepartureDate     time.Time
	DepartureLocation string
	ArrivalLocation   string
	ReturnDate        *time.Time
	Type              string
	PurchaseDate      time.Time
	Price             float64
	State             FlightState
	Bundle            string
	Rating            *int64
	ProviderID        *int64
}

// TicketPurchase is a single ticket row tied to a flight booking.
type TicketPurchase struct {
	ID                int64
	FlightID          int64
	UserID            int64
	FlightNumber      string
	DepartureDate     time.Time
	DepartureLocation string
	ArrivalLocation   string
	ReturnDate        *time.Time
	Type              string
	PurchaseDate      time.Time
	Price             float64
	State             FlightState
	Bundle            string
	Rating            *int64
}
