package domain

import "time"

// ReservationState enumerates hotel reservation lifecycle states.
type ReservationState string

const (
	ReservationStateActive    ReservationState = "active"
	ReservationStateCancelled ReservationState = "cancelled"
)

// Reservation is a hotel stay booked by a user.
type Reservation struct {
	ID                int64
	UserID            int64
	HotelID           string
	Hotel             string
	RoomType          string
	ReservationNumber string
	DateStart         time.Time
	DateEnd           time.Time
	TotalDays         int
	Price             float64
	TotalPrice        float64
	Location          string
	Guests            int
	BedAmount         int
	BedSize           string
	State             ReservationState
	Rating            *int64
	Bundle            string
	ProviderID        *int64
}
