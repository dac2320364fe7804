package dto

import (
	"time"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// FlightRequest payload for creating or updating a flight booking.
type FlightRequest struct {
	UserID            int64      `json:"user_id"`
	FlightNumber      string     `json:"flight_number"`
	DepartureDate     time.Time  `json:"departure_date"`
	DepartureLocation string     `json:"departure_location"`
	ArrivalLocation   string     `json:"arrival_location"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
	Type              string     `json:"type"`
	Price             float64    `json:"price"`
	Bundle            string     `json:"bundle,omitempty"`
	ProviderID        *int64     `json:"provider_id,omitempty"`
	Seats             int        `json:"seats,omitempty"`
}

// ToDomain maps the request onto a domain flight.
func (r FlightRequest) ToDomain() *domain.Flight {
	return &domain.Flight{
		UserID:            r.UserID,
		FlightNumber:      r.FlightNumber,
		DepartureDate:     r.DepartureDate,
		DepartureLocation: r.DepartureLocation,
		ArrivalLocation:   r.ArrivalLocation,
		ReturnDate:        r.ReturnDate,
		Type:              r.Type,
		Price:             r.Price,
		Bundle:            r.Bundle,
		ProviderID:        r.ProviderID,
	}
}

// ReservationRequest payload for creating or updating a reservation.
type ReservationRequest struct {
	UserID     int64     `json:"user_id"`
	HotelID    string    `json:"hotel_id"`
	Hotel      string    `json:"hotel"`
	RoomType   string    `json:"room_type"`
	DateStart  time.Time `json:"date_start"`
	DateEnd    time.Time `json:"date_end"`
	Price      float64   `json:"price"`
	Location   string    `json:"location"`
	Guests     int       `json:"guests"`
	BedAmount  int       `json:"bed_amount"`
	BedSize    string    `json:"bed_size"`
	Bundle     string    `json:"bundle,omitempty"`
	ProviderID *int64    `json:"provider_id,omitempty"`
}

// ToDomain maps the request onto a domain reservation.
func (r ReservationRequest) ToDomain() *domain.Reservation {
	return &domain.Reservation{
		UserID:     r.UserID,
		HotelID:    r.HotelID,
		Hotel:      r.Hotel,
		RoomType:   r.RoomType,
		DateStart:  r.DateStart,
		DateEnd:    r.DateEnd,
		Price:      r.Price,
		Location:   r.Location,
		Guests:     r.Guests,
		BedAmount:  r.BedAmount,
		BedSize:    r.BedSize,
		Bundle:     r.Bundle,
		ProviderID: r.ProviderID,
	}
}

// FlightResponse is the booking representation returned to clients.
type FlightResponse struct {
	ID                int64              `json:"id"`
	UserID            int64              `json:"user_id"`
	FlightNumber      string             `json:"flight_number"`
	DepartureDate     time.Time          `json:"departure_date"`
	DepartureLocation string             `json:"departure_location"`
	ArrivalLocation   string             `json:"arrival_location"`
	ReturnDate        *time.Time         `json:"return_date,omitempty"`
	Type              string             `json:"type"`
	PurchaseDate      time.Time          `json:"purchase_date"`
	Price             float64            `json:"price"`
	State             domain.FlightState `json:"state"`
	Bundle            string             `json:"bundle,omitempty"`
	Rating            *int64             `json:"rating,omitempty"`
	ProviderID        *int64             `json:"provider_id,omitempty"`
}

// NewFlightResponse maps a domain flight to its API shape.
func NewFlightResponse(flight *domain.Flight) *FlightResponse {
	if flight == nil {
		return nil
	}
	return &FlightResponse{
		ID:                flight.ID,
		UserID:            flight.UserID,
		FlightNumber:      flight.FlightNumber,
		DepartureDate:     flight.DepartureDate,
		DepartureLocation: flight.DepartureLocation,
		ArrivalLocation:   flight.ArrivalLocation,
		ReturnDate:        flight.ReturnDate,
		Type:              flight.Type,
		PurchaseDate:      flight.PurchaseDate,
		Price:             flight.Price,
		State:             flight.State,
		Bundle:            flight.Bundle,
		Rating:            flight.Rating,
		ProviderID:        flight.ProviderID,
	}
}

// NewFlightResponses maps a slice of domain flights.
func NewFlightResponses(flights []domain.Flight) []*FlightResponse {
	out := make([]*FlightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, NewFlightResponse(&flights[i]))
	}
	return out
}

// ReservationResponse is the reservation representation returned to clients.
type ReservationResponse struct {
	ID                int64                   `json:"id"`
	UserID            int64                   `json:"user_id"`
	HotelID           string                  `json:"hotel_id"`
	Hotel             string                  `json:"hotel"`
	RoomType          string                  `json:"room_type"`
	ReservationNumber string                  `json:"reservation_number"`
	DateStart         time.Time               `json:"date_start"`
	DateEnd           time.Time               `json:"date_end"`
	TotalDays         int                     `json:"total_days"`
	Price             float64                 `json:"price"`
	TotalPrice        float64                 `json:"total_price"`
	Location          string                  `json:"location"`
	Guests            int                     `json:"guests"`
	BedAmount         int                     `json:"bed_amount"`
	BedSize           string                  `json:"bed_size"`
	State             domain.ReservationState `json:"state"`
	Rating            *int64                  `json:"rating,omitempty"`
	Bundle            string                  `json:"bundle,omitempty"`
	ProviderID        *int64                  `json:"provider_id,omitempty"`
}

// NewReservationResponse maps a domain reservation to its API shape.
func NewReservationResponse(reservation *domain.Reservation) *ReservationResponse {
	if reservation == nil {
		return nil
	}
	return &ReservationResponse{
		ID:                reservation.ID,
		UserID:            reservation.UserID,
		HotelID:           reservation.HotelID,
		Hotel:             reservation.Hotel,
		RoomType:          reservation.RoomType,
		ReservationNumber: reservation.ReservationNumber,
		DateStart:         reservation.DateStart,
		DateEnd:           reservation.DateEnd,
		TotalDays:         reservation.TotalDays,
		Price:             reservation.Price,
		TotalPrice:        reservation.TotalPrice,
		Location:          reservation.Location,
		Guests:            reservation.Guests,
		BedAmount:         reservation.BedAmount,
		BedSize:           reservation.BedSize,
		State:             reservation.State,
		Rating:            reservation.Rating,
		Bundle:            reservation.Bundle,
		ProviderID:        reservation.ProviderID,
	}
}

// NewReservationResponses maps a slice of domain reservations.
func NewReservationResponses(reservations []domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, NewReservationResponse(&reservations[i]))
	}
	return out
}

// CommentRequest payload for feedback entries.
type CommentRequest struct {
	UserID  int64  `json:"user_id"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// ProviderRequest payload for provider administration.
type ProviderRequest struct {
	ProviderName       string              `json:"provider_name"`
	ProviderURL        string              `json:"provider_url"`
	Type               domain.ProviderType `json:"type"`
	PercentageDiscount int                 `json:"percentage_discount"`
	GainsFlights       float64             `json:"gains_flights"`
	GainsHotel         float64             `json:"gains_hotel"`
}

// CommentResponse is the feedback representation returned to clients.
type CommentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse maps a domain comment to its API shape.
func NewCommentResponse(comment *domain.Comment) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		Comment:   comment.Comment,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

// NewCommentResponses maps a slice of domain comments.
func NewCommentResponses(comments []domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}

// ProviderResponse is the provider representation returned to clients.
type ProviderResponse struct {
	ID                 int64               `json:"id"`
	ProviderName       string              `json:"provider_name"`
	ProviderURL        string              `json:"provider_url"`
	Type               domain.ProviderType `json:"type"`
	PercentageDiscount int                 `json:"percentage_discount"`
	GainsFlights       float64             `json:"gains_flights"`
	GainsHotel         float64             `json:"gains_hotel"`
}

// NewProviderResponse maps a domain provider to its API shape.
func NewProviderResponse(provider *domain.Provider) *ProviderResponse {
	if provider == nil {
		return nil
	}
	return &ProviderResponse{
		ID:                 provider.ID,
		ProviderName:       provider.ProviderName,
		ProviderURL:        provider.ProviderURL,
		Type:               provider.Type,
		PercentageDiscount: provider.PercentageDiscount,
		GainsFlights:       provider.GainsFlights,
		GainsHotel:         provider.GainsHotel,
	}
}

// NewProviderResponses maps a slice of domain providers.
func NewProviderResponses(providers []domain.Provider) []*ProviderResponse {
	out := make([]*ProviderResponse, 0, len(providers))
	for i := range providers {
		out = append(out, NewProviderResponse(&providers[i]))
	}
	return out
}

// AboutUsRequest payload for the about-us page.
type AboutUsRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

// AboutUsResponse is the about-us entry representation returned to clients.
type AboutUsResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

// NewAboutUsResponse maps a domain entry to its API shape.
func NewAboutUsResponse(entry *domain.AboutUs) *AboutUsResponse {
	if entry == nil {
		return nil
	}
	return &AboutUsResponse{
		ID:       entry.ID,
		Title:    entry.Title,
		Body:     entry.Body,
		ImageURL: entry.ImageURL,
	}
}

// NewAboutUsResponses maps a slice of domain entries.
func NewAboutUsResponses(entries []domain.AboutUs) []*AboutUsResponse {
	out := make([]*AboutUsResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewAboutUsResponse(&entries[i]))
	}
	return out
}
