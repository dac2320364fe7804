package upstream

// City is a searchable departure or destination city.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FlightOffer is a flight returned by the aggregator.
type FlightOffer struct {
	ID                int64   `json:"id"`
	FlightNumber      string  `json:"flight_number"`
	DepartureDate     string  `json:"departure_date"`
	DepartureLocation string  `json:"departure_location"`
	ArrivalLocation   string  `json:"arrival_location"`
	ReturnDate        string  `json:"return_date,omitempty"`
	Type              string  `json:"type"`
	Price             float64 `json:"price"`
	Bundle            string  `json:"bundle,omitempty"`
}

// HotelOffer is a hotel returned by the aggregator.
type HotelOffer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
}

// RoomOffer is a bookable room returned by the aggregator.
type RoomOffer struct {
	ID        string  `json:"id"`
	HotelID   string  `json:"hotel_id"`
	RoomType  string  `json:"room_type"`
	BedAmount int     `json:"bed_amount"`
	BedSize   string  `json:"bed_size"`
	Guests    int     `json:"guests"`
	Price     float64 `json:"price"`
}
