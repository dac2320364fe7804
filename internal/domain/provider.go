package domain

// ProviderType distinguishes what inventory a provider sells.
type ProviderType string

const (
	ProviderTypeFlights ProviderType = "flights"
	ProviderTypeHotels  ProviderType = "hotels"
	ProviderTypeBoth    ProviderType = "both"
)

// Provider is an upstream travel vendor the platform resells for.
type Provider struct {
	ID                 int64
	ProviderName       string
	ProviderURL        string
	Type               ProviderType
	PercentageDiscount int
	GainsFlights       float64
	GainsHotel         float64
}
