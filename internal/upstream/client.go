package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/signaidy/nexus-standalone/internal/config"
)

// Client proxies search requests to the external flights/hotels aggregator.
// Any transport or decode failure yields an empty result, never an error:
// the catalog degrades to "no offers" instead of failing the request.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	logger  *zap.Logger
}

// NewClient builds an aggregator client. cache may be nil.
func NewClient(cfg config.UpstreamConfig, cache *Cache, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		cache:   cache,
		logger:  logger,
	}
}

// Cities lists searchable cities.
func (c *Client) Cities(ctx context.Context) []City {
	var cities []City
	c.fetch(ctx, "/cities", nil, &cities)
	return cities
}

// OneWayFlights searches one-way offers between two cities on a date.
func (c *Client) OneWayFlights(ctx context.Context, from, to, date string) []FlightOffer {
	var offers []FlightOffer
	c.fetch(ctx, "/one-way-flights", url.Values{
		"from": {from},
		"to":   {to},
		"date": {date},
	}, &offers)
	return offers
}

// RoundTripFlights searches round-trip offers.
func (c *Client) RoundTripFlights(ctx context.Context, from, to, date, returnDate string) []FlightOffer {
	var offers []FlightOffer
	c.fetch(ctx, "/round-trip-flights", url.Values{
		"from":        {from},
		"to":          {to},
		"date":        {date},
		"return_date": {returnDate},
	}, &offers)
	return offers
}

// Flights lists all offers the aggregator currently carries.
func (c *Client) Flights(ctx context.Context) []FlightOffer {
	var offers []FlightOffer
	c.fetch(ctx, "/flights", nil, &offers)
	return offers
}

// Hotels searches hotels in a location for a date range.
func (c *Client) Hotels(ctx context.Context, location, checkIn, checkOut string) []HotelOffer {
	var offers []HotelOffer
	c.fetch(ctx, "/hotels", url.Values{
		"location":  {location},
		"check_in":  {checkIn},
		"check_out": {checkOut},
	}, &offers)
	return offers
}

// Rooms searches rooms in a hotel.
func (c *Client) Rooms(ctx context.Context, hotelID string, guests string) []RoomOffer {
	var offers []RoomOffer
	c.fetch(ctx, "/rooms", url.Values{
		"hotel_id": {hotelID},
		"guests":   {guests},
	}, &offers)
	return offers
}

// fetch GETs path with query params and decodes the JSON body into out,
// consulting the cache first. out must be a pointer to a slice.
func (c *Client) fetch(ctx context.Context, path string, params url.Values, out any) {
	if c.baseURL == "" {
		return
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	if c.cache.Get(ctx, target, out) {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Warn("upstream request build failed", zap.String("url", target), zap.Error(err))
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed", zap.String("url", target), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("upstream returned non-OK status",
			zap.String("url", target), zap.Int("status", resp.StatusCode))
		return
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("upstream response decode failed", zap.String("url", target), zap.Error(err))
		return
	}

	c.cache.Set(ctx, target, out)
}

func cacheKey(target string) string {
	return fmt.Sprintf("upstream:%s", target)
}
