package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// marshalKeys returns the top-level keys of a value's JSON encoding.
func marshalKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal %T: %v", v, err)
	}
	return keys
}

func TestResponsesUseWireFieldNames(t *testing.T) {
	tests := []struct {
		name string
		resp any
		want []string
	}{
		{"flight", NewFlightResponse(&domain.Flight{FlightNumber: "AV123"}),
			[]string{"user_id", "flight_number", "departure_location", "arrival_location"}},
		{"reservation", NewReservationResponse(&domain.Reservation{Hotel: "Nexus Inn"}),
			[]string{"user_id", "hotel_id", "room_type", "reservation_number", "total_price", "bed_amount"}},
		{"provider", NewProviderResponse(&domain.Provider{ProviderName: "Avianca"}),
			[]string{"provider_name", "provider_url", "percentage_discount", "gains_flights", "gains_hotel"}},
		{"comment", NewCommentResponse(&domain.Comment{Comment: "great trip"}),
			[]string{"user_id", "comment", "rating", "created_at"}},
		{"aboutus", NewAboutUsResponse(&domain.AboutUs{Title: "About"}),
			[]string{"title", "body", "image_url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := marshalKeys(t, tt.resp)
			for _, want := range tt.want {
				if _, ok := keys[want]; !ok {
					t.Errorf("%s response missing key %q", tt.name, want)
				}
			}
			for key := range keys {
				if key != strings.ToLower(key) {
					t.Errorf("%s response exposes struct field name %q", tt.name, key)
				}
			}
		})
	}
}

func TestResponseConstructorsHandleNil(t *testing.T) {
	if NewFlightResponse(nil) != nil {
		t.Error("NewFlightResponse(nil) should be nil")
	}
	if NewReservationResponse(nil) != nil {
		t.Error("NewReservationResponse(nil) should be nil")
	}
	if NewProviderResponse(nil) != nil {
		t.Error("NewProviderResponse(nil) should be nil")
	}
	if NewCommentResponse(nil) != nil {
		t.Error("NewCommentResponse(nil) should be nil")
	}
	if NewAboutUsResponse(nil) != nil {
		t.Error("NewAboutUsResponse(nil) should be nil")
	}
	if got := NewFlightResponses(nil); len(got) != 0 {
		t.Errorf("NewFlightResponses(nil) = %v, want empty", got)
	}
}
