package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventFlightPurchased, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventFlightPurchased,
		UserID:    7,
		Timestamp: time.Now(),
		Payload:   FlightPurchasedPayload{FlightID: 3, FlightNumber: "AV123", Tickets: 2},
	}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("got %d events, want 1", len(received))
	}
	if received[0].ID != "evt-1" || received[0].UserID != 7 {
		t.Fatalf("event fields did not survive dispatch: %+v", received[0])
	}
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventReservationCreated, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventFlightDeactivated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if called {
		t.Fatal("handler for another event type should not run")
	}
}

func TestDispatcherFailingHandlerDoesNotBlockOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventReservationCancelled, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("mailer down")
	})
	dispatcher.Subscribe(EventReservationCancelled, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventReservationCancelled}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("remaining handlers should still run, got %v", order)
	}
}
