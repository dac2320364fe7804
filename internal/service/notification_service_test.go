package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/events"
)

type recordingMailer struct {
	recipients []string
	subjects   []string
	err        error
}

func (m *recordingMailer) Send(recipient, subject, _ string) error {
	m.recipients = append(m.recipients, recipient)
	m.subjects = append(m.subjects, subject)
	return m.err
}

type fakeRecipientLookup struct {
	users map[int64]*domain.User
	err   error
}

func (f *fakeRecipientLookup) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("no such user")
	}
	return user, nil
}

func TestNotificationServiceMailsOnBookingEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &recordingMailer{}
	lookup := &fakeRecipientLookup{users: map[int64]*domain.User{
		7: {ID: 7, Email: "traveler@example.com"},
	}}
	svc := NewNotificationService(dispatcher, mailer, lookup, zap.NewNop(), config.NotificationConfig{EmailFrom: "nexus@example.com"})
	svc.RegisterHandlers()

	ctx := context.Background()
	for _, eventType := range []events.EventType{
		events.EventFlightPurchased,
		events.EventFlightDeactivated,
		events.EventReservationCreated,
		events.EventReservationCancelled,
	} {
		if err := dispatcher.Publish(ctx, events.Event{ID: "evt", Type: eventType, UserID: 7}); err != nil {
			t.Fatalf("Publish(%s): %v", eventType, err)
		}
	}

	if len(mailer.subjects) != 4 {
		t.Fatalf("got %d notifications, want 4", len(mailer.subjects))
	}
	for i, recipient := range mailer.recipients {
		if recipient != "traveler@example.com" {
			t.Fatalf("notification %d went to %q, want the user's address", i, recipient)
		}
	}
}

func TestNotificationServiceSkipsEventsWithoutRecipient(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &recordingMailer{}
	lookup := &fakeRecipientLookup{users: map[int64]*domain.User{}}
	svc := NewNotificationService(dispatcher, mailer, lookup, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	// No user attached to the event.
	if err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventFlightPurchased}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	// User attached but unknown to the lookup.
	if err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventFlightPurchased, UserID: 99}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(mailer.subjects) != 0 {
		t.Fatalf("got %d notifications, want none without a resolvable recipient", len(mailer.subjects))
	}
}

func TestNotificationServiceSwallowsMailerFailures(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &recordingMailer{err: errors.New("smtp down")}
	lookup := &fakeRecipientLookup{users: map[int64]*domain.User{
		1: {ID: 1, Email: "someone@example.com"},
	}}
	svc := NewNotificationService(dispatcher, mailer, lookup, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	if err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventFlightPurchased, UserID: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(mailer.subjects) != 1 {
		t.Fatal("a failing mailer should still have been invoked")
	}
}

func TestNotificationServiceWithoutMailerOnlyLogs(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(dispatcher, nil, nil, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	if err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventReservationCreated, UserID: 1}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
