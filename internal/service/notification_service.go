package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/events"
)

// Mailer is a fire-and-forget outbound notifier. A failing send never
// fails the request that triggered it.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// RecipientLookup resolves the email address for the user an event targets.
type RecipientLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationService turns booking events into outbound notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     Mailer
	users      RecipientLookup
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service. mailer may be nil, in which
// case events are only logged.
func NewNotificationService(dispatcher events.Dispatcher, mailer Mailer, users RecipientLookup, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		users:      users,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to booking events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventFlightPurchased, n.handleFlightPurchased)
	n.dispatcher.Subscribe(events.EventFlightDeactivated, n.handleFlightDeactivated)
	n.dispatcher.Subscribe(events.EventReservationCreated, n.handleReservationCreated)
	n.dispatcher.Subscribe(events.EventReservationCancelled, n.handleReservationCancelled)
}

func (n *NotificationService) handleFlightPurchased(ctx context.Context, event events.Event) error {
	n.logger.Info("FlightPurchased", zap.Int64("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.send(ctx, event, "Your flight purchase")
	return nil
}

func (n *NotificationService) handleFlightDeactivated(ctx context.Context, event events.Event) error {
	n.logger.Info("FlightDeactivated", zap.Any("payload", event.Payload))
	n.send(ctx, event, "Your flight was cancelled")
	return nil
}

func (n *NotificationService) handleReservationCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ReservationCreated", zap.Int64("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.send(ctx, event, "Your hotel reservation")
	return nil
}

func (n *NotificationService) handleReservationCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("ReservationCancelled", zap.Any("payload", event.Payload))
	n.send(ctx, event, "Your reservation was cancelled")
	return nil
}

func (n *NotificationService) send(ctx context.Context, event events.Event, subject string) {
	if n.mailer == nil {
		return
	}
	recipient := n.resolveRecipient(ctx, event)
	if recipient == "" {
		n.logger.Info("no recipient for event, skipping notification",
			zap.String("event", string(event.Type)), zap.Int64("user_id", event.UserID))
		return
	}
	body := fmt.Sprintf("from=%s event=%s id=%s", n.cfg.EmailFrom, event.Type, event.ID)
	if err := n.mailer.Send(recipient, subject, body); err != nil {
		n.logger.Warn("notification send failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}

func (n *NotificationService) resolveRecipient(ctx context.Context, event events.Event) string {
	if n.users == nil || event.UserID == 0 {
		return ""
	}
	user, err := n.users.GetByID(ctx, event.UserID)
	if err != nil {
		n.logger.Warn("recipient lookup failed",
			zap.Int64("user_id", event.UserID), zap.Error(err))
		return ""
	}
	return user.Email
}

// LogMailer is the default Mailer: it logs instead of delivering.
type LogMailer struct {
	Logger *zap.Logger
}

// Send logs the outbound message.
func (m *LogMailer) Send(recipient, subject, body string) error {
	m.Logger.Info("outbound email",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
