package services

import (
	"context"
	"strings"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// NotificationPublisher pushes a committed notification to live consumers.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification models.Notification) error
}

// NotificationOutbox is the append-only per-user message log.
type NotificationOutbox interface {
	Append(ctx context.Context, recipientID uint, message string) (uint, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Notification, error)
}

type notificationOutbox struct {
	repo      repositories.NotificationRepository
	publisher NotificationPublisher
	now       func() time.Time
}

// NewNotificationOutbox builds the outbox. publisher may be nil.
func NewNotificationOutbox(repo repositories.NotificationRepository, publisher NotificationPublisher) NotificationOutbox {
	return &notificationOutbox{repo: repo, publisher: publisher, now: time.Now}
}

func (o *notificationOutbox) Append(ctx context.Context, recipientID uint, message string) (uint, error) {
	if strings.TrimSpace(message) == "" {
		return 0, validationError("message must not be empty")
	}
	n := &models.Notification{
		RecipientID: recipientID,
		Message:     message,
		CreatedAt:   o.now(),
	}
	if err := o.repo.CreateNotification(ctx, n); err != nil {
		return 0, persistenceError("append notification", err)
	}

	// Publishing is fan-out only; the stored row is the source of truth.
	if o.publisher != nil {
		if err := o.publisher.Publish(ctx, *n); err != nil {
			logrus.WithFields(logrus.Fields{
				"notification_id": n.ID,
				"recipient_id":    recipientID,
			}).WithError(err).Warn("notification publish failed")
		}
	}
	return n.ID, nil
}

func (o *notificationOutbox) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	list, err := o.repo.GetByRecipientID(ctx, userID)
	if err != nil {
		return nil, persistenceError("list notifications", err)
	}
	return list, nil
}
