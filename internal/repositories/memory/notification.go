package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	nextID        uint
	notifications []models.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateNotification(_ context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	notification.ID = r.nextID
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *NotificationRepository) GetByRecipientID(_ context.Context, recipientID uint) ([]models.Notification, error) {
	r.mu.RLock()
	out := []models.Notification{}
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
