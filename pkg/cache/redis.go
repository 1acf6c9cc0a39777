package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/go-redis/redis/v7"
)

// NotificationChannel is the pub/sub channel for one recipient.
func NotificationChannel(recipientID uint) string {
	return fmt.Sprintf("notifications:%d", recipientID)
}

// Publisher fans committed notifications out over redis pub/sub.
type Publisher struct {
	Client *redis.Client
}

// NewPublisher connects to addr and pings it.
func NewPublisher(addr, password string) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &Publisher{Client: client}, nil
}

func (p *Publisher) Publish(ctx context.Context, n models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.Client.WithContext(ctx).Publish(NotificationChannel(n.RecipientID), payload).Err()
}

func (p *Publisher) Close() error {
	return p.Client.Close()
}
