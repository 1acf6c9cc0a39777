package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories/memory"
	"github.com/anonto42/medishare/backend/internal/services"
)

type recordingPublisher struct {
	published []models.Notification
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, n models.Notification) error {
	p.published = append(p.published, n)
	return p.err
}

func TestNotificationOutbox(t *testing.T) {
	ctx := context.Background()

	t.Run("it lists a user's notifications newest first", func(t *testing.T) {
		outbox := services.NewNotificationOutbox(memory.NewNotificationRepository(), nil)
		for _, msg := range []string{"first", "second", "third"} {
			if _, err := outbox.Append(ctx, 7, msg); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := outbox.Append(ctx, 8, "someone else"); err != nil {
			t.Fatal(err)
		}

		list, err := outbox.ListForUser(ctx, 7)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 3 {
			t.Fatalf("want 3 notifications, got %d", len(list))
		}
		for i, want := range []string{"third", "second", "first"} {
			if list[i].Message != want {
				t.Errorf("position %d: want %q, got %q", i, want, list[i].Message)
			}
		}
	})

	t.Run("an empty inbox is an empty list", func(t *testing.T) {
		outbox := services.NewNotificationOutbox(memory.NewNotificationRepository(), nil)
		list, err := outbox.ListForUser(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("want empty slice, got %#v", list)
		}
	})

	t.Run("it rejects an empty message", func(t *testing.T) {
		outbox := services.NewNotificationOutbox(memory.NewNotificationRepository(), nil)
		if _, err := outbox.Append(ctx, 1, "  "); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("want ErrValidation, got %v", err)
		}
	})

	t.Run("it publishes committed notifications", func(t *testing.T) {
		pub := &recordingPublisher{}
		outbox := services.NewNotificationOutbox(memory.NewNotificationRepository(), pub)
		id, err := outbox.Append(ctx, 3, "hello")
		if err != nil {
			t.Fatal(err)
		}
		if len(pub.published) != 1 || pub.published[0].ID != id || pub.published[0].RecipientID != 3 {
			t.Fatalf("unexpected publications: %+v", pub.published)
		}
	})

	t.Run("a publish failure does not fail the append", func(t *testing.T) {
		repo := memory.NewNotificationRepository()
		outbox := services.NewNotificationOutbox(repo, &recordingPublisher{err: errors.New("redis down")})
		if _, err := outbox.Append(ctx, 3, "hello"); err != nil {
			t.Fatalf("append should succeed, got %v", err)
		}
		list, _ := repo.GetByRecipientID(ctx, 3)
		if len(list) != 1 {
			t.Fatalf("notification should be stored, got %d", len(list))
		}
	})
}
