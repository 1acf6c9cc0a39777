package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"github.com/anonto42/medishare/backend/internal/repositories/memory"
)

func TestRequestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("the (medicine, requester) pair is unique", func(t *testing.T) {
		repo := memory.NewRequestRepository()
		if err := repo.CreateRequest(ctx, &models.RequestRecord{MedicineName: "Aspirin", RequesterID: 1}); err != nil {
			t.Fatal(err)
		}
		err := repo.CreateRequest(ctx, &models.RequestRecord{MedicineName: "Aspirin", RequesterID: 1})
		if !errors.Is(err, repositories.ErrDuplicate) {
			t.Fatalf("want ErrDuplicate, got %v", err)
		}
		if err := repo.CreateRequest(ctx, &models.RequestRecord{MedicineName: "aspirin", RequesterID: 1}); err != nil {
			t.Fatalf("names are case-sensitive keys: %v", err)
		}
	})

	t.Run("a missing pair is not found", func(t *testing.T) {
		repo := memory.NewRequestRepository()
		if _, err := repo.FindByItemAndRequester(ctx, "Aspirin", 1); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("all requests are newest first", func(t *testing.T) {
		repo := memory.NewRequestRepository()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, name := range []string{"a", "b", "c"} {
			r := &models.RequestRecord{MedicineName: name, RequesterID: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
			if err := repo.CreateRequest(ctx, r); err != nil {
				t.Fatal(err)
			}
		}
		all, _ := repo.GetAllRequests(ctx)
		if len(all) != 3 || all[0].MedicineName != "c" || all[2].MedicineName != "a" {
			t.Fatalf("unexpected order: %+v", all)
		}
	})
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository()
	same := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, msg := range []string{"one", "two"} {
		if err := repo.CreateNotification(ctx, &models.Notification{RecipientID: 1, Message: msg, CreatedAt: same}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := repo.GetByRecipientID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	// equal timestamps fall back to insertion order, newest first
	if len(list) != 2 || list[0].Message != "two" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestListingRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewListingRepository()
	for _, name := range []string{"Aspirin", "Ibuprofen", "Aspirin"} {
		if err := repo.CreateListing(ctx, &models.Listing{MedicineName: name, DonorID: 1}); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("findByName returns the earliest listing", func(t *testing.T) {
		all, _ := repo.GetAllListings(ctx)
		got, err := repo.FindByName(ctx, "Aspirin")
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != all[0].ID {
			t.Fatalf("want %s, got %s", all[0].ID.Hex(), got.ID.Hex())
		}
	})

	t.Run("deleteByName reports the count", func(t *testing.T) {
		n, err := repo.DeleteByName(ctx, "Aspirin")
		if err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Fatalf("want 2, got %d", n)
		}
		if _, err := repo.FindByName(ctx, "Aspirin"); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	if err := repo.CreateUser(ctx, &models.User{Name: "Dana", Email: "dana@example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateUser(ctx, &models.User{Name: "Dup", Email: "dana@example.com"}); !errors.Is(err, repositories.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
	users, err := repo.GetUsersByIDs(ctx, []uint{1, 42})
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].Name != "Dana" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
