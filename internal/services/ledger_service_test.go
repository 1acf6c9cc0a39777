package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/medishare/backend/internal/services"
)

func TestRequestLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("createRequest returns the donor of the resolved listing", func(t *testing.T) {
		f := newFixture(t)
		donor := f.signup(t, "Dana", "dana@example.com")
		requester := f.signup(t, "Rui", "rui@example.com")
		f.donate(t, donor.ID, "Aspirin", "12 Elm St")

		_, donorID, err := f.ledger.CreateRequest(ctx, "Aspirin", requester.ID, contact)
		if err != nil {
			t.Fatal(err)
		}
		if donorID != donor.ID {
			t.Fatalf("want donor %d, got %d", donor.ID, donorID)
		}
	})

	t.Run("an empty item name is a validation error", func(t *testing.T) {
		f := newFixture(t)
		if _, _, err := f.ledger.CreateRequest(ctx, "", 1, contact); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("want ErrValidation, got %v", err)
		}
	})

	t.Run("listAll attaches requester display info", func(t *testing.T) {
		f := newFixture(t)
		donor := f.signup(t, "Dana", "dana@example.com")
		requester := f.signup(t, "Rui", "rui@example.com")
		f.donate(t, donor.ID, "Aspirin", "12 Elm St")
		if _, _, err := f.ledger.CreateRequest(ctx, "Aspirin", requester.ID, contact); err != nil {
			t.Fatal(err)
		}

		all, err := f.ledger.ListAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 1 {
			t.Fatalf("want 1 request, got %d", len(all))
		}
		got := all[0].Requester
		if got == nil || got.ID != requester.ID || got.Name != "Rui" || got.Email != "rui@example.com" {
			t.Fatalf("unexpected requester: %+v", got)
		}
	})

	t.Run("listByUser returns only that user's requests", func(t *testing.T) {
		f := newFixture(t)
		donor := f.signup(t, "Dana", "dana@example.com")
		r1 := f.signup(t, "Rui", "rui@example.com")
		r2 := f.signup(t, "Sam", "sam@example.com")
		f.donate(t, donor.ID, "Aspirin", "12 Elm St")
		f.donate(t, donor.ID, "Paracetamol", "12 Elm St")
		for _, name := range []string{"Aspirin", "Paracetamol"} {
			if _, _, err := f.ledger.CreateRequest(ctx, name, r1.ID, contact); err != nil {
				t.Fatal(err)
			}
		}
		if _, _, err := f.ledger.CreateRequest(ctx, "Aspirin", r2.ID, contact); err != nil {
			t.Fatal(err)
		}

		mine, err := f.ledger.ListByUser(ctx, r1.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(mine) != 2 {
			t.Fatalf("want 2 requests, got %d", len(mine))
		}
		for _, r := range mine {
			if r.RequesterID != r1.ID {
				t.Errorf("foreign request leaked: %+v", r)
			}
		}
	})
}
