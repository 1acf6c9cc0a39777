package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories/memory"
	"github.com/anonto42/medishare/backend/internal/services"
)

type fixture struct {
	store      *memory.Store
	accounts   services.AccountService
	catalog    services.CatalogService
	ledger     services.RequestLedger
	outbox     services.NotificationOutbox
	workflow   services.MatchingWorkflow
	reputation services.ReputationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{store: store}
	f.accounts = services.NewAccountService(store.Users, "test-secret", time.Hour, nil)
	f.catalog = services.NewCatalogService(store.Listings, store.Users)
	f.ledger = services.NewRequestLedger(store.Requests, f.catalog, store.Users)
	f.outbox = services.NewNotificationOutbox(store.Notifications, nil)
	f.workflow = services.NewMatchingWorkflow(f.ledger, f.outbox)
	f.reputation = services.NewReputationService(store.Feedback, f.accounts, f.catalog, f.ledger)
	return f
}

func (f *fixture) signup(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := f.accounts.Signup(context.Background(), models.SignupRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		Address:  "1 Main St",
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return u
}

func (f *fixture) donate(t *testing.T, donorID uint, name, address string) *models.Listing {
	t.Helper()
	l, err := f.catalog.Donate(context.Background(), donorID, donation(name, address))
	if err != nil {
		t.Fatalf("donate %s: %v", name, err)
	}
	return l
}

func donation(name, address string) models.DonateRequest {
	return models.DonateRequest{
		MedicineName: name,
		ExpiryDate:   "2030-01-31",
		Address:      address,
		Phone:        "555-0101",
		Photo:        "photos/" + name + ".jpg",
		Description:  "sealed box",
	}
}
