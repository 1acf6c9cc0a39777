package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
)

// RequestLedger records claims on listings. It is the only place that enforces
// one request per (medicine name, requester).
type RequestLedger interface {
	CreateRequest(ctx context.Context, medicineName string, requesterID uint, contact models.ContactInfo) (*models.RequestRecord, uint, error)
	ListAll(ctx context.Context) ([]models.RequestWithRequester, error)
	ListByUser(ctx context.Context, userID uint) ([]models.RequestRecord, error)
}

type requestLedger struct {
	requests repositories.RequestRepository
	catalog  CatalogService
	users    repositories.UserRepository
	now      func() time.Time
}

func NewRequestLedger(requests repositories.RequestRepository, catalog CatalogService, users repositories.UserRepository) RequestLedger {
	return &requestLedger{requests: requests, catalog: catalog, users: users, now: time.Now}
}

// CreateRequest returns the new record and the donor of the resolved listing.
func (l *requestLedger) CreateRequest(ctx context.Context, medicineName string, requesterID uint, contact models.ContactInfo) (*models.RequestRecord, uint, error) {
	if medicineName == "" {
		return nil, 0, validationError("medicinename is required")
	}

	_, err := l.requests.FindByItemAndRequester(ctx, medicineName, requesterID)
	switch {
	case err == nil:
		return nil, 0, ErrDuplicateRequest
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, 0, persistenceError("find request", err)
	}

	listing, err := l.catalog.FindByName(ctx, medicineName)
	if err != nil {
		return nil, 0, err
	}

	record := &models.RequestRecord{
		MedicineName: medicineName,
		RequesterID:  requesterID,
		Address:      contact.Address,
		Phone:        contact.Phone,
		Photo:        contact.Photo,
		Description:  contact.Description,
		Requested:    true,
		CreatedAt:    l.now(),
	}
	if err := l.requests.CreateRequest(ctx, record); err != nil {
		// lost the race against a concurrent request for the same pair
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, 0, ErrDuplicateRequest
		}
		return nil, 0, persistenceError("create request", err)
	}
	return record, listing.DonorID, nil
}

func (l *requestLedger) ListAll(ctx context.Context) ([]models.RequestWithRequester, error) {
	records, err := l.requests.GetAllRequests(ctx)
	if err != nil {
		return nil, persistenceError("list requests", err)
	}

	ids := make([]uint, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.RequesterID)
	}
	users, err := l.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, persistenceError("resolve requesters", err)
	}
	byID := make(map[uint]models.UserCompact, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].ToCompact()
	}

	out := make([]models.RequestWithRequester, 0, len(records))
	for _, r := range records {
		row := models.RequestWithRequester{RequestRecord: r}
		if u, ok := byID[r.RequesterID]; ok {
			u := u
			row.Requester = &u
		}
		out = append(out, row)
	}
	return out, nil
}

func (l *requestLedger) ListByUser(ctx context.Context, userID uint) ([]models.RequestRecord, error) {
	records, err := l.requests.GetRequestsByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError(fmt.Sprintf("list requests of user %d", userID), err)
	}
	return records, nil
}
