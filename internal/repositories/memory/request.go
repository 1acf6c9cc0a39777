package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
)

type requestKey struct {
	name        string
	requesterID uint
}

type RequestRepository struct {
	mu       sync.RWMutex
	nextID   uint
	requests []models.RequestRecord
	index    map[requestKey]struct{}
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{index: map[requestKey]struct{}{}}
}

// CreateRequest checks the pair and inserts under one lock, so concurrent
// callers see exactly one success.
func (r *RequestRepository) CreateRequest(_ context.Context, request *models.RequestRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := requestKey{request.MedicineName, request.RequesterID}
	if _, ok := r.index[key]; ok {
		return repositories.ErrDuplicate
	}
	r.nextID++
	request.ID = r.nextID
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	r.index[key] = struct{}{}
	r.requests = append(r.requests, *request)
	return nil
}

func (r *RequestRepository) FindByItemAndRequester(_ context.Context, medicineName string, requesterID uint) (*models.RequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.MedicineName == medicineName && req.RequesterID == requesterID {
			found := req
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *RequestRepository) GetAllRequests(_ context.Context) ([]models.RequestRecord, error) {
	r.mu.RLock()
	out := append([]models.RequestRecord{}, r.requests...)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *RequestRepository) GetRequestsByUser(_ context.Context, requesterID uint) ([]models.RequestRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.RequestRecord{}
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}
