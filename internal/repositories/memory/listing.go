package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingRepository struct {
	mu       sync.RWMutex
	listings []models.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) CreateListing(_ context.Context, listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing.ID = primitive.NewObjectID()
	listing.CreatedAt = time.Now()
	r.listings = append(r.listings, *listing)
	return nil
}

func (r *ListingRepository) FindByName(_ context.Context, name string) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listings {
		if l.MedicineName == name {
			found := l
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *ListingRepository) SearchNames(_ context.Context, query string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	names := []string{}
	for _, l := range r.listings {
		if strings.Contains(strings.ToLower(l.MedicineName), q) {
			names = append(names, l.MedicineName)
		}
	}
	return names, nil
}

func (r *ListingRepository) FindByAddress(_ context.Context, address string) ([]models.Listing, error) {
	return r.filter(func(l models.Listing) bool { return l.Address == address }), nil
}

func (r *ListingRepository) FindByDonor(_ context.Context, donorID uint) ([]models.Listing, error) {
	return r.filter(func(l models.Listing) bool { return l.DonorID == donorID }), nil
}

func (r *ListingRepository) GetAllListings(_ context.Context) ([]models.Listing, error) {
	return r.filter(func(models.Listing) bool { return true }), nil
}

func (r *ListingRepository) DeleteByName(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.listings[:0]
	var deleted int64
	for _, l := range r.listings {
		if l.MedicineName == name {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	r.listings = kept
	return deleted, nil
}

func (r *ListingRepository) filter(keep func(models.Listing) bool) []models.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Listing{}
	for _, l := range r.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
