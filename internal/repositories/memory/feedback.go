package memory

import (
	"context"
	"sync"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
)

type FeedbackRepository struct {
	mu       sync.RWMutex
	nextID   uint
	feedback []models.FeedbackRecord
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) CreateFeedback(_ context.Context, feedback *models.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	feedback.ID = r.nextID
	feedback.CreatedAt = time.Now()
	r.feedback = append(r.feedback, *feedback)
	return nil
}

func (r *FeedbackRepository) GetByRatedUserID(_ context.Context, ratedUserID uint) ([]models.FeedbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.FeedbackRecord{}
	for _, f := range r.feedback {
		if f.RatedUserID == ratedUserID {
			out = append(out, f)
		}
	}
	return out, nil
}
