package repositories

import (
	"context"

	"github.com/anonto42/medishare/backend/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.FeedbackRecord) error
	GetByRatedUserID(ctx context.Context, ratedUserID uint) ([]models.FeedbackRecord, error)
}

type postgresFeedbackRepository struct {
	db *gorm.DB
}

func NewPostgresFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &postgresFeedbackRepository{db: db}
}

func (r *postgresFeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.FeedbackRecord) error {
	return translate(r.db.WithContext(ctx).Create(feedback).Error)
}

func (r *postgresFeedbackRepository) GetByRatedUserID(ctx context.Context, ratedUserID uint) ([]models.FeedbackRecord, error) {
	feedback := []models.FeedbackRecord{}
	err := r.db.WithContext(ctx).
		Where("rated_user_id = ?", ratedUserID).
		Order("id ASC").
		Find(&feedback).Error
	if err != nil {
		return nil, translate(err)
	}
	return feedback, nil
}
