package repositories

import (
	"context"

	"github.com/anonto42/medishare/backend/internal/models"
	"gorm.io/gorm"
)

// RequestRepository stores request records. CreateRequest returns ErrDuplicate
// when the (medicine name, requester) pair already exists.
type RequestRepository interface {
	CreateRequest(ctx context.Context, request *models.RequestRecord) error
	FindByItemAndRequester(ctx context.Context, medicineName string, requesterID uint) (*models.RequestRecord, error)
	GetAllRequests(ctx context.Context) ([]models.RequestRecord, error)
	GetRequestsByUser(ctx context.Context, requesterID uint) ([]models.RequestRecord, error)
}

type postgresRequestRepository struct {
	db *gorm.DB
}

func NewPostgresRequestRepository(db *gorm.DB) RequestRepository {
	return &postgresRequestRepository{db: db}
}

func (r *postgresRequestRepository) CreateRequest(ctx context.Context, request *models.RequestRecord) error {
	return translate(r.db.WithContext(ctx).Create(request).Error)
}

func (r *postgresRequestRepository) FindByItemAndRequester(ctx context.Context, medicineName string, requesterID uint) (*models.RequestRecord, error) {
	var request models.RequestRecord
	err := r.db.WithContext(ctx).
		Where("medicine_name = ? AND requester_id = ?", medicineName, requesterID).
		First(&request).Error
	if err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

func (r *postgresRequestRepository) GetAllRequests(ctx context.Context) ([]models.RequestRecord, error) {
	requests := []models.RequestRecord{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&requests).Error; err != nil {
		return nil, translate(err)
	}
	return requests, nil
}

func (r *postgresRequestRepository) GetRequestsByUser(ctx context.Context, requesterID uint) ([]models.RequestRecord, error) {
	requests := []models.RequestRecord{}
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, translate(err)
	}
	return requests, nil
}
