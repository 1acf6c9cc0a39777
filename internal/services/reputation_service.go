package services

import (
	"context"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
)

// ReputationService folds feedback into ratings and assembles profiles.
type ReputationService interface {
	GetProfile(ctx context.Context, userID uint) (*models.ProfileView, error)
	SubmitFeedback(ctx context.Context, raterID, ratedUserID uint, rating int, comment string) (*models.FeedbackRecord, error)
}

type reputationService struct {
	feedback repositories.FeedbackRepository
	accounts AccountService
	catalog  CatalogService
	ledger   RequestLedger
}

func NewReputationService(feedback repositories.FeedbackRepository, accounts AccountService, catalog CatalogService, ledger RequestLedger) ReputationService {
	return &reputationService{feedback: feedback, accounts: accounts, catalog: catalog, ledger: ledger}
}

// MeanRating is the arithmetic mean of the ratings, or 0 with no feedback.
func MeanRating(records []models.FeedbackRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Rating
	}
	return float64(sum) / float64(len(records))
}

func (s *reputationService) GetProfile(ctx context.Context, userID uint) (*models.ProfileView, error) {
	account, err := s.accounts.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.feedback.GetByRatedUserID(ctx, userID)
	if err != nil {
		return nil, persistenceError("list feedback", err)
	}
	entries := make([]models.FeedbackEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, models.FeedbackEntry{Rating: r.Rating, Comment: r.Comment})
	}

	donated, err := s.catalog.FindByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	donatedNames := make([]string, 0, len(donated))
	for _, l := range donated {
		donatedNames = append(donatedNames, l.MedicineName)
	}

	requested, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	requestedNames := make([]string, 0, len(requested))
	for _, r := range requested {
		requestedNames = append(requestedNames, r.MedicineName)
	}

	return &models.ProfileView{
		ID:                 account.ID,
		Name:               account.Name,
		Address:            account.Address,
		Phone:              account.Phone,
		Rating:             MeanRating(records),
		Feedback:           entries,
		DonatedMedicines:   donatedNames,
		RequestedMedicines: requestedNames,
	}, nil
}

func (s *reputationService) SubmitFeedback(ctx context.Context, raterID, ratedUserID uint, rating int, comment string) (*models.FeedbackRecord, error) {
	if ratedUserID == 0 {
		return nil, validationError("ratedUserId is required")
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, validationError("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	if _, err := s.accounts.GetAccount(ctx, ratedUserID); err != nil {
		return nil, err
	}

	record := &models.FeedbackRecord{
		RaterID:     raterID,
		RatedUserID: ratedUserID,
		Rating:      rating,
		Comment:     comment,
	}
	if err := s.feedback.CreateFeedback(ctx, record); err != nil {
		return nil, persistenceError("create feedback", err)
	}
	return record, nil
}
