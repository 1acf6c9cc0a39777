package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/anonto42/medishare/backend/internal/repositories"
)

const (
	unknownDonorID   = "Unknown ID"
	unknownDonorName = "Unknown Donor"
)

// CatalogService is the Catalog Store: donated listings keyed by medicine name.
type CatalogService interface {
	Donate(ctx context.Context, donorID uint, req models.DonateRequest) (*models.Listing, error)
	FindByName(ctx context.Context, name string) (*models.Listing, error)
	Search(ctx context.Context, query string) ([]string, error)
	FindByAddress(ctx context.Context, address string) ([]models.Listing, error)
	FindByDonor(ctx context.Context, donorID uint) ([]models.Listing, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	Home(ctx context.Context) ([]models.HomeListing, error)
}

type catalogService struct {
	listings repositories.ListingRepository
	users    repositories.UserRepository
}

func NewCatalogService(listings repositories.ListingRepository, users repositories.UserRepository) CatalogService {
	return &catalogService{listings: listings, users: users}
}

func (s *catalogService) Donate(ctx context.Context, donorID uint, req models.DonateRequest) (*models.Listing, error) {
	fields := []struct{ name, value string }{
		{"medicinename", req.MedicineName},
		{"exp_date", req.ExpiryDate},
		{"address", req.Address},
		{"phone", req.Phone},
		{"photo", req.Photo},
		{"description", req.Description},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, validationError("all fields are required, missing: %s", strings.Join(missing, ", "))
	}
	expiry, err := ParseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	// Values are stored as sent; the name is the lookup key.
	listing := &models.Listing{
		MedicineName: req.MedicineName,
		ExpiryDate:   expiry,
		Address:      req.Address,
		Phone:        req.Phone,
		Photo:        req.Photo,
		Description:  req.Description,
		DonorID:      donorID,
	}
	if err := s.listings.CreateListing(ctx, listing); err != nil {
		return nil, persistenceError("create listing", err)
	}
	return listing, nil
}

// ParseExpiryDate accepts a calendar date (2006-01-02) or an RFC3339 timestamp.
func ParseExpiryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, validationError("exp_date must be YYYY-MM-DD or RFC3339, got %q", raw)
}

func (s *catalogService) FindByName(ctx context.Context, name string) (*models.Listing, error) {
	listing, err := s.listings.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: medicine %s", ErrNotFound, name)
		}
		return nil, persistenceError("find listing", err)
	}
	return listing, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]string, error) {
	names, err := s.listings.SearchNames(ctx, query)
	if err != nil {
		return nil, persistenceError("search listings", err)
	}
	return names, nil
}

func (s *catalogService) FindByAddress(ctx context.Context, address string) ([]models.Listing, error) {
	listings, err := s.listings.FindByAddress(ctx, address)
	if err != nil {
		return nil, persistenceError("find listings by address", err)
	}
	return listings, nil
}

func (s *catalogService) FindByDonor(ctx context.Context, donorID uint) ([]models.Listing, error) {
	listings, err := s.listings.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, persistenceError("find listings by donor", err)
	}
	return listings, nil
}

// DeleteByName removes every listing carrying this name, whoever donated it.
func (s *catalogService) DeleteByName(ctx context.Context, name string) (int64, error) {
	n, err := s.listings.DeleteByName(ctx, name)
	if err != nil {
		return 0, persistenceError("delete listings", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: medicine %s", ErrNotFound, name)
	}
	return n, nil
}

func (s *catalogService) Home(ctx context.Context) ([]models.HomeListing, error) {
	listings, err := s.listings.GetAllListings(ctx)
	if err != nil {
		return nil, persistenceError("list listings", err)
	}

	ids := make([]uint, 0, len(listings))
	seen := map[uint]bool{}
	for _, l := range listings {
		if !seen[l.DonorID] {
			seen[l.DonorID] = true
			ids = append(ids, l.DonorID)
		}
	}
	donors, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, persistenceError("resolve donors", err)
	}
	names := make(map[uint]string, len(donors))
	for _, d := range donors {
		names[d.ID] = d.Name
	}

	home := make([]models.HomeListing, 0, len(listings))
	for _, l := range listings {
		item := models.HomeListing{
			DonorID:      unknownDonorID,
			DonorName:    unknownDonorName,
			MedicineName: l.MedicineName,
			ExpiryDate:   l.ExpiryDate,
			Address:      l.Address,
			Phone:        l.Phone,
			Photo:        l.Photo,
			Description:  l.Description,
		}
		if name, ok := names[l.DonorID]; ok {
			item.DonorID = strconv.FormatUint(uint64(l.DonorID), 10)
			item.DonorName = name
		}
		home = append(home, item)
	}
	return home, nil
}
