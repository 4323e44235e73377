package venue

import (
	"context"
	"fmt"
	"strings"

	venueRepo "venuebook/database/repository/venue"
	"venuebook/models"
	"venuebook/services/payment"

	"go.uber.org/zap"
)

// VenueService exposes the venue catalog.
type VenueService interface {
	ListVenues(ctx context.Context, category string) ([]models.VenueSummary, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	CreateVenue(ctx context.Context, input models.VenueInput) (*models.Venue, error)
	Summarize(v models.Venue) models.VenueSummary
}

// DefaultVenueService reads through Cache (optional) to Repo.
type DefaultVenueService struct {
	Repo       venueRepo.VenueRepository
	Cache      VenueCache
	Thresholds payment.Thresholds
	Logger     *zap.Logger
}

func NewVenueService(repo venueRepo.VenueRepository, cache VenueCache, thresholds payment.Thresholds, logger *zap.Logger) *DefaultVenueService {
	return &DefaultVenueService{
		Repo:       repo,
		Cache:      cache,
		Thresholds: thresholds,
		Logger:     logger,
	}
}

// ListVenues returns the catalog, optionally filtered by price category
// (case-insensitive). An unknown category is a ValidationError.
func (s *DefaultVenueService) ListVenues(ctx context.Context, category string) ([]models.VenueSummary, error) {
	want, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	venues, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	summaries := make([]models.VenueSummary, 0, len(venues))
	for _, v := range venues {
		sum := s.Summarize(v)
		if want != "" && sum.Category != string(want) {
			continue
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// GetVenue consults the cache first. Cache errors are logged and skipped.
func (s *DefaultVenueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.Logger.Warn("venue cache read failed", zap.String("venueId", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, v); err != nil {
			s.Logger.Warn("venue cache write failed", zap.String("venueId", id), zap.Error(err))
		}
	}
	return v, nil
}

func (s *DefaultVenueService) CreateVenue(ctx context.Context, input models.VenueInput) (*models.Venue, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, &payment.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.Price <= 0 {
		return nil, &payment.ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, &payment.ValidationError{Field: "phone", Reason: "must not be empty"}
	}
	if input.Capacity < 0 {
		return nil, &payment.ValidationError{Field: "capacity", Reason: "must not be negative"}
	}

	v := &models.Venue{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Phone:       strings.TrimSpace(input.Phone),
		Address:     input.Address,
		Capacity:    input.Capacity,
		Email:       strings.TrimSpace(input.Email),
		ImageURL:    input.ImageURL,
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, err
	}
	s.Logger.Info("venue created", zap.String("venueId", v.ID.Hex()), zap.String("name", v.Name))
	return v, nil
}

// Summarize decorates a venue with its price band and display price.
func (s *DefaultVenueService) Summarize(v models.Venue) models.VenueSummary {
	return models.VenueSummary{
		Venue:          v,
		Category:       string(s.Thresholds.Categorize(v.Price)),
		FormattedPrice: payment.FormatPrice(v.Price),
		Bookable:       v.Email != "",
	}
}

func parseCategory(raw string) (payment.Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "low":
		return payment.CategoryLow, nil
	case "middle":
		return payment.CategoryMiddle, nil
	case "high":
		return payment.CategoryHigh, nil
	default:
		return "", &payment.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", raw)}
	}
}
