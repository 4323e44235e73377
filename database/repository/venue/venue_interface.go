package venueRepo

import (
	"context"
	"errors"

	"venuebook/models"
)

// ErrVenueNotFound is returned for unknown or malformed venue ids.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines data access for the venue catalog.
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	GetAll(ctx context.Context) ([]models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	EnsureIndexes(ctx context.Context) error
}
