// models/venue.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Venue is a bookable location in the catalog. Price is in PKR per booking
// and Phone is the wallet number payments are sent to.
type Venue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Phone       string             `bson:"phone" json:"phone"`
	Address     string             `bson:"address" json:"address"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VenueSummary is a catalog entry decorated for display.
type VenueSummary struct {
	Venue
	Category       string `json:"category"`
	FormattedPrice string `json:"formattedPrice"`
	// Bookable is false for venues without a contact email; those are view-only.
	Bookable bool `json:"bookable"`
}

// VenueInput is the payload accepted when creating a venue.
type VenueInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Address     string  `json:"address"`
	Capacity    int     `json:"capacity"`
	Email       string  `json:"email"`
	ImageURL    string  `json:"imageUrl"`
}
