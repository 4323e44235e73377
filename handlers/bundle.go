// File: venuebook/handlers/bundle.go
package handlers

import (
	"venuebook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Venue endpoints
	ListVenuesHandler  gin.HandlerFunc
	GetVenueHandler    gin.HandlerFunc
	CreateVenueHandler gin.HandlerFunc

	// Checkout endpoints
	PrepareCheckoutHandler gin.HandlerFunc
	QRCodeHandler          gin.HandlerFunc

	// Health may be nil when no monitor is running.
	Health *utils.HealthMonitor
}
