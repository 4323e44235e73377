package handlers

import (
	"errors"
	"net/http"

	venueRepo "venuebook/database/repository/venue"
	"venuebook/services/checkout"
	"venuebook/services/payment"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *payment.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Validation failed", verr.Error())
	case errors.Is(err, venueRepo.ErrVenueNotFound):
		utils.JSONError(c, http.StatusNotFound, "Venue not found", err.Error())
	case errors.Is(err, checkout.ErrDirectPaymentRequired):
		utils.JSONError(c, http.StatusConflict, "Direct Payment Required", "Please contact the venue directly to make a booking.")
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
