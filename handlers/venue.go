package handlers

import (
	"net/http"

	"venuebook/models"
	"venuebook/services/venue"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
)

// VenueHandler serves the venue catalog.
type VenueHandler struct {
	Service venue.VenueService
}

func NewVenueHandler(s venue.VenueService) *VenueHandler {
	return &VenueHandler{Service: s}
}

// ListVenuesHandler handles GET /api/venues?category=low|middle|high.
func (h *VenueHandler) ListVenuesHandler(c *gin.Context) {
	venues, err := h.Service.ListVenues(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// GetVenueHandler handles GET /api/venues/:id.
func (h *VenueHandler) GetVenueHandler(c *gin.Context) {
	v, err := h.Service.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Service.Summarize(*v))
}

// CreateVenueHandler handles POST /api/venues.
func (h *VenueHandler) CreateVenueHandler(c *gin.Context) {
	var input models.VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	v, err := h.Service.CreateVenue(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.Service.Summarize(*v))
}
