package handlers

import (
	"net/http"

	"venuebook/middleware"
	"venuebook/services/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Service checkout.CheckoutService
}

func NewCheckoutHandler(s checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: s}
}

// PrepareCheckoutHandler handles GET /api/venues/:id/checkout. Each call
// issues a new booking reference.
func (h *CheckoutHandler) PrepareCheckoutHandler(c *gin.Context) {
	co, err := h.Service.PrepareCheckout(c.Request.Context(), c.Param("id"), middleware.IsMobile(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

// QRCodeHandler handles GET /api/venues/:id/checkout/qr.png?reference=.
func (h *CheckoutHandler) QRCodeHandler(c *gin.Context) {
	png, err := h.Service.RenderQR(c.Request.Context(), c.Param("id"), c.Query("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
