package routes

import (
	"net/http"
	"time"

	"venuebook/handlers"
	"venuebook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers catalog and checkout endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.ListVenuesHandler)
		api.POST("", hb.CreateVenueHandler)
		api.GET("/:id", hb.GetVenueHandler)

		checkout := api.Group("/:id/checkout")
		checkout.Use(middleware.DeviceMiddleware())
		checkout.GET("", hb.PrepareCheckoutHandler)
		checkout.GET("/qr.png", hb.QRCodeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok", "message": "Hi, I'm venuebook"}
		if hb.Health != nil {
			status := hb.Health.Status()
			body["services"] = status
			if !status.Mongo {
				body["status"] = "degraded"
			}
		}
		c.JSON(http.StatusOK, body)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVenueRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
