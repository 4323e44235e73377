package middleware

import (
	"strconv"

	"venuebook/services/payment"

	"github.com/gin-gonic/gin"
)

// IsMobileKey is the gin context key holding the caller's form factor.
const IsMobileKey = "isMobile"

// DeviceMiddleware classifies the caller as mobile from its User-Agent.
// A "mobile" query parameter overrides the guess.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := payment.IsMobileUserAgent(c.GetHeader("User-Agent"))
		if raw := c.Query("mobile"); raw != "" {
			if v, err := strconv.ParseBool(raw); err == nil {
				mobile = v
			}
		}
		c.Set(IsMobileKey, mobile)
		c.Next()
	}
}

// IsMobile reads the flag set by DeviceMiddleware.
func IsMobile(c *gin.Context) bool {
	return c.GetBool(IsMobileKey)
}
