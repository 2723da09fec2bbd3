package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

// RequestTracingMiddleware tags each request with an id and classifies
// the calling client so request logs can separate the mobile app from
// the web build.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		ua := useragent.Parse(c.Request.UserAgent())
		platform := "web"
		switch {
		case ua.Mobile:
			platform = "mobile"
		case ua.Tablet:
			platform = "tablet"
		case ua.Bot:
			platform = "bot"
		}
		c.Set("client_platform", platform)

		c.Next()
	}
}
