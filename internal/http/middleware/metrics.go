package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portwave/portwave-backend/internal/observability"
)

func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(strings.ToUpper(c.Request.Method), route, c.Writer.Status(), time.Since(start))
	}
}
