package middleware

import (
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the origin guard followed by the gin-contrib/cors handler.
// Requests without an Origin header pass untouched. Origins outside the
// allow-list are rejected through ErrorHandler with 403.
func CORS(allowedOrigins []string) []gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	guard := func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if _, ok := allowed[origin]; !ok {
			Abort(c, apperr.Forbidden("CORS policy: Origin "+origin+" not allowed"))
			return
		}
		c.Next()
	}

	return []gin.HandlerFunc{
		guard,
		cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	}
}
