package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/bella-carwash/bella-api/internal/infrastructure/ratelimit"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimit enforces the per client IP allowance kept in store. onLimited is
// called for every rejected request and may be nil. A failing store lets the
// request through; the failure is logged at most once per minute.
func RateLimit(store ratelimit.Store, onLimited func(), log logger.Logger) gin.HandlerFunc {
	storeDown := &rate.Sometimes{First: 1, Interval: time.Minute}

	return func(c *gin.Context) {
		res, err := store.Take(c.Request.Context(), c.ClientIP())
		if err != nil {
			storeDown.Do(func() { log.Warn("Rate limit store unavailable, letting requests through: ", err) })
			c.Next()
			return
		}

		c.Header("RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			if onLimited != nil {
				onLimited()
			}
			Abort(c, apperr.TooManyRequests(rateLimitMessage))
			return
		}
		c.Next()
	}
}
