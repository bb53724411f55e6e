package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver tracks in-flight requests and their outcome.
type RequestObserver interface {
	RequestStarted() func(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every request to observer, labelled by its route template.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := observer.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
