package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const clfTimeFormat = "02/Jan/2006:15:04:05 -0700"

// AccessLog writes one Apache combined format line per request. It must wrap
// the error handler so the logged status is the one sent.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	log = log.With("component", "access")

	return func(c *gin.Context) {
		c.Next()
		log.Info(combinedLine(c, time.Now()))
	}
}

func combinedLine(c *gin.Context, at time.Time) string {
	size := "-"
	if n := c.Writer.Size(); n >= 0 {
		size = strconv.Itoa(n)
	}
	user := "-"
	if p := CurrentPrincipal(c); p != nil {
		user = p.ID
	}
	req := c.Request
	return fmt.Sprintf(`%s - %s [%s] "%s %s %s" %d %s "%s" "%s"`,
		c.ClientIP(), user, at.Format(clfTimeFormat),
		req.Method, req.URL.RequestURI(), req.Proto,
		c.Writer.Status(), size, dash(req.Referer()), dash(req.UserAgent()))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
