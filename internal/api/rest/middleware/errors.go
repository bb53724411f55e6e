package middleware

import (
	"fmt"
	"net/http"

	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and the human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorHandler renders the last error attached to the context. It sees errors
// from everything it wraps, and must sit inside any middleware that replaces
// c.Writer (compression) or reads the final status (access log, metrics).
func ErrorHandler(isProduction bool, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperr.From(c.Errors.Last().Err)
		message := appErr.Message
		if appErr.Status >= http.StatusInternalServerError {
			log.Error("Request ", c.Request.Method, " ", c.Request.URL.Path, " failed: ", appErr.Error())
			if !isProduction {
				message = appErr.Error()
			}
		}

		c.JSON(appErr.Status, ErrorBody{
			Error: ErrorDetail{Code: appErr.Code, Message: message},
		})
	}
}

// Recovery turns panics into internal errors for ErrorHandler to render.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic: ", recovered)
		_ = c.Error(apperr.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}

// Abort attaches err to the context and stops the handler chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	Abort(c, apperr.NotFound("Not found - "+c.Request.URL.Path))
}
