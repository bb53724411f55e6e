package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const rawBodyKey = "rawBody"

// BodyLimit caps request bodies at limit bytes.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			Abort(c, PayloadTooLarge())
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// PayloadTooLarge is the error returned once a body exceeds BodyLimit.
func PayloadTooLarge() *apperr.Error {
	return apperr.New(http.StatusRequestEntityTooLarge, "payload_too_large", "Request body too large")
}

// IsBodyTooLarge reports whether err comes from reading past BodyLimit.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// RawBody buffers the unparsed body of requests under pathPrefix so that
// handlers can verify payload signatures. The body stays readable afterwards.
func RawBody(pathPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, pathPrefix) || c.Request.Body == nil {
			c.Next()
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			if IsBodyTooLarge(err) {
				Abort(c, PayloadTooLarge())
				return
			}
			Abort(c, apperr.BadRequest("Could not read request body"))
			return
		}
		c.Set(rawBodyKey, payload)
		c.Request.Body = io.NopCloser(bytes.NewReader(payload))
		c.Next()
	}
}

// GetRawBody returns the bytes buffered by RawBody, or nil.
func GetRawBody(c *gin.Context) []byte {
	if v, ok := c.Get(rawBodyKey); ok {
		if b, ok := v.([]byte); ok {
			return b
		}
	}
	return nil
}
