package v1

import (
	"net/http"
	"strconv"

	"github.com/bella-carwash/bella-api/internal/api/rest/middleware"
	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every successful response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, Envelope{Success: true, Data: data})
}

// bind decodes a JSON or urlencoded body into dst and aborts the request when
// that fails.
func bind(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBind(dst); err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.Abort(ctx, middleware.PayloadTooLarge())
			return false
		}
		middleware.Abort(ctx, apperr.Wrap(err, http.StatusBadRequest, "invalid_body", "Invalid request body"))
		return false
	}
	if v, ok := dst.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			middleware.Abort(ctx, apperr.Wrap(err, http.StatusBadRequest, "validation_error", err.Error()))
			return false
		}
	}
	return true
}

func fail(ctx *gin.Context, err error) {
	middleware.Abort(ctx, err)
}

// principalID is only called behind RequireAuth.
func principalID(ctx *gin.Context) string {
	return principal(ctx).ID
}

func principal(ctx *gin.Context) *accounts.Principal {
	if p := middleware.CurrentPrincipal(ctx); p != nil {
		return p
	}
	return &accounts.Principal{}
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		middleware.Abort(ctx, apperr.BadRequest("Query parameter "+name+" must be a non-negative integer"))
		return 0, false
	}
	return n, true
}

func pagination(ctx *gin.Context) (limit, offset int, ok bool) {
	if limit, ok = queryInt(ctx, "limit", 50); !ok {
		return 0, 0, false
	}
	if offset, ok = queryInt(ctx, "offset", 0); !ok {
		return 0, 0, false
	}
	return limit, offset, true
}
