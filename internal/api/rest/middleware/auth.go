package middleware

import (
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAuth accepts requests carrying a valid bearer token whose principal
// kind is one of kinds. An empty kinds list accepts any principal.
func RequireAuth(tokens accounts.TokenIssuer, kinds ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			Abort(c, apperr.Unauthorized("Authentication required"))
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			Abort(c, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		if len(kinds) > 0 && !containsKind(kinds, principal.Kind) {
			Abort(c, apperr.Forbidden("Insufficient permissions"))
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CurrentPrincipal returns the authenticated caller, or nil on public routes.
func CurrentPrincipal(c *gin.Context) *accounts.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*accounts.Principal); ok {
			return p
		}
	}
	return nil
}
