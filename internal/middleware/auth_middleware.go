package middleware

import (
	"net/http"
	"strings"

	"banking_customer_backend/internal/auth"
	"banking_customer_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key the authenticated Principal is stored under.
const PrincipalKey = "principal"

// AuthMiddleware creates a Gin middleware for bearer-token authentication.
// It verifies the token, translates its claims into a Principal and stores
// the Principal in the request context for downstream handlers.
func AuthMiddleware(verifier *auth.TokenVerifier, clientID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
			return
		}

		c.Set(PrincipalKey, auth.PrincipalFromClaims(claims, clientID))
		c.Next()
	}
}

// RequireRoles creates a Gin middleware gating an operation behind a role
// predicate: the request proceeds only when the Principal holds at least one
// of the given roles. Evaluated before the handler runs, so a denied request
// causes no side effects.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "No authenticated principal. Ensure AuthMiddleware runs first.", ""))
			return
		}

		if !principal.HasAnyRole(roles...) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to access this resource. Required roles: "+strings.Join(roles, ", "), ""))
			return
		}

		c.Next()
	}
}

// GetPrincipal retrieves the authenticated Principal from the request context.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}
