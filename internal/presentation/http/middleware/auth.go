package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kasirku/kasir-api/internal/presentation/http/dto/response"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/kasirku/kasir-api/pkg/utils"
)

// AccessDecision is the outcome of the protected-route decision table
type AccessDecision int

const (
	// AccessDenied means no authenticated user; respond 401.
	AccessDenied AccessDecision = iota
	// AccessAwaitingApproval means the account exists but has not been
	// approved by an admin; respond 403.
	AccessAwaitingApproval
	// AccessGranted admits the request.
	AccessGranted
)

// DecideAccess evaluates the protected-route decision table. Admins
// bypass the approval requirement entirely.
func DecideAccess(authenticated, isAdmin, isApproved bool) AccessDecision {
	switch {
	case !authenticated:
		return AccessDenied
	case isAdmin:
		return AccessGranted
	case !isApproved:
		return AccessAwaitingApproval
	default:
		return AccessGranted
	}
}

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c, jwtManager)
		if !ok {
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_is_admin", claims.IsAdmin)
		c.Set("user_is_approved", claims.IsApproved)

		c.Next()
	}
}

// RequireApproval gates routes behind the access decision table. It
// must run after AuthMiddleware.
func RequireApproval() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, authenticated := c.Get("user_id")
		isAdmin := c.GetBool("user_is_admin")
		isApproved := c.GetBool("user_is_approved")

		switch DecideAccess(authenticated, isAdmin, isApproved) {
		case AccessDenied:
			response.Unauthorized(c, "Authentication required")
			c.Abort()
		case AccessAwaitingApproval:
			response.Error(c, apperror.ErrAwaitingApproval)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireAdmin restricts a route to admin accounts. It must run after
// AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("user_is_admin") {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseBearerToken(c *gin.Context, jwtManager *utils.JWTManager) (*utils.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "Authorization header is required")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		response.Unauthorized(c, "Invalid authorization header format")
		return nil, false
	}

	claims, err := jwtManager.ValidateAccessToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "Invalid or expired token")
		return nil, false
	}

	return claims, true
}
