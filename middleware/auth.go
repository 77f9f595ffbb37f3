package middleware

import (
	"net/http"

	"eduhub/models"
	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the session header every authenticated call carries.
const TokenHeader = "x-auth-token"

// AuthMiddleware validates the x-auth-token header and resolves the
// caller's identity.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authentication token required")
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "User not found")
			return
		}

		if !user.IsActive {
			utils.AbortWithError(c, http.StatusUnauthorized, "Account is deactivated")
			return
		}

		utils.SetUserInContext(c, user)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// RequireContentManager allows only roles that may mutate content.
// Runs after AuthMiddleware.
func RequireContentManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := utils.GetUserFromContext(c)
		if !exists {
			utils.AbortWithError(c, http.StatusUnauthorized, "User context not found")
			return
		}

		if !models.CanModifyContent(user.Role) {
			utils.AbortWithError(c, http.StatusForbidden, "Moderator or admin role required")
			return
		}

		c.Next()
	}
}

// RequireAdmin allows only admins, used for role management.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := utils.GetUserFromContext(c)
		if !exists {
			utils.AbortWithError(c, http.StatusUnauthorized, "User context not found")
			return
		}

		if user.Role != models.RoleAdmin {
			utils.AbortWithError(c, http.StatusForbidden, "Admin role required")
			return
		}

		c.Next()
	}
}
