package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

const CtxUserKey = "current_user"

// CurrentUser returns the authenticated user placed on the context by
// JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *db_models.User {
	if v, ok := c.Get(CtxUserKey); ok {
		if user, ok := v.(*db_models.User); ok {
			return user
		}
	}
	return nil
}

// JWTAuthMiddleware validates the bearer token, rejects non-access token
// types, and loads the (active, not deleted) user onto the context.
func JWTAuthMiddleware(jwtManager *utils.JWTManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != utils.TokenTypeAccess {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token type")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}
		if !user.IsActive {
			utils.RespondError(c, http.StatusUnauthorized, "User is inactive")
			c.Abort()
			return
		}

		c.Set(CtxUserKey, user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// RequireRoles gates a route on the caller's stored role. Evaluated
// centrally instead of per-handler membership checks.
func RequireRoles(roles ...db_models.UserRole) gin.HandlerFunc {
	allowed := make(map[db_models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			utils.RespondError(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
