package middleware

import (
	"net/http"
	"strings"

	"placement_backend/internal/auth"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Keys under which the authenticated identity is stored in the gin context.
// Identity always travels with the request, never through shared state.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware validates the bearer token and stores the claims on the
// request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			status := "Invalid token"
			if err == auth.ErrExpiredToken {
				status = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": status})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireAdmin is shorthand for the admin-only surface.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

// GetUserID extracts the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole extracts the authenticated user's role from the gin context.
func GetRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}
	if role, ok := val.(models.UserRole); ok {
		return role, true
	}
	if roleStr, ok := val.(string); ok {
		return models.UserRole(roleStr), true
	}
	return "", false
}
