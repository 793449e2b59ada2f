package middleware

import (
	"context"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys for the authenticated identity. Using a custom type prevents collisions.
const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// setAuthenticatedUser stores user in both the Gin context and the request context
// and enriches the request logger with the user id.
func setAuthenticatedUser(c *gin.Context, user *domain.User) {
	c.Set(string(userIDKey), user.UserID)
	c.Set(string(userKey), user)

	ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
	ctx = context.WithValue(ctx, userKey, user)

	enriched := GetLoggerFromCtx(ctx).With("user_id", user.UserID)
	c.Set(string(loggerKey), enriched)
	c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if id, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return id, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetUserFromContext retrieves the authenticated user loaded by RequireAuth or RequireAdmin.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	if v, exists := c.Get(string(userKey)); exists {
		user, ok := v.(*domain.User)
		return user, ok && user != nil
	}
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok && user != nil
}
