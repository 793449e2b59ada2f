package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/slt_feedback_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// Route prefix stripped from event names, e.g. "/api/v1/users/feedback" -> "users_feedback".
const apiPrefix = "/api/v1/"

// PosthogMiddleware records one event per successful authenticated request.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := eventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if id := c.Param("id"); id != "" {
			props["target_user_id"] = id
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

func eventNameForRoute(fullPath string) string {
	name := strings.TrimPrefix(fullPath, apiPrefix)
	name = strings.TrimPrefix(name, "/")
	if i := strings.Index(name, "/:"); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "/", "_")
}
