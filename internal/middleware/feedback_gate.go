package middleware

import (
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// FeedbackGate allows at most one feedback submission per user per local calendar day.
// It must run after RequireAuth. now is injectable for tests; nil means time.Now.
func FeedbackGate(feedbackSvc portssvc.FeedbackReaderSvc, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			_ = c.Error(apperrors.NewUnauthorizedError("Unauthorized"))
			c.Abort()
			return
		}

		exists, err := feedbackSvc.HasFeedbackOnDay(c.Request.Context(), userID, now())
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if exists {
			_ = c.Error(apperrors.NewValidationError("You have already submitted feedback today."))
			c.Abort()
			return
		}
		c.Next()
	}
}
