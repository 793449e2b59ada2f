package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as the error envelope.
// Handlers and middleware only attach errors and return; nothing else writes error bodies.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.StatusCode(err)
		logger := GetLoggerFromCtx(c.Request.Context())
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		}

		c.JSON(status, dto.NewErrorResponse(status, apperrors.PublicMessage(err), apperrors.ErrorDetails(err)))
	}
}

// Recovery converts panics into a 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered", slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "Internal Server Error", nil))
	})
}
