package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// errMissingUser is reported when a guarded handler runs without an authenticated user in context.
var errMissingUser = apperrors.NewUnauthorizedError("Unauthorized")

// respond writes the success envelope.
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewAPIResponse(status, data, message))
}

// bindingError converts a gin binding error into a 400 carrying per-field details.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, describeFieldError(fe))
		}
		return apperrors.NewValidationError("Invalid request", details...)
	}
	return apperrors.NewValidationError("Invalid request", "malformed request")
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// bindJSON binds the request body into obj. On failure it records the error and returns false.
// An empty body binds as an empty object so services report missing fields themselves.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request body", slog.String("error", err.Error()))
		_ = c.Error(bindingError(err))
		return false
	}
	return true
}

// bindPage reads page/limit query parameters, defaulting to page 1 of 10.
func bindPage(c *gin.Context) (pagination.Page, bool) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params", slog.String("error", err.Error()))
		_ = c.Error(bindingError(err))
		return pagination.Page{}, false
	}
	return pagination.New(params.Page, params.Limit), true
}
