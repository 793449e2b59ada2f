package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// Cookie names shared by the user handler and the auth middleware.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// ExtractToken returns the token from cookieName, falling back to an
// "Authorization: Bearer <token>" header. The cookie wins when both are present.
func ExtractToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// authenticate verifies the access token and loads the active user it names.
func authenticate(c *gin.Context, tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserReaderSvc) (*domain.User, error) {
	logger := GetLoggerFromCtx(c.Request.Context())

	token := ExtractToken(c, AccessTokenCookie)
	if token == "" {
		logger.Warn("Access token missing")
		return nil, apperrors.NewUnauthorizedError("Unauthorized token")
	}

	claims, err := tokenSvc.VerifyAccess(c.Request.Context(), token)
	if err != nil {
		logger.Warn("Invalid access token", slog.String("error", err.Error()))
		return nil, err
	}

	user, err := userSvc.GetUserByID(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Token subject does not resolve to an active user", slog.String("user_id", claims.Subject))
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		return nil, err
	}
	return user, nil
}

// RequireAuth rejects requests without a valid access token for an active user and
// attaches that user to the request.
func RequireAuth(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, tokenSvc, userSvc)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		setAuthenticatedUser(c, user)
		c.Next()
	}
}

// RequireAdmin behaves like RequireAuth and additionally requires the Admin role.
func RequireAdmin(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, tokenSvc, userSvc)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Non-admin user denied", slog.String("user_id", user.UserID))
			_ = c.Error(apperrors.NewForbiddenError("Forbidden: Admins only"))
			c.Abort()
			return
		}
		setAuthenticatedUser(c, user)
		c.Next()
	}
}

// RequireGuest rejects requests that carry any access token. The token is not verified.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ExtractToken(c, AccessTokenCookie) != "" {
			_ = c.Error(apperrors.NewAppError(http.StatusUnauthorized, "User already logged in", apperrors.ErrUnauthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}
