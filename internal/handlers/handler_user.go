package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/SscSPs/slt_feedback_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// userHandler serves the self-service account endpoints under /users.
type userHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	resetService  portssvc.PasswordResetSvc
	cookieSecure  bool
	cookieDomain  string
	accessMaxAge  time.Duration
	refreshMaxAge time.Duration
}

func newUserHandler(services *portssvc.ServiceContainer, cfg *config.Config) *userHandler {
	return &userHandler{
		userService:   services.User,
		tokenService:  services.Token,
		resetService:  services.PasswordReset,
		cookieSecure:  cfg.CookieSecure,
		cookieDomain:  cfg.CookieDomain,
		accessMaxAge:  cfg.JWTExpiryDuration,
		refreshMaxAge: cfg.RefreshTokenExpiryDuration,
	}
}

// setCookie writes an httpOnly cookie on path "/". maxAge < 0 deletes it.
// Cross-site SameSite=None is only valid on secure cookies, so local http falls back to Lax.
func (h *userHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	if h.cookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, "/", h.cookieDomain, h.cookieSecure, true)
}

func (h *userHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	h.setCookie(c, middleware.AccessTokenCookie, accessToken, int(h.accessMaxAge.Seconds()))
	h.setCookie(c, middleware.RefreshTokenCookie, refreshToken, int(h.refreshMaxAge.Seconds()))
}

func (h *userHandler) clearAuthCookies(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, middleware.RefreshTokenCookie, "", -1)
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account with the default User role.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "All fields are required"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/register [post]
func (h *userHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respond(c, http.StatusCreated, dto.ToUserResponse(user), "User created successfully")
}

// login godoc
// @Summary Log in
// @Description Verifies credentials, issues an access/refresh token pair and sets both as httpOnly cookies.
// @Tags users
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Email and password are required"
// @Failure 401 {object} dto.ErrorResponse "Invalid password or already logged in"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /users/login [post]
func (h *userHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	pair, err := h.tokenService.Issue(c.Request.Context(), user.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	logger.Info("User logged in", slog.String("user_id", user.UserID))
	respond(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "User logged in successfully")
}

// refreshToken godoc
// @Summary Rotate tokens
// @Description Exchanges the live refresh token (cookie, bearer header or body) for a new pair. The old refresh token stops working.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token for clients without cookies"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized Token"
// @Router /users/refresh-token [post]
func (h *userHandler) refreshToken(c *gin.Context) {
	token := middleware.ExtractToken(c, middleware.RefreshTokenCookie)
	if token == "" {
		var req dto.RefreshTokenRequest
		if !bindJSON(c, &req) {
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.tokenService.Refresh(c.Request.Context(), token)
	if err != nil {
		h.clearAuthCookies(c)
		_ = c.Error(err)
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Token updated successfully")
}

// checkTokens godoc
// @Summary Check token cookies
// @Description Reports whether both token cookies are present. The tokens are not verified.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CheckTokensResponse}
// @Router /users/checkTokens [get]
func (h *userHandler) checkTokens(c *gin.Context) {
	access, accessErr := c.Cookie(middleware.AccessTokenCookie)
	refresh, refreshErr := c.Cookie(middleware.RefreshTokenCookie)
	if accessErr != nil || refreshErr != nil || access == "" || refresh == "" {
		respond(c, http.StatusOK, dto.CheckTokensResponse{Valid: false}, "Tokens not present")
		return
	}
	respond(c, http.StatusOK, dto.CheckTokensResponse{Valid: true}, "Tokens are present")
}

// sendCode godoc
// @Summary Send a password reset code
// @Description Emails a 6-digit reset code that expires after the configured TTL.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.SendResetCodeRequest true "Account email"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Email is required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to send email"
// @Router /users/send-code [post]
func (h *userHandler) sendCode(c *gin.Context) {
	var req dto.SendResetCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.SendResetCode(c.Request.Context(), req.Email); err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, nil, "Reset code sent to email")
}

// resetPassword godoc
// @Summary Reset password with a code
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired reset code"
// @Router /users/reset [post]
func (h *userHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.ResetPassword(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, nil, "Password reset successfully")
}

// logout godoc
// @Summary Log out
// @Description Revokes the stored refresh token and clears both cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *userHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(errMissingUser)
		return
	}

	if err := h.tokenService.Revoke(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		return
	}

	h.clearAuthCookies(c)
	respond(c, http.StatusOK, nil, "User logged out successfully")
}

// currentUser godoc
// @Summary Get the logged-in user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/current-user [get]
func (h *userHandler) currentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		_ = c.Error(errMissingUser)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), "User fetched successfully")
}

// updateProfile godoc
// @Summary Update own profile
// @Description Changes the full name and/or password of the logged-in user. At least one field must change.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "No changes detected"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/update-profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		_ = c.Error(errMissingUser)
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), "Profile updated successfully")
}
