package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/handlers"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/stretchr/testify/mock"
)

func (s *RoutesTestSuite) TestRegister_Success() {
	req := dto.RegisterUserRequest{FullName: "Jane Doe", Email: "jane@example.com", Password: "s3cret"}
	s.userSvc.On("RegisterUser", mock.Anything, req).Return(s.user, nil).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/register", req))

	s.Equal(http.StatusCreated, w.Code)
	s.True(body.Success)
	s.Equal(http.StatusCreated, body.StatusCode)
	s.Equal("User created successfully", body.Message)

	var user dto.UserResponse
	s.Require().NoError(json.Unmarshal(body.Data, &user))
	s.Equal("user-1", user.UserID)
	s.Equal([]string{"User"}, user.Role)
	s.NotContains(w.Body.String(), "password")
}

func (s *RoutesTestSuite) TestRegister_Conflict() {
	s.userSvc.On("RegisterUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("User already exists")).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/register",
		dto.RegisterUserRequest{FullName: "x", Email: "jane@example.com", Password: "p"}))

	s.Equal(http.StatusConflict, w.Code)
	s.False(body.Success)
	s.Equal("User already exists", body.Message)
	s.Equal("null", string(body.Data))
	s.Empty(body.Errors)
}

func (s *RoutesTestSuite) TestRegister_EmptyBodyReachesService() {
	s.userSvc.On("RegisterUser", mock.Anything, dto.RegisterUserRequest{}).
		Return(nil, apperrors.NewValidationError("All fields are required")).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/register", nil))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("All fields are required", body.Message)
}

func (s *RoutesTestSuite) TestRegister_MalformedJSON() {
	w, body := s.serve(request(http.MethodPost, "/api/v1/users/register", `{"fullname":`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request", body.Message)
	s.Equal([]string{"malformed request"}, body.Errors)
}

func (s *RoutesTestSuite) TestLogin_SetsCookies() {
	s.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "s3cret").Return(s.user, nil).Once()
	s.tokenSvc.On("Issue", mock.Anything, "user-1").
		Return(&domain.TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"}, nil).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/login",
		dto.LoginRequest{Email: "jane@example.com", Password: "s3cret"}))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("User logged in successfully", body.Message)

	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(body.Data, &resp))
	s.Equal("acc-1", resp.AccessToken)
	s.Equal("ref-1", resp.RefreshToken)
	s.Equal("jane@example.com", resp.User.Email)

	access := responseCookie(w, middleware.AccessTokenCookie)
	s.Require().NotNil(access)
	s.Equal("acc-1", access.Value)
	s.True(access.HttpOnly)
	s.True(access.Secure)
	s.Equal(http.SameSiteNoneMode, access.SameSite)
	s.Equal("/", access.Path)
	s.Equal(900, access.MaxAge)

	refresh := responseCookie(w, middleware.RefreshTokenCookie)
	s.Require().NotNil(refresh)
	s.Equal("ref-1", refresh.Value)
	s.Equal(3600, refresh.MaxAge)
}

func (s *RoutesTestSuite) TestLogin_InsecureCookiesUseLax() {
	s.cfg.CookieSecure = false
	s.router = s.newRouter(handlers.RouteDeps{})
	s.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "s3cret").Return(s.user, nil).Once()
	s.tokenSvc.On("Issue", mock.Anything, "user-1").
		Return(&domain.TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"}, nil).Once()

	w, _ := s.serve(request(http.MethodPost, "/api/v1/users/login",
		dto.LoginRequest{Email: "jane@example.com", Password: "s3cret"}))

	access := responseCookie(w, middleware.AccessTokenCookie)
	s.Require().NotNil(access)
	s.False(access.Secure)
	s.Equal(http.SameSiteLaxMode, access.SameSite)
}

func (s *RoutesTestSuite) TestLogin_AlreadyLoggedIn() {
	req := withCookie(request(http.MethodPost, "/api/v1/users/login",
		dto.LoginRequest{Email: "jane@example.com", Password: "s3cret"}), middleware.AccessTokenCookie, "anything")

	w, body := s.serve(req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("User already logged in", body.Message)
}

func (s *RoutesTestSuite) TestLogin_InvalidPassword() {
	s.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("Invalid password")).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/login",
		dto.LoginRequest{Email: "jane@example.com", Password: "wrong"}))

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid password", body.Message)
	s.Nil(responseCookie(w, middleware.AccessTokenCookie))
}

func (s *RoutesTestSuite) TestLogin_RateLimited() {
	store, err := middleware.NewLimiterStore(nil, "test_login")
	s.Require().NoError(err)
	lim, err := middleware.NewRateLimiter("1-M", store)
	s.Require().NoError(err)
	s.router = s.newRouter(handlers.RouteDeps{LoginLimiter: lim})

	s.userSvc.On("AuthenticateUser", mock.Anything, "jane@example.com", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("Invalid password")).Once()
	login := dto.LoginRequest{Email: "jane@example.com", Password: "wrong"}

	first, _ := s.serve(request(http.MethodPost, "/api/v1/users/login", login))
	second, body := s.serve(request(http.MethodPost, "/api/v1/users/login", login))

	s.Equal(http.StatusUnauthorized, first.Code)
	s.Equal(http.StatusTooManyRequests, second.Code)
	s.Equal("Too many requests. Please try again later.", body.Message)
}

func (s *RoutesTestSuite) TestRefreshToken_FromCookieRotates() {
	s.tokenSvc.On("Refresh", mock.Anything, "ref-1").
		Return(&domain.TokenPair{AccessToken: "acc-2", RefreshToken: "ref-2"}, nil).Once()

	req := withCookie(request(http.MethodPost, "/api/v1/users/refresh-token", nil), middleware.RefreshTokenCookie, "ref-1")
	w, body := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Token updated successfully", body.Message)
	var resp dto.TokenResponse
	s.Require().NoError(json.Unmarshal(body.Data, &resp))
	s.Equal("acc-2", resp.AccessToken)
	s.Equal("ref-2", responseCookie(w, middleware.RefreshTokenCookie).Value)
}

func (s *RoutesTestSuite) TestRefreshToken_FromBody() {
	s.tokenSvc.On("Refresh", mock.Anything, "ref-body").
		Return(&domain.TokenPair{AccessToken: "acc-2", RefreshToken: "ref-2"}, nil).Once()

	w, _ := s.serve(request(http.MethodPost, "/api/v1/users/refresh-token", dto.RefreshTokenRequest{RefreshToken: "ref-body"}))

	s.Equal(http.StatusOK, w.Code)
}

func (s *RoutesTestSuite) TestRefreshToken_RejectedClearsCookies() {
	s.tokenSvc.On("Refresh", mock.Anything, "stale").
		Return(nil, apperrors.NewUnauthorizedError("Unauthorized Token")).Once()

	req := withCookie(request(http.MethodPost, "/api/v1/users/refresh-token", nil), middleware.RefreshTokenCookie, "stale")
	w, body := s.serve(req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Unauthorized Token", body.Message)
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		c := responseCookie(w, name)
		s.Require().NotNil(c, name)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	}
}

func (s *RoutesTestSuite) TestCheckTokens() {
	_, body := s.serve(request(http.MethodGet, "/api/v1/users/checkTokens", nil))
	s.Equal("Tokens not present", body.Message)
	s.JSONEq(`{"valid":false}`, string(body.Data))

	req := request(http.MethodGet, "/api/v1/users/checkTokens", nil)
	withCookie(req, middleware.AccessTokenCookie, "a")
	withCookie(req, middleware.RefreshTokenCookie, "r")
	w, body := s.serve(req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Tokens are present", body.Message)
	s.JSONEq(`{"valid":true}`, string(body.Data))
}

func (s *RoutesTestSuite) TestSendCode() {
	s.resetSvc.On("SendResetCode", mock.Anything, "jane@example.com").Return(nil).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/send-code", dto.SendResetCodeRequest{Email: "jane@example.com"}))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Reset code sent to email", body.Message)
}

func (s *RoutesTestSuite) TestSendCode_MailFailureHidesCause() {
	s.resetSvc.On("SendResetCode", mock.Anything, "jane@example.com").
		Return(apperrors.NewInternalError("Failed to send email", errors.New("smtp: 535 auth failed"))).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/send-code", dto.SendResetCodeRequest{Email: "jane@example.com"}))

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to send email", body.Message)
	s.NotContains(w.Body.String(), "535")
}

func (s *RoutesTestSuite) TestResetPassword() {
	req := dto.ResetPasswordRequest{Email: "jane@example.com", Code: "123456", NewPassword: "n3w"}
	s.resetSvc.On("ResetPassword", mock.Anything, req).
		Return(apperrors.NewValidationError("Invalid or expired reset code")).Once()

	w, body := s.serve(request(http.MethodPost, "/api/v1/users/reset", req))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid or expired reset code", body.Message)
}

func (s *RoutesTestSuite) TestLogout() {
	s.tokenSvc.On("Revoke", mock.Anything, "user-1").Return(nil).Once()

	w, body := s.serve(s.authAs(s.user, request(http.MethodPost, "/api/v1/users/logout", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("User logged out successfully", body.Message)
	s.Less(responseCookie(w, middleware.AccessTokenCookie).MaxAge, 0)
	s.Less(responseCookie(w, middleware.RefreshTokenCookie).MaxAge, 0)
}

func (s *RoutesTestSuite) TestLogout_RequiresToken() {
	w, body := s.serve(request(http.MethodPost, "/api/v1/users/logout", nil))

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Unauthorized token", body.Message)
}

func (s *RoutesTestSuite) TestCurrentUser() {
	w, body := s.serve(s.authAs(s.user, request(http.MethodGet, "/api/v1/users/current-user", nil)))

	s.Equal(http.StatusOK, w.Code)
	var user dto.UserResponse
	s.Require().NoError(json.Unmarshal(body.Data, &user))
	s.Equal("Jane Doe", user.FullName)
}

func (s *RoutesTestSuite) TestUpdateProfile() {
	updated := *s.user
	updated.FullName = "Jane Smith"
	s.userSvc.On("UpdateProfile", mock.Anything, "user-1", mock.MatchedBy(func(r dto.UpdateUserRequest) bool {
		return r.FullName != nil && *r.FullName == "Jane Smith" && r.Password == nil
	})).Return(&updated, nil).Once()

	req := s.authAs(s.user, request(http.MethodPut, "/api/v1/users/update-profile", `{"fullname":"Jane Smith"}`))
	w, body := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Profile updated successfully", body.Message)
	s.Contains(string(body.Data), "Jane Smith")
}

func (s *RoutesTestSuite) TestUpdateProfile_NoChanges() {
	s.userSvc.On("UpdateProfile", mock.Anything, "user-1", mock.Anything).
		Return(nil, apperrors.NewValidationError("No changes detected")).Once()

	w, body := s.serve(s.authAs(s.user, request(http.MethodPut, "/api/v1/users/update-profile", `{"fullname":"Jane Doe"}`)))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("No changes detected", body.Message)
}
