package dto

type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenRequest lets non-browser clients send the refresh token in the body.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse represents the response for a successful token refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type CheckTokensResponse struct {
	Valid bool `json:"valid"`
}

type SendResetCodeRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" example:"jane@example.com"`
	Code        string `json:"code" example:"042917"`
	NewPassword string `json:"newPassword" example:"n3w-s3cret!"`
}
