package dto

// APIResponse is the envelope every successful response is wrapped in.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorResponse is the envelope every failed response is wrapped in. Data is always null.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{StatusCode: statusCode, Data: data, Message: message, Success: true}
}

func NewErrorResponse(statusCode int, message string, errs []string) ErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ErrorResponse{StatusCode: statusCode, Message: message, Errors: errs}
}
