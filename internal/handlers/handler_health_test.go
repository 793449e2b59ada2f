package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/SscSPs/slt_feedback_app/internal/handlers"
)

func (s *RoutesTestSuite) TestHealth() {
	tests := []struct {
		name     string
		checks   map[string]handlers.HealthCheck
		wantCode int
		wantBody string
	}{
		{
			name:     "no checks",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name: "all healthy, nil check skipped",
			checks: map[string]handlers.HealthCheck{
				"postgres": func(context.Context) error { return nil },
				"redis":    nil,
			},
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name: "dependency down",
			checks: map[string]handlers.HealthCheck{
				"postgres": func(context.Context) error { return errors.New("dial tcp: refused") },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"unavailable","dependency":"postgres"}`,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			router := s.newRouter(handlers.RouteDeps{HealthChecks: tt.checks})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			s.Equal(tt.wantCode, w.Code)
			s.JSONEq(tt.wantBody, w.Body.String())
		})
	}
}
