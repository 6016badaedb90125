package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockPinger struct {
	HealthCheckFunc func(ctx context.Context) error
}

func (m *mockPinger) HealthCheck(ctx context.Context) error {
	if m.HealthCheckFunc != nil {
		return m.HealthCheckFunc(ctx)
	}
	return nil
}

func newHealthRouter(store Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(store)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		store          Pinger
		expectedStatus int
	}{
		{name: "GET with healthy store", method: http.MethodGet, store: &mockPinger{}, expectedStatus: 200},
		{name: "GET without store", method: http.MethodGet, store: nil, expectedStatus: 200},
		{
			name:   "GET with unreachable store",
			method: http.MethodGet,
			store: &mockPinger{HealthCheckFunc: func(ctx context.Context) error {
				return errors.New("no reachable servers")
			}},
			expectedStatus: 503,
		},
		{name: "HEAD", method: http.MethodHead, store: &mockPinger{}, expectedStatus: 200},
		{name: "OPTIONS", method: http.MethodOptions, store: &mockPinger{}, expectedStatus: 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newHealthRouter(tt.store)

			req, _ := http.NewRequest(tt.method, "/healthz", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}
