package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"proccms/config"
	otelMocks "proccms/infras/otel/mocks"
	cacheMocks "proccms/shared/cache/mocks"
	"proccms/transport/http/middleware"
)

func limited(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})), mockCache
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		handler, _ := limited(t, false)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gatepass", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("first request", func(t *testing.T) {
		handler, mockCache := limited(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gatepass", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		handler, mockCache := limited(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gatepass", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("store unavailable lets the request through", func(t *testing.T) {
		handler, mockCache := limited(t, true)

		mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/gatepass", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
