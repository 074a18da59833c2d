package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"proccms/config"
	"proccms/infras/jwt"
	jwtMocks "proccms/infras/jwt/mocks"
	otelMocks "proccms/infras/otel/mocks"
	"proccms/permissions"
	"proccms/shared"
	"proccms/transport/http/middleware"
)

func setup(t *testing.T) (http.Handler, *jwtMocks.MockJWT) {
	t.Helper()

	mockJWT := jwtMocks.NewMockJWT(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/api/auth/login", Method: http.MethodPost, Skip: true},
		{Path: "/api/gatepass/", Method: http.MethodPost, Permissions: []string{"admin"}},
		{Path: "/api/gatepass/{id}", Method: http.MethodGet, Permissions: []string{"admin", "staff"}},
	}}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), perms, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(shared.CurrentUser(r.Context()).Username))
	}

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Post("/auth/login", echoUser)
		r.Route("/gatepass", func(r chi.Router) {
			r.Post("/", echoUser)
			r.Get("/{id}", echoUser)
		})
	})

	return router, mockJWT
}

func request(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

func TestAuth(t *testing.T) {
	t.Run("public endpoint skips token check", func(t *testing.T) {
		router, _ := setup(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodPost, "/api/auth/login", ""))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		router, _ := setup(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodGet, "/api/gatepass/gp-1", ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Missing authorization header"}`, w.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		router, mockJWT := setup(t)

		mockJWT.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodGet, "/api/gatepass/gp-1", "stale"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Token has expired"}`, w.Body.String())
	})

	t.Run("identity reaches the handler", func(t *testing.T) {
		router, mockJWT := setup(t)

		mockJWT.EXPECT().ValidateToken("good", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "u-1", Username: "kim", Role: "staff"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodGet, "/api/gatepass/gp-1", "good"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "kim", w.Body.String())
	})
}

func TestRBAC(t *testing.T) {
	t.Run("role not allowed", func(t *testing.T) {
		router, mockJWT := setup(t)

		mockJWT.EXPECT().ValidateToken("good", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "u-1", Username: "kim", Role: "staff"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodPost, "/api/gatepass", "good"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		router, mockJWT := setup(t)

		mockJWT.EXPECT().ValidateToken("good", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "a-1", Username: "root", Role: "admin"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, request(http.MethodPost, "/api/gatepass/", "good"))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key bypasses token", func(t *testing.T) {
		router, _ := setup(t)

		req := request(http.MethodPost, "/api/gatepass/", "")
		req.Header.Set("X-API-Key", "internal-key")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		router, _ := setup(t)

		req := request(http.MethodPost, "/api/gatepass/", "")
		req.Header.Set("X-API-Key", "guess")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
