package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"proccms/shared/failure"
	"proccms/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	response.WithJSON(w, http.StatusOK, map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"total":3}}`, w.Body.String())
}

func TestWithRaw(t *testing.T) {
	w := httptest.NewRecorder()
	response.WithRaw(w, http.StatusOK, map[string]string{"status": "Verified"})

	assert.JSONEq(t, `{"status":"Verified"}`, w.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "failure keeps its status",
			err:  fmt.Errorf("book room: %w", failure.Conflict("Time slot already booked")),
			code: http.StatusConflict,
			body: `{"error":"book room: Time slot already booked"}`,
		},
		{
			name: "plain error is internal",
			err:  errors.New("connection reset"),
			code: http.StatusInternalServerError,
			body: `{"error":"connection reset"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			response.WithError(w, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	w := httptest.NewRecorder()
	response.WithRequestLimitExceeded(w)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, w.Body.String())
}
