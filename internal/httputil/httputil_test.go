package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-fit/internal/analysis"
	"resume-fit/internal/logger"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &analysis.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{"configuration", &analysis.ConfigurationError{Message: "no key"}, http.StatusServiceUnavailable},
		{"wrapped validation", fmt.Errorf("handler: %w", &analysis.ValidationError{Message: "bad"}), http.StatusBadRequest},
		{"parse", &analysis.ParseError{Err: errors.New("eof")}, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestFailWritesJSONError(t *testing.T) {
	rec := httptest.NewRecorder()

	Fail(logger.Discard(), rec, "Invalid JSON body.", errors.New("unexpected EOF"), http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid JSON body.", body.Error)
}

func TestFailDefaultsTo500(t *testing.T) {
	rec := httptest.NewRecorder()

	Fail(logger.Discard(), rec, "Analysis failed. Please try again.", errors.New("boom"), 0)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouterRecoversPanics(t *testing.T) {
	r := NewRouter(logger.Discard(), time.Second)
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})
	r.Get("/healthz", HealthHandler(logger.Discard()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal Server Error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
