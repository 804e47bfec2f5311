package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/whattoeat/internal/middleware"
)

// readAllHandler drains the body and reports a MaxBytesError as 413, the
// way the JSON-decoding handlers do.
var readAllHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	case err != nil:
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusOK)
	}
})

func TestMaxBodySizeHandler_WithinLimit_PassesThrough(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(64)(readAllHandler)

	req := httptest.NewRequest(http.MethodPost, "/dishes", strings.NewReader(`{"name":"拉面"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMaxBodySizeHandler_ExactlyAtLimit_PassesThrough(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(10)(readAllHandler)

	req := httptest.NewRequest(http.MethodPost, "/roll", strings.NewReader(strings.Repeat("x", 10)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// A declared Content-Length over the cap is refused before next runs.
func TestMaxBodySizeHandler_DeclaredLengthOverLimit_JSON413(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	h := middleware.NewMaxBodySizeHandler(16)(next)

	req := httptest.NewRequest(http.MethodPost, "/dishes", strings.NewReader(strings.Repeat("x", 32)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "body_too_large", body.Error.Code)
}

// Without a Content-Length the cap is enforced while the handler reads.
func TestMaxBodySizeHandler_StreamedBodyOverLimit_413(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(16)(readAllHandler)

	req := httptest.NewRequest(http.MethodPost, "/dishes", strings.NewReader(strings.Repeat("x", 32)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
