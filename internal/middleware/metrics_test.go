package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/whattoeat/internal/middleware"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, observation{method, route, status})
}

var _ middleware.RequestObserver = (*fakeObserver)(nil)

// TestMetricsHandler_UsesRoutePattern verifies that requests are labelled with
// the chi route pattern, not the concrete path.
func TestMetricsHandler_UsesRoutePattern(t *testing.T) {
	obs := &fakeObserver{}
	r := chi.NewRouter()
	r.Use(middleware.NewMetricsHandler(obs))
	r.Get("/dishes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/tags", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	for _, path := range []string{"/dishes/abc", "/dishes/def", "/tags", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, obs.seen, 4)
	assert.Equal(t, observation{"GET", "/dishes/{id}", http.StatusNotFound}, obs.seen[0])
	assert.Equal(t, observation{"GET", "/dishes/{id}", http.StatusNotFound}, obs.seen[1])
	assert.Equal(t, observation{"GET", "/tags", http.StatusOK}, obs.seen[2])
	assert.Equal(t, "GET", obs.seen[3].method)
	assert.Equal(t, http.StatusNotFound, obs.seen[3].status)
}
