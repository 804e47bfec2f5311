package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/metrics"
)

func TestMetrics_ObserveRolls(t *testing.T) {
	m := metrics.New()

	m.Observe(domain.Event{Type: domain.EventRolled, CatalogSize: 8, HistorySize: 1})
	m.Observe(domain.Event{Type: domain.EventRolled, CatalogSize: 8, HistorySize: 2})
	m.Observe(domain.Event{Type: domain.EventRollMissed, CatalogSize: 8, HistorySize: 2})

	expected := `
# HELP whattoeat_rolls_total Rolls performed, by whether a dish matched the filter.
# TYPE whattoeat_rolls_total counter
whattoeat_rolls_total{result="match"} 2
whattoeat_rolls_total{result="no_match"} 1
# HELP whattoeat_history_entries Entries currently in the roll history.
# TYPE whattoeat_history_entries gauge
whattoeat_history_entries 2
# HELP whattoeat_catalog_dishes Dishes currently in the catalog.
# TYPE whattoeat_catalog_dishes gauge
whattoeat_catalog_dishes 8
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"whattoeat_rolls_total", "whattoeat_history_entries", "whattoeat_catalog_dishes")
	require.NoError(t, err)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest(http.MethodPost, "/roll", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/roll", http.StatusOK, 7*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "whattoeat_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "both requests share one label set")
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.SetCatalogSize(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "whattoeat_catalog_dishes 3")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_Observe_LateEventDoesNotRewindGauges(t *testing.T) {
	m := metrics.New()

	// Seq 3 is delivered before seq 2.
	m.Observe(domain.Event{Seq: 1, Type: domain.EventDishAdded, CatalogSize: 9, HistorySize: 0})
	m.Observe(domain.Event{Seq: 3, Type: domain.EventRolled, CatalogSize: 10, HistorySize: 1})
	m.Observe(domain.Event{Seq: 2, Type: domain.EventDishAdded, CatalogSize: 10, HistorySize: 0})

	expected := `
# HELP whattoeat_rolls_total Rolls performed, by whether a dish matched the filter.
# TYPE whattoeat_rolls_total counter
whattoeat_rolls_total{result="match"} 1
# HELP whattoeat_history_entries Entries currently in the roll history.
# TYPE whattoeat_history_entries gauge
whattoeat_history_entries 1
# HELP whattoeat_catalog_dishes Dishes currently in the catalog.
# TYPE whattoeat_catalog_dishes gauge
whattoeat_catalog_dishes 10
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"whattoeat_rolls_total", "whattoeat_history_entries", "whattoeat_catalog_dishes")
	require.NoError(t, err)
}
