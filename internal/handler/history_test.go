package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/handler"
)

func TestListHistory_NoLimit_PassesZero(t *testing.T) {
	got := -1
	svc := &mockCatalogServicer{
		history: func(limit int) []domain.Dish {
			got = limit
			return []domain.Dish{dishFixture("寿司"), dishFixture("拉面")}
		},
	}

	rec := do(newCatalogHTTPHandler(svc), http.MethodGet, "/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got)

	var body handler.DishList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "寿司", body.Data[0].Name)
}

func TestListHistory_Limit(t *testing.T) {
	got := -1
	svc := &mockCatalogServicer{
		history: func(limit int) []domain.Dish {
			got = limit
			return nil
		},
	}

	rec := do(newCatalogHTTPHandler(svc), http.MethodGet, "/history?limit=12", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, got)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListHistory_BadLimit_400(t *testing.T) {
	svc := &mockCatalogServicer{}

	rec := do(newCatalogHTTPHandler(svc), http.MethodGet, "/history?limit=many", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearHistory_204(t *testing.T) {
	called := false
	svc := &mockCatalogServicer{clearHistory: func() { called = true }}

	rec := do(newCatalogHTTPHandler(svc), http.MethodDelete, "/history", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

func TestListTags_200(t *testing.T) {
	svc := &mockCatalogServicer{tags: func() []string { return []string{"日料", "米饭"} }}

	rec := do(newCatalogHTTPHandler(svc), http.MethodGet, "/tags", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.TagList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"日料", "米饭"}, body.Data)
}

func TestListTags_Empty_ReturnsArray(t *testing.T) {
	svc := &mockCatalogServicer{tags: func() []string { return nil }}

	rec := do(newCatalogHTTPHandler(svc), http.MethodGet, "/tags", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
