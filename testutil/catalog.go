// Package testutil provides shared helpers for tests across packages.
// Catalogs built here use a seeded random source, so roll results are
// reproducible from run to run.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/picker"
	"github.com/pkordes/whattoeat/internal/repo"
	"github.com/pkordes/whattoeat/internal/service"
)

// Seed is the random seed every test catalog uses.
const Seed = 20240601

// Dish builds a dish with no image.
func Dish(name string, tags ...string) domain.Dish {
	return domain.NewDish(name, tags, "")
}

// NewCatalog returns a CatalogService holding dishes in the given order,
// with an empty history, a seeded random source, and a discarded log.
// pub may be nil.
func NewCatalog(t *testing.T, pub service.Publisher, dishes ...domain.Dish) *service.CatalogService {
	t.Helper()
	return service.NewCatalogService(
		repo.NewDishRepo(dishes),
		repo.NewHistoryRepo(),
		picker.NewSeededSource(Seed),
		pub,
		DiscardLogger(),
	)
}

// DiscardLogger returns a logger that writes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
