package repo

import (
	"slices"

	"github.com/pkordes/whattoeat/internal/domain"
)

// HistoryRepo stores past roll results, most recent first.
// Entries are copies taken at roll time, so later catalog edits do not
// reach them.
type HistoryRepo interface {
	// Prepend records d as the most recent entry.
	Prepend(d domain.Dish)

	// List returns up to limit entries, most recent first.
	// A limit of zero or less returns every entry.
	List(limit int) []domain.Dish

	// Clear removes every entry and returns how many there were.
	Clear() int

	// Len returns the number of entries.
	Len() int
}

// memHistoryRepo is the slice-backed implementation of HistoryRepo.
// It grows without bound until cleared.
type memHistoryRepo struct {
	entries []domain.Dish
}

// NewHistoryRepo constructs an empty HistoryRepo.
func NewHistoryRepo() HistoryRepo {
	return &memHistoryRepo{}
}

func (r *memHistoryRepo) Prepend(d domain.Dish) {
	r.entries = slices.Insert(r.entries, 0, d.Clone())
}

func (r *memHistoryRepo) List(limit int) []domain.Dish {
	n := len(r.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Dish, n)
	for i := range out {
		out[i] = r.entries[i].Clone()
	}
	return out
}

func (r *memHistoryRepo) Clear() int {
	n := len(r.entries)
	r.entries = nil
	return n
}

func (r *memHistoryRepo) Len() int {
	return len(r.entries)
}
