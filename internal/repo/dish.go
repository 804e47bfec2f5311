// Package repo holds the in-memory storage behind the catalog service.
// Nothing here survives a restart: the catalog is seeded on every launch.
// Implementations are not safe for concurrent use; the service layer
// serializes access.
package repo

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/whattoeat/internal/domain"
)

// DishRepo stores the ordered dish catalog.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type DishRepo interface {
	// Prepend inserts d at the front of the catalog.
	Prepend(d domain.Dish)

	// List returns every dish in catalog order. The result is a copy.
	List() []domain.Dish

	// Get returns the dish with the given ID.
	// Returns domain.ErrNotFound if no such dish exists.
	Get(id uuid.UUID) (domain.Dish, error)

	// Replace overwrites the dish that has d.ID, keeping its position.
	// Returns domain.ErrNotFound if no such dish exists.
	Replace(d domain.Dish) error

	// RemoveAt deletes the dish at index i. ok is false, and nothing changes,
	// when i is out of range.
	RemoveAt(i int) (removed domain.Dish, ok bool)

	// RemoveFunc deletes every dish for which match returns true and returns
	// the removed dishes in their former order.
	RemoveFunc(match func(domain.Dish) bool) []domain.Dish

	// Len returns the number of dishes in the catalog.
	Len() int
}

// memDishRepo is the slice-backed implementation of DishRepo.
type memDishRepo struct {
	dishes []domain.Dish
}

// NewDishRepo constructs a DishRepo holding seed in the given order.
func NewDishRepo(seed []domain.Dish) DishRepo {
	r := &memDishRepo{dishes: make([]domain.Dish, 0, len(seed))}
	for _, d := range seed {
		r.dishes = append(r.dishes, d.Clone())
	}
	return r
}

func (r *memDishRepo) Prepend(d domain.Dish) {
	r.dishes = slices.Insert(r.dishes, 0, d.Clone())
}

func (r *memDishRepo) List() []domain.Dish {
	out := make([]domain.Dish, len(r.dishes))
	for i, d := range r.dishes {
		out[i] = d.Clone()
	}
	return out
}

func (r *memDishRepo) Get(id uuid.UUID) (domain.Dish, error) {
	i := r.indexOf(id)
	if i < 0 {
		return domain.Dish{}, fmt.Errorf("repo.DishRepo.Get: %w", domain.ErrNotFound)
	}
	return r.dishes[i].Clone(), nil
}

func (r *memDishRepo) Replace(d domain.Dish) error {
	i := r.indexOf(d.ID)
	if i < 0 {
		return fmt.Errorf("repo.DishRepo.Replace: %w", domain.ErrNotFound)
	}
	r.dishes[i] = d.Clone()
	return nil
}

func (r *memDishRepo) RemoveAt(i int) (domain.Dish, bool) {
	if i < 0 || i >= len(r.dishes) {
		return domain.Dish{}, false
	}
	removed := r.dishes[i]
	r.dishes = slices.Delete(r.dishes, i, i+1)
	return removed, true
}

func (r *memDishRepo) RemoveFunc(match func(domain.Dish) bool) []domain.Dish {
	var removed []domain.Dish
	kept := r.dishes[:0]
	for _, d := range r.dishes {
		if match(d) {
			removed = append(removed, d)
			continue
		}
		kept = append(kept, d)
	}
	clear(r.dishes[len(kept):])
	r.dishes = kept
	return removed
}

func (r *memDishRepo) Len() int {
	return len(r.dishes)
}

func (r *memDishRepo) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.dishes, func(d domain.Dish) bool { return d.ID == id })
}
