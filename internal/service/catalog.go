// Package service contains the business logic for the WhatToEat API.
// Services filter, pick, and orchestrate repo calls; storage details live
// behind the repo interfaces.
package service

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/picker"
	"github.com/pkordes/whattoeat/internal/repo"
)

// Publisher receives catalog change events. *events.Broker satisfies it.
type Publisher interface {
	Publish(e domain.Event)
}

// CatalogService owns the dish catalog and the roll history.
//
// Every method runs to completion under one mutex, so concurrent callers
// observe the same one-at-a-time behaviour a single UI thread would give.
// Events are published after the mutex is released.
type CatalogService struct {
	mu      sync.Mutex
	dishes  repo.DishRepo
	history repo.HistoryRepo
	src     picker.Source
	pub     Publisher
	log     *slog.Logger
	now     func() time.Time
	seq     uint64
}

// NewCatalogService constructs a CatalogService.
// pub may be nil when nobody listens for changes; log may be nil to use slog.Default.
func NewCatalogService(dishes repo.DishRepo, history repo.HistoryRepo, src picker.Source, pub Publisher, log *slog.Logger) *CatalogService {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogService{
		dishes:  dishes,
		history: history,
		src:     src,
		pub:     pub,
		log:     log,
		now:     time.Now,
	}
}

// Add inserts d at the front of the catalog and returns it.
func (s *CatalogService) Add(d domain.Dish) domain.Dish {
	s.mu.Lock()
	s.dishes.Prepend(d)
	e := s.event(domain.EventDishAdded, &d)
	s.mu.Unlock()

	s.log.Debug("dish added", "id", d.ID, "name", d.Name)
	s.publish(e)
	return d
}

// Get returns the dish with the given ID.
func (s *CatalogService) Get(id uuid.UUID) (domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.dishes.Get(id)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("service.CatalogService.Get: %w", err)
	}
	return d, nil
}

// Replace overwrites the name, tags, and image of the dish with d.ID.
// History entries recorded earlier keep their old values.
func (s *CatalogService) Replace(d domain.Dish) (domain.Dish, error) {
	s.mu.Lock()
	if err := s.dishes.Replace(d); err != nil {
		s.mu.Unlock()
		return domain.Dish{}, fmt.Errorf("service.CatalogService.Replace: %w", err)
	}
	e := s.event(domain.EventDishUpdated, &d)
	s.mu.Unlock()

	s.log.Debug("dish updated", "id", d.ID, "name", d.Name)
	s.publish(e)
	return d, nil
}

// RemoveAt deletes the dish at catalog index i. An out-of-range index is a
// silent no-op reported by ok=false.
func (s *CatalogService) RemoveAt(i int) (ok bool) {
	s.mu.Lock()
	removed, ok := s.dishes.RemoveAt(i)
	var e domain.Event
	if ok {
		e = s.event(domain.EventDishRemoved, &removed)
	}
	s.mu.Unlock()

	if ok {
		s.log.Debug("dish removed", "index", i, "id", removed.ID)
		s.publish(e)
	}
	return ok
}

// RemoveByID deletes the dish with the given ID.
func (s *CatalogService) RemoveByID(id uuid.UUID) error {
	removed := s.RemoveWhere(func(d domain.Dish) bool { return d.ID == id })
	if removed == 0 {
		return fmt.Errorf("service.CatalogService.RemoveByID: %w", domain.ErrNotFound)
	}
	return nil
}

// RemoveWhere deletes every dish for which match returns true and reports
// how many were removed. One dish_removed event is published per dish.
func (s *CatalogService) RemoveWhere(match func(domain.Dish) bool) int {
	s.mu.Lock()
	removed := s.dishes.RemoveFunc(match)
	evs := make([]domain.Event, len(removed))
	for i := range removed {
		evs[i] = s.event(domain.EventDishRemoved, &removed[i])
	}
	s.mu.Unlock()

	for _, e := range evs {
		s.log.Debug("dish removed", "id", e.Dish.ID)
		s.publish(e)
	}
	return len(removed)
}

// List returns the whole catalog in order.
func (s *CatalogService) List() []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dishes.List()
}

// Matching returns the dishes that pass f, in catalog order.
// The zero Filter returns the whole catalog.
func (s *CatalogService) Matching(f domain.Filter) []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matching(f)
}

// MatchingPaged returns one page of the dishes that pass f and the total
// number of matches.
func (s *CatalogService) MatchingPaged(f domain.Filter, p domain.PaginationParams) ([]domain.Dish, int) {
	all := s.Matching(f)
	start, end := p.Window(len(all))
	return all[start:end], len(all)
}

// Tags returns every distinct tag in the catalog, sorted.
func (s *CatalogService) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := []string{}
	for _, d := range s.dishes.List() {
		tags = append(tags, d.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// Roll picks one dish uniformly at random from those matching f and records
// it at the front of the history. ok is false when nothing matches; the
// history is then left untouched.
func (s *CatalogService) Roll(f domain.Filter) (dish domain.Dish, ok bool) {
	s.mu.Lock()
	dish, ok = picker.Pick(s.src, s.matching(f))
	var e domain.Event
	if ok {
		s.history.Prepend(dish)
		e = s.event(domain.EventRolled, &dish)
	} else {
		e = s.event(domain.EventRollMissed, nil)
	}
	s.mu.Unlock()

	s.log.Debug("roll", "keyword", f.Keyword, "tags", f.Tags, "matched", ok)
	s.publish(e)
	return dish, ok
}

// History returns up to limit past roll results, most recent first.
// A limit of zero or less returns them all.
func (s *CatalogService) History(limit int) []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List(limit)
}

// ClearHistory empties the roll history.
func (s *CatalogService) ClearHistory() {
	s.mu.Lock()
	n := s.history.Clear()
	e := s.event(domain.EventHistoryCleared, nil)
	s.mu.Unlock()

	s.log.Debug("history cleared", "entries", n)
	s.publish(e)
}

// matching must be called with s.mu held.
func (s *CatalogService) matching(f domain.Filter) []domain.Dish {
	all := s.dishes.List()
	if f.IsEmpty() {
		return all
	}
	out := make([]domain.Dish, 0, len(all))
	for _, d := range all {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// event must be called with s.mu held so the sizes and Seq are consistent.
func (s *CatalogService) event(t domain.EventType, d *domain.Dish) domain.Event {
	s.seq++
	e := domain.Event{
		Seq:         s.seq,
		Type:        t,
		CatalogSize: s.dishes.Len(),
		HistorySize: s.history.Len(),
		At:          s.now().UTC(),
	}
	if d != nil {
		c := d.Clone()
		e.Dish = &c
	}
	return e
}

func (s *CatalogService) publish(e domain.Event) {
	if s.pub != nil {
		s.pub.Publish(e)
	}
}
