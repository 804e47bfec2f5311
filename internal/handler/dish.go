package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/whattoeat/internal/domain"
)

// ListDishes handles GET /dishes.
// ?q= filters by keyword, repeated ?tag= requires every listed tag, and
// ?page= / ?limit= page the result (defaults: page=1, limit=20, max=100).
func (s *Server) ListDishes(w http.ResponseWriter, r *http.Request) {
	f, err := filterParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}
	p, err := pageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}

	dishes, total := s.catalog.MatchingPaged(f, p)
	writeJSON(w, http.StatusOK, DishPage{
		Data: dishesToResponse(dishes),
		Pagination: Pagination{
			Page:  p.Page,
			Limit: p.Limit,
			Total: total,
		},
	})
}

// CreateDish handles POST /dishes. The new dish goes to the front of the catalog.
func (s *Server) CreateDish(w http.ResponseWriter, r *http.Request) {
	var body DishRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created := s.catalog.Add(requestToDish(body))
	writeJSON(w, http.StatusCreated, dishToResponse(created))
}

// GetDish handles GET /dishes/{id}.
func (s *Server) GetDish(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dishToResponse(d))
}

// UpdateDish handles PUT /dishes/{id}: a full replacement of name, tags, and image.
func (s *Server) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}
	var body DishRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	d := requestToDish(body)
	d.ID = id
	updated, err := s.catalog.Replace(d)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("dish not found"))
			return
		}
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishToResponse(updated))
}

// DeleteDish handles DELETE /dishes/{id}.
func (s *Server) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}
	if err := s.catalog.RemoveByID(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("dish not found"))
			return
		}
		writeInternalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDishAt handles DELETE /dishes/at/{index}.
// An index outside the catalog is a no-op and still answers 204.
func (s *Server) DeleteDishAt(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}
	s.catalog.RemoveAt(index)
	w.WriteHeader(http.StatusNoContent)
}

// GetSearchURL handles GET /dishes/{id}/search-url.
// When no link can be built the response is 204 with no body.
func (s *Server) GetSearchURL(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	link, ok := d.SearchURL()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, SearchLink{URL: link})
}

// RedirectToSearch handles GET /dishes/{id}/search by redirecting the
// browser to the dish's external search page.
func (s *Server) RedirectToSearch(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r)
	if !ok {
		return
	}
	link, ok := d.SearchURL()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}

// lookup binds {id} and fetches the dish, writing the error response itself
// when that fails.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (domain.Dish, bool) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return domain.Dish{}, false
	}
	d, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("dish not found"))
			return domain.Dish{}, false
		}
		writeInternalError(w, r, err)
		return domain.Dish{}, false
	}
	return d, true
}
