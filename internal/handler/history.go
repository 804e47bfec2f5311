package handler

import "net/http"

// ListHistory handles GET /history. Entries are most recent first;
// ?limit= caps how many are returned; 0 or absent means all.
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := optionalInt(r, "limit")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, paramBody(err))
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}
	writeJSON(w, http.StatusOK, DishList{Data: dishesToResponse(s.catalog.History(n))})
}

// ClearHistory handles DELETE /history.
func (s *Server) ClearHistory(w http.ResponseWriter, _ *http.Request) {
	s.catalog.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}
