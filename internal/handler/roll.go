package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/whattoeat/internal/domain"
)

// Roll handles POST /roll.
// The body is optional; without one every dish is a candidate. A roll with
// no candidates is not an error: the response is 200 with a null dish and
// NoMatchMessage, and the history is left as it was.
func (s *Server) Roll(w http.ResponseWriter, r *http.Request) {
	var body RollRequest
	if err := decodeJSON(r, &body); err != nil && !errors.Is(err, errBodyRequired) {
		writeDecodeError(w, err)
		return
	}

	f := domain.Filter{Keyword: body.Keyword, Tags: domain.NormalizeTags(body.Tags)}
	d, ok := s.catalog.Roll(f)
	if !ok {
		writeJSON(w, http.StatusOK, RollResponse{Message: NoMatchMessage})
		return
	}
	resp := dishToResponse(d)
	writeJSON(w, http.StatusOK, RollResponse{Dish: &resp})
}
