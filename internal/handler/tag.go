package handler

import "net/http"

// ListTags handles GET /tags.
// Returns every distinct tag in the catalog in lexicographic order.
func (s *Server) ListTags(w http.ResponseWriter, _ *http.Request) {
	tags := s.catalog.Tags()
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, TagList{Data: tags})
}
