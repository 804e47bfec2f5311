package middleware

import "net/http"

// tooLargeBody matches the JSON error shape the API uses everywhere else.
const tooLargeBody = `{"error":{"code":"body_too_large","message":"request body too large"}}` + "\n"

// NewMaxBodySizeHandler returns a middleware that caps request bodies at
// limit bytes. A request whose Content-Length already exceeds the cap is
// answered with 413 without reaching next. Otherwise the body is wrapped in
// http.MaxBytesReader, so a handler that reads past the cap gets a
// *http.MaxBytesError and reports 413 itself.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(tooLargeBody))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
