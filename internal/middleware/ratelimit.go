package middleware

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// rateLimitedBody matches the JSON error shape the API uses everywhere else.
const rateLimitedBody = `{"error":{"code":"rate_limited","message":"too many requests"}}` + "\n"

// NewRateLimitHandler returns a middleware that admits at most rps requests
// per second on average, with bursts of up to burst requests, across all
// clients. Excess requests get 429 Too Many Requests with a Retry-After hint.
// A non-positive rps disables limiting.
func NewRateLimitHandler(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(rateLimitedBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
