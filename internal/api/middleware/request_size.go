package middleware

import "net/http"

// DefaultMaxBodyBytes caps request bodies at 1 MiB; every payload this API
// accepts is far smaller.
const DefaultMaxBodyBytes = 1 << 20

// RequestSizeLimit rejects oversized request bodies. The cap is enforced
// lazily by MaxBytesReader, so a too-large body surfaces as a decode error
// inside the handler.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
