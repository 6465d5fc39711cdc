package request

import (
	"net/http"

	"agegate/pkg/platform/httputil"
)

// BodyLimit caps request bodies at maxBytes. A declared Content-Length over the
// cap is refused with 413 before the handler runs; bodies of unknown length are
// wrapped in http.MaxBytesReader so decoding fails once the cap is passed.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, httputil.ErrorResponse{
					Error:            "request_too_large",
					ErrorDescription: "request body too large",
				})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
