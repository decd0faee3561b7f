package web

import (
	"net/http"
	"strings"
)

// HTTPProtocolMiddleware keeps browsers on HTTP/1.1 semantics for the event
// stream and stops proxies from caching board fragments
func HTTPProtocolMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Disable HTTP/3 QUIC protocol advertising globally
		w.Header().Set("Alt-Svc", "clear")

		switch {
		case strings.HasPrefix(r.URL.Path, "/events"):
			w.Header().Set("Cache-Control", "no-cache, no-transform")
			w.Header().Set("X-Content-Type-Options", "nosniff")
		case strings.HasPrefix(r.URL.Path, "/partial/"):
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}

// WrapMuxWithMiddleware wraps an HTTP mux with the protocol middleware
func WrapMuxWithMiddleware(mux *http.ServeMux) http.Handler {
	return HTTPProtocolMiddleware(mux)
}
