package http

import "net/http"

// withCORS answers browser cross-origin requests for the configured origins.
// Only exact origin matches are allowed; no wildcard reflection.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(h.serverConfig.CORSAllowedOrigins))
	for _, origin := range h.serverConfig.CORSAllowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Trace-ID")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
