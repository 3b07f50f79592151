package server

import "net/http"

// applyCORS sets the cross-origin headers on an outgoing response. The allow
// origin is always the login service's own origin, never a wildcard: the
// response can carry an authorization code and must not be readable from
// arbitrary pages.
func applyCORS(w http.ResponseWriter, origin string) {
	h := w.Header()
	h.Set("Content-Type", "text/plain")
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Request-Method", "*")
	h.Set("Access-Control-Allow-Methods", "OPTIONS, POST")
	h.Set("Access-Control-Allow-Headers", "*")
}
