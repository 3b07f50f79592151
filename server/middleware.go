package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// requestLogger tags every callback request with a correlation id. The
// loopback server only ever sees a handful of requests, so logging all of
// them at debug level is cheap and makes failed login attempts traceable.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("callback request")
		next.ServeHTTP(w, r)
	})
}
