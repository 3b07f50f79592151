package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
)

// loopbackAddr binds to the local loopback interface with an OS-assigned
// port. Loopback-only is a security boundary: only a browser on this machine
// may reach the callback endpoint.
const loopbackAddr = "127.0.0.1:0"

// Server is a short-lived loopback HTTP listener serving one login attempt.
type Server struct {
	http *http.Server
	ln   net.Listener
}

// Start binds the loopback listener and begins serving handler. It returns
// once the listener is bound, so Addr is immediately usable. A bind failure
// is fatal to the login attempt; there is no port retry.
func Start(handler http.Handler) (*Server, error) {
	ln, err := net.Listen("tcp", loopbackAddr)
	if err != nil {
		return nil, fmt.Errorf("bind callback listener: %w", err)
	}

	s := &Server{
		http: &http.Server{Handler: handler},
		ln:   ln,
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Msg("Callback server stopped unexpectedly")
		}
	}()

	log.Debug().Str("addr", s.Addr()).Msg("callback server listening")
	return s, nil
}

// Addr returns the bound host:port.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// URL returns the callback URL to hand to the identity provider.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// Shutdown stops the listener. Called by the owner of the login attempt once
// the callback has resolved or the deadline expired.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
