package server

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/crypto/acme/autocert"
)

// Server serves the HTTP API, with TLS certificates managed by autocert
// unless TLS is disabled for local development.
type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

func (s *Server) Run(_ context.Context) error {
	if s.TLSDisabled {
		return http.ListenAndServe(fmt.Sprintf(":%d", s.TLSDisabledPort), s.Router)
	}

	return http.Serve(autocert.NewListener(s.AutocertHostnames...), s.Router)
}
