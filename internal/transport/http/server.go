package httptransport

import (
	"net/http"
	"time"
)

// ServerConfig contains tunables for the HTTP server. Export uploads can be
// large and slow, so the read deadline applies to headers only; the body
// read is bounded by the handler's processing timeout instead.
type ServerConfig struct {
	Address           string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// NewServer creates *http.Server with provided handler.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
