package server

import (
	"context"
	"net/http"
	"time"
)

type httpServer struct {
	addr               string
	keepAlive          time.Duration
	customHTTPHandlers map[string]http.HandlerFunc
	streams            *streamHub
}

// HTTP creates and returns an HTTP server exposing the SSE event stream,
// the command endpoint, health and metadata.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce DNS rebinding risk
		addr = "127.0.0.1:9000"
	}
	if s.keepAlive <= 0 {
		s.keepAlive = 10 * time.Second
	}

	mux := http.NewServeMux()
	for path, handler := range s.customHTTPHandlers {
		mux.Handle(path, handler)
	}
	mux.HandleFunc("/sse", s.handleStream)
	mux.HandleFunc("/mcp", s.handleMessage)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleInfo)

	var middlewareHandlers []Middleware
	middlewareHandlers = append(middlewareHandlers, s.corsHandler)
	chain := ChainMiddlewareHandlers(mux, middlewareHandlers...)

	server := &http.Server{
		Addr:    addr,
		Handler: chain,
	}
	return server
}
