package server

import (
	"net/http"
	"time"

	"github.com/viant/mcp-protocol/schema"

	"github.com/autobrowse/playwright-mcp/tool"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithRegistry sets the tool registry served over every transport.
func WithRegistry(registry *tool.Registry) Option {
	return func(s *Server) error {
		s.registry = registry
		return nil
	}
}

// WithCORS adds a new CORS handler to the server.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		handler := &corsHandler{Cors: cors}
		s.corsHandler = handler.Middleware
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets the instructions returned from initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		s.instructions = &instructions
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithProtocolVersion overrides the negotiated protocol version.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithAddr sets the default HTTP listen address.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithKeepAliveInterval sets the SSE heartbeat interval.
func WithKeepAliveInterval(interval time.Duration) Option {
	return func(s *Server) error {
		s.keepAlive = interval
		return nil
	}
}

// WithCustomHTTPHandler mounts handler at path on the HTTP transport.
func WithCustomHTTPHandler(path string, handler http.HandlerFunc) Option {
	return func(s *Server) error {
		if s.customHTTPHandlers == nil {
			s.customHTTPHandlers = make(map[string]http.HandlerFunc)
		}
		s.customHTTPHandlers[path] = handler
		return nil
	}
}
