// Package server exposes the browser tool catalog over MCP transports:
// stdio JSON-RPC and HTTP with an SSE event stream.
package server

import (
	"context"
	"errors"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcp-protocol/syncmap"

	"github.com/autobrowse/playwright-mcp/tool"
)

// Server holds the protocol state shared by every transport: the tool
// registry, dispatch, active request bookkeeping and HTTP wiring.
type Server struct {
	activeContexts *syncmap.Map[int, *activeContext]
	capabilities   schema.ServerCapabilities
	info           schema.Implementation
	registry       *tool.Registry
	dispatcher     *tool.Dispatcher

	instructions    *string
	protocolVersion string
	loggerName      string

	corsHandler Middleware

	stdioServer
	httpServer
}

func (s *Server) cancelOperation(id int) {
	if active, ok := s.activeContexts.Get(id); ok {
		active.CancelFunc()
		s.activeContexts.Delete(id)
	}
}

// Registry exposes the tool catalog backing this server.
func (s *Server) Registry() *tool.Registry {
	return s.registry
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:       s,
		Notifier:     notifier,
		loggingLevel: schema.Info,
	}
	ret.Logger = NewLogger(s.loggerName, &ret.loggingLevel, notifier)
	return ret
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		capabilities: schema.ServerCapabilities{
			Tools: &schema.ServerCapabilitiesTools{},
		},
		info: schema.Implementation{
			Name:    "playwright-mcp",
			Version: "0.1",
		},
		loggerName:      "playwright-mcp",
		protocolVersion: schema.LatestProtocolVersion,
		activeContexts:  syncmap.NewMap[int, *activeContext](),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.registry == nil {
		return nil, errors.New("no tool registry specified")
	}
	s.dispatcher = tool.NewDispatcher(s.registry)
	if s.corsHandler == nil {
		handler := &corsHandler{Cors: defaultCors()}
		s.corsHandler = handler.Middleware
	}
	s.streams = newStreamHub()
	return s, nil
}
