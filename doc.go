// Package playwrightmcp exposes a small set of browser-automation actions as
// Model Context Protocol (MCP) tools, served either over stdio for a local
// desktop client or over HTTP with a Server-Sent-Events feed for a
// workflow-automation host.
//
// The repository is organised around four packages:
//   - browser: the single shared playwright session and its lifecycle
//   - tool: the static tool registry and the dispatch/validation boundary
//   - server: the JSON-RPC protocol handler and both transport adapters
//   - runner: flag/environment configuration and process entry point
package playwrightmcp

const (
	// Name identifies the server in MCP handshakes and HTTP metadata.
	Name = "playwright-mcp"

	// Version is the advertised server version.
	Version = "1.0.0"
)
