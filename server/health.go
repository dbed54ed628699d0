package server

import (
	"net/http"
	"time"
)

// handleHealth serves GET /health. It reports transport liveness only and
// never touches the browser, so it stays responsive while commands run.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleInfo serves GET / with server metadata; any other unmatched path is
// a 404.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":            s.info.Name,
		"version":         s.info.Version,
		"protocolVersion": s.protocolVersion,
		"toolCount":       s.registry.Len(),
		"endpoints": map[string]string{
			"sse":     "/sse",
			"command": "/mcp",
			"health":  "/health",
		},
	})
}
