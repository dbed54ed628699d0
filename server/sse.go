package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/viant/mcp-protocol/syncmap"
)

// streamEvent is one server-sent event: a name and a JSON payload.
type streamEvent struct {
	name string
	data []byte
}

// streamConn is a single SSE subscriber. Events are buffered; a subscriber
// that stops draining loses events rather than blocking command handling.
type streamConn struct {
	id     string
	events chan *streamEvent
}

func (c *streamConn) publish(event *streamEvent) {
	select {
	case c.events <- event:
	default:
	}
}

type streamHub struct {
	connections *syncmap.Map[string, *streamConn]
}

func newStreamHub() *streamHub {
	return &streamHub{connections: syncmap.NewMap[string, *streamConn]()}
}

// publish delivers the event to the connection registered under id; events
// for unknown or already-closed streams are dropped.
func (h *streamHub) publish(id, name string, payload interface{}) {
	conn, ok := h.connections.Get(id)
	if !ok {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	conn.publish(&streamEvent{name: name, data: data})
}

// handleStream serves GET /sse: an event stream opening with init and tools
// events, then heartbeats until the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	conn := &streamConn{
		id:     uuid.New().String(),
		events: make(chan *streamEvent, 32),
	}
	s.streams.connections.Put(conn.id, conn)
	defer s.streams.connections.Delete(conn.id)

	writeEvent(w, flusher, "init", mustJSON(map[string]interface{}{
		"type":            "init",
		"streamId":        conn.id,
		"server":          s.info.Name,
		"version":         s.info.Version,
		"protocolVersion": s.protocolVersion,
		"capabilities":    s.capabilities,
	}))
	writeEvent(w, flusher, "tools", mustJSON(map[string]interface{}{
		"type":  "tools",
		"tools": s.registry.Tools(),
	}))

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-conn.events:
			writeEvent(w, flusher, event.name, event.data)
		case <-ticker.C:
			writeEvent(w, flusher, "heartbeat", mustJSON(map[string]interface{}{
				"type":      "heartbeat",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			}))
		}
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, name string, data []byte) {
	fmt.Fprintf(w, "event: %v\ndata: %s\n\n", name, data)
	flusher.Flush()
}

func mustJSON(payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return []byte("{}")
	}
	return data
}
