package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// streamNotifier routes per-request notifications to the SSE connection the
// caller named, or drops them when no stream was named.
type streamNotifier struct {
	hub      *streamHub
	streamID string
}

func (n *streamNotifier) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	if n.streamID == "" {
		return nil
	}
	n.hub.publish(n.streamID, "message", notification)
	return nil
}

// handleMessage serves POST /mcp: one JSON-RPC exchange per request. The
// response always comes back on the POST; tool call results are additionally
// published to the caller's SSE stream when one is named via the X-Stream-Id
// header or the stream query parameter.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	streamID := r.Header.Get("X-Stream-Id")
	if streamID == "" {
		streamID = r.URL.Query().Get("stream")
	}

	request := &jsonrpc.Request{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		writeJSON(w, http.StatusBadRequest, &jsonrpc.Response{
			Jsonrpc: jsonrpc.Version,
			Error:   jsonrpc.NewParsingError(err.Error(), nil),
		})
		return
	}

	handler := s.newHandler(r.Context(), &streamNotifier{hub: s.streams, streamID: streamID})

	if request.Id == nil {
		notification := &jsonrpc.Notification{
			Jsonrpc: request.Jsonrpc,
			Method:  request.Method,
			Params:  request.Params,
		}
		handler.OnNotification(r.Context(), notification)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: request.Id}
	handler.Serve(r.Context(), request, response)

	if request.Method == schema.MethodToolsCall && streamID != "" {
		s.streams.publish(streamID, "result", response)
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
