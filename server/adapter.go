package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type nopNotifier struct{}

func (n *nopNotifier) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	return nil
}

// Adapter drives a Handler in process, exercising the same dispatch path as
// the wire transports without a socket.
type Adapter struct {
	handler *Handler
	nextID  int
}

// NewAdapter creates a new adapter for the given server
func NewAdapter(srv *Server) *Adapter {
	return &Adapter{handler: srv.newHandler(context.Background(), &nopNotifier{})}
}

func (a *Adapter) serve(ctx context.Context, method string, params interface{}, result interface{}) error {
	req, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return err
	}
	a.nextID++
	req.Id = a.nextID
	response := &jsonrpc.Response{}
	a.handler.Serve(ctx, req, response)
	if response.Error != nil {
		return response.Error
	}
	return json.Unmarshal(response.Result, result)
}

// Initialize initializes the client
func (a *Adapter) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	var result schema.InitializeResult
	if err := a.serve(ctx, schema.MethodInitialize, &schema.InitializeRequestParams{}, &result); err != nil {
		return nil, err
	}
	a.handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized})
	return &result, nil
}

// Ping pings the server
func (a *Adapter) Ping(ctx context.Context) (*schema.PingResult, error) {
	var result schema.PingResult
	if err := a.serve(ctx, schema.MethodPing, &schema.PingRequestParams{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTools lists tools
func (a *Adapter) ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error) {
	var result schema.ListToolsResult
	params := &schema.ListToolsRequestParams{Cursor: cursor}
	if err := a.serve(ctx, schema.MethodToolsList, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CallTool calls a tool
func (a *Adapter) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	var result schema.CallToolResult
	if err := a.serve(ctx, schema.MethodToolsCall, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetLevel sets the logging level
func (a *Adapter) SetLevel(ctx context.Context, params *schema.SetLevelRequestParams) (*schema.SetLevelResult, error) {
	var result schema.SetLevelResult
	if err := a.serve(ctx, schema.MethodLoggingSetLevel, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
