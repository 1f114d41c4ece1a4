package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewHTTPHandler creates a simple HTTP handler for JSON-RPC requests.
// Bearer tokens are resolved at the HTTP layer; each request gets a
// server bound to the resolved tenant.
func NewHTTPHandler(cfg Config) http.Handler {
	return &httpHandler{cfg: cfg}
}

type httpHandler struct {
	cfg Config
}

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
	ID      any           `json:"id,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenantID, err := h.resolveTenant(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, -32700, "Parse error", nil, nil)
		return
	}

	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, -32700, "Parse error", nil, nil)
		return
	}

	// A fresh server per request, with the tenant already bound, keeps
	// the bridge stateless.
	tenantCfg := h.cfg
	tenantCfg.AuthEnabled = false
	tenantCfg.DefaultTenant = tenantID
	server := NewServer(tenantCfg)

	// Use in-memory transport to call the SDK server
	t1, t2 := sdkmcp.NewInMemoryTransports()

	session, err := server.Connect(r.Context(), t1, nil)
	if err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), nil, req.ID)
		return
	}
	defer session.Close()

	conn, err := t2.Connect(r.Context())
	if err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), nil, req.ID)
		return
	}
	defer conn.Close()

	reqID, err := jsonrpc.MakeID(req.ID)
	if err != nil {
		h.writeError(w, -32600, fmt.Sprintf("Invalid request: %v", err), nil, req.ID)
		return
	}

	// Each request gets a fresh server session, so the bridge performs
	// the MCP initialize handshake itself before forwarding anything the
	// lifecycle says must come after initialization.
	if req.Method != "initialize" {
		if err := h.initializeConn(r.Context(), conn); err != nil {
			h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), nil, req.ID)
			return
		}
	}

	if err := conn.Write(r.Context(), &jsonrpc.Request{
		ID:     reqID,
		Method: req.Method,
		Params: req.Params,
	}); err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), nil, req.ID)
		return
	}

	msg, err := conn.Read(r.Context())
	if err != nil {
		h.writeError(w, -32603, fmt.Sprintf("Internal error: %v", err), nil, req.ID)
		return
	}

	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		h.writeError(w, -32603, "Internal error: unexpected message from server", nil, req.ID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jsonrpcResponse{
		JSONRPC: "2.0",
		Result:  resp.Result,
		Error:   convertSDKError(resp.Error),
		ID:      resp.ID.Raw(),
	})
}

// initializeConn runs the initialize + notifications/initialized exchange
// on a freshly connected session so a forwarded request is valid.
func (h *httpHandler) initializeConn(ctx context.Context, conn sdkmcp.Connection) error {
	initParams, err := json.Marshal(map[string]any{
		"protocolVersion": "2025-03-26",
		"capabilities":    map[string]any{},
		"clientInfo": map[string]any{
			"name":    "smallbizpal-http-bridge",
			"version": "1.0.0",
		},
	})
	if err != nil {
		return err
	}
	initID, err := jsonrpc.MakeID("_bridge_init")
	if err != nil {
		return err
	}
	if err := conn.Write(ctx, &jsonrpc.Request{
		ID:     initID,
		Method: "initialize",
		Params: initParams,
	}); err != nil {
		return err
	}
	msg, err := conn.Read(ctx)
	if err != nil {
		return err
	}
	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		return fmt.Errorf("unexpected message during initialize")
	}
	if resp.Error != nil {
		return fmt.Errorf("initialize failed: %w", resp.Error)
	}
	return conn.Write(ctx, &jsonrpc.Request{
		Method: "notifications/initialized",
	})
}

func (h *httpHandler) resolveTenant(r *http.Request) (string, error) {
	if !h.cfg.AuthEnabled {
		return h.cfg.DefaultTenant, nil
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", fmt.Errorf("missing bearer token")
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	tenantID, err := h.cfg.Resolver.ResolveTenant(r.Context(), token)
	if err != nil {
		return "", err
	}
	if tenantID == "" {
		return "", fmt.Errorf("token resolved to empty tenant")
	}
	return tenantID, nil
}

func (h *httpHandler) writeError(w http.ResponseWriter, code int, message string, data any, id any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors are still 200 OK
	json.NewEncoder(w).Encode(jsonrpcResponse{
		JSONRPC: "2.0",
		Error: &jsonrpcError{
			Code:    code,
			Message: message,
			Data:    data,
		},
		ID: id,
	})
}

func convertSDKError(err error) *jsonrpcError {
	if err == nil {
		return nil
	}
	if wire, ok := err.(*jsonrpc.Error); ok {
		return &jsonrpcError{
			Code:    int(wire.Code),
			Message: wire.Message,
			Data:    wire.Data,
		}
	}
	return &jsonrpcError{
		Code:    -32603,
		Message: err.Error(),
	}
}
