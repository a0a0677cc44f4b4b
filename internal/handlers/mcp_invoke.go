package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"finnhubmcp/internal/mcp"
)

const serverName = "finnhub-mcp-server"
const serverVersion = "1.0.0"

// MCPInvokeHandler serves the MCP JSON-RPC surface over SSE: initialize,
// ping, tools/list and tools/call.
type MCPInvokeHandler struct {
	invoker     *mcp.ToolInvoker
	logger      *slog.Logger
	callTimeout time.Duration
}

// NewMCPInvokeHandler wires the dispatcher into an HTTP handler. The call
// timeout bounds one tool call including its upstream fan-out; cancelling
// it abandons outstanding upstream requests.
func NewMCPInvokeHandler(invoker *mcp.ToolInvoker, logger *slog.Logger, callTimeout time.Duration) *MCPInvokeHandler {
	return &MCPInvokeHandler{
		invoker:     invoker,
		logger:      logger.With("handler", "mcp_invoke"),
		callTimeout: callTimeout,
	}
}

// ServeHTTP handles POST /mcp requests.
func (h *MCPInvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	correlationID := GetCorrelationID(r.Context())

	sseWriter, err := mcp.NewSSEWriter(w)
	if err != nil {
		h.logger.Error("sse_init_failed", "error", err, "correlation_id", correlationID)
		http.Error(w, "SSE initialization failed", http.StatusInternalServerError)
		return
	}

	req, err := mcp.ParseJSONRPCRequest(r.Body)
	if err != nil {
		rpcErr := mcp.FormatMCPError(err)
		sseWriter.SendError(nil, rpcErr.Code, rpcErr.Message, rpcErr.Data)
		return
	}

	switch req.Method {
	case "initialize":
		sseWriter.SendResult(req.ID, map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"serverInfo": map[string]string{
				"name":    serverName,
				"version": serverVersion,
			},
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
		})

	case "ping":
		sseWriter.SendResult(req.ID, map[string]interface{}{})

	case "tools/list":
		sseWriter.SendResult(req.ID, mcp.ListToolsResult{Tools: mcp.Tools()})

	case "tools/call", "call_tool":
		h.handleToolCall(r.Context(), sseWriter, req, correlationID)

	default:
		sseWriter.SendError(req.ID, mcp.MethodNotFound, "Unknown method", req.Method)
	}
}

func (h *MCPInvokeHandler) handleToolCall(ctx context.Context, sseWriter *mcp.SSEWriter, req *mcp.JSONRPCRequest, correlationID string) {
	toolParams, err := mcp.ParseCallToolParams(req.Params)
	if err != nil {
		rpcErr := mcp.FormatMCPError(err)
		sseWriter.SendError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data)
		return
	}

	mcp.LogToolRequest(ctx, h.logger, toolParams.Name, correlationID)

	callCtx, cancel := context.WithTimeout(ctx, h.callTimeout)
	defer cancel()

	start := time.Now()
	result := h.invoker.InvokeTool(callCtx, toolParams.Name, toolParams.Arguments)
	latencyMS := time.Since(start).Milliseconds()

	if result.IsError {
		mcp.LogToolError(ctx, h.logger, toolParams.Name, correlationID, errorKind(result), latencyMS)
	} else {
		mcp.LogToolSuccess(ctx, h.logger, toolParams.Name, correlationID, latencyMS)
	}

	sseWriter.SendResult(req.ID, result)
}

// errorKind extracts the envelope's error kind for logging.
func errorKind(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	var envelope mcp.ErrorEnvelope
	if err := json.Unmarshal([]byte(result.Content[0].Text), &envelope); err != nil {
		return ""
	}
	return envelope.Error
}
