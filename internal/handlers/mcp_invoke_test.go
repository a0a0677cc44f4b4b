package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finnhubmcp/internal/finnhub"
	"finnhubmcp/internal/mcp"
)

// nullMarket answers every upstream call with empty data.
type nullMarket struct{}

func (nullMarket) EarningsCalendar(ctx context.Context, from, to, symbol string) (*finnhub.EarningsCalendarResponse, error) {
	return &finnhub.EarningsCalendarResponse{}, nil
}

func (nullMarket) Quote(ctx context.Context, symbol string) (*finnhub.RawQuote, error) {
	return &finnhub.RawQuote{C: 100, PC: 99}, nil
}

func (nullMarket) CompanyNews(ctx context.Context, symbol, from, to string) ([]finnhub.RawNews, error) {
	return nil, nil
}

func (nullMarket) Profile(ctx context.Context, symbol string) (*finnhub.RawProfile, error) {
	return &finnhub.RawProfile{Ticker: symbol}, nil
}

func (nullMarket) OptionChain(ctx context.Context, symbol, expirationDate string) (*finnhub.OptionChainResponse, error) {
	return &finnhub.OptionChainResponse{}, nil
}

func newTestHandler(t *testing.T) *MCPInvokeHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	executor := mcp.NewToolExecutor(nullMarket{}, logger)
	invoker, err := mcp.NewToolInvoker(executor)
	require.NoError(t, err)
	return NewMCPInvokeHandler(invoker, logger, 5*time.Second)
}

// decodeSSE parses the single JSON-RPC response out of an SSE body.
func decodeSSE(t *testing.T, body string) mcp.JSONRPCResponse {
	t.Helper()
	line := strings.TrimSpace(body)
	require.True(t, strings.HasPrefix(line, "data: "), "unexpected SSE body: %q", body)

	var resp mcp.JSONRPCResponse
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &resp))
	return resp
}

func post(t *testing.T, h http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMCPInvoke_RejectsNonPost(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMCPInvoke_InvalidJSON(t *testing.T) {
	rec := post(t, newTestHandler(t), `{not json`)
	resp := decodeSSE(t, rec.Body.String())
	require.NotNil(t, resp.Error)
	require.Equal(t, mcp.ParseError, resp.Error.Code)
}

func TestMCPInvoke_ToolsList(t *testing.T) {
	rec := post(t, newTestHandler(t), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	resp := decodeSSE(t, rec.Body.String())
	require.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)

	var result mcp.ListToolsResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Tools, 5)
}

func TestMCPInvoke_Initialize(t *testing.T) {
	rec := post(t, newTestHandler(t), `{"jsonrpc":"2.0","id":"init-1","method":"initialize"}`)
	resp := decodeSSE(t, rec.Body.String())
	require.Nil(t, resp.Error)
	require.Equal(t, "init-1", resp.ID)
}

func TestMCPInvoke_UnknownMethod(t *testing.T) {
	rec := post(t, newTestHandler(t), `{"jsonrpc":"2.0","id":2,"method":"resources/list"}`)
	resp := decodeSSE(t, rec.Body.String())
	require.NotNil(t, resp.Error)
	require.Equal(t, mcp.MethodNotFound, resp.Error.Code)
}

func TestMCPInvoke_ToolCallSuccess(t *testing.T) {
	rec := post(t, newTestHandler(t),
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"stock.profile","arguments":{"symbol":"AAPL"}}}`)
	resp := decodeSSE(t, rec.Body.String())
	require.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)

	var result mcp.CallToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	require.Contains(t, result.Content[0].Text, `"ticker":"AAPL"`)
}

func TestMCPInvoke_UnknownToolIsResultEnvelopeNotRPCError(t *testing.T) {
	rec := post(t, newTestHandler(t),
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nope","arguments":{}}}`)
	resp := decodeSSE(t, rec.Body.String())
	require.Nil(t, resp.Error, "tool-level failures ride inside the result")

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)

	var result mcp.CallToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.True(t, result.IsError)
	require.Contains(t, result.Content[0].Text, "Unknown tool: nope")
}

func TestMCPInvoke_MissingToolName(t *testing.T) {
	rec := post(t, newTestHandler(t),
		`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"arguments":{}}}`)
	resp := decodeSSE(t, rec.Body.String())
	require.NotNil(t, resp.Error)
	require.Equal(t, mcp.InvalidParams, resp.Error.Code)
}

func TestCorrelationIDMiddleware(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	CorrelationIDMiddleware(inner).ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get("X-Correlation-ID"))

	// Caller-supplied IDs are honored.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	rec = httptest.NewRecorder()
	CorrelationIDMiddleware(inner).ServeHTTP(rec, req)
	require.Equal(t, "abc-123", seen)
}
