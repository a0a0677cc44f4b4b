package mcp

import (
	"errors"
	"fmt"

	"finnhubmcp/internal/finnhub"
)

// Error kinds reported in tool error envelopes.
const (
	KindValidation = "ValidationError"
	KindUpstream   = "UpstreamError"
	KindInternal   = "InternalError"
)

// ErrorEnvelope is the uniform tool-failure payload. For an unknown tool
// the Error field carries the full message and Message stays empty.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// EnvelopeFromError classifies a tool fault into its envelope. Validation
// failures surface the violated field/rule verbatim; upstream failures
// carry status and body text when the provider sent any.
func EnvelopeFromError(err error) ErrorEnvelope {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ErrorEnvelope{Error: KindValidation, Message: ve.Error()}
	}

	var ue *finnhub.UpstreamError
	if errors.As(err, &ue) {
		return ErrorEnvelope{Error: KindUpstream, Message: ue.Error()}
	}

	return ErrorEnvelope{Error: KindInternal, Message: err.Error()}
}

// UnknownToolEnvelope is the envelope for an unresolvable tool name.
func UnknownToolEnvelope(name string) ErrorEnvelope {
	return ErrorEnvelope{Error: fmt.Sprintf("Unknown tool: %s", name)}
}

// FormatMCPError maps protocol-level faults (malformed requests, unknown
// methods) onto JSON-RPC error objects. Tool-level faults never reach this
// path; the dispatcher folds them into result envelopes.
func FormatMCPError(err error) *RPCError {
	if rpcErr, ok := err.(*RPCError); ok {
		return rpcErr
	}
	return &RPCError{
		Code:    InternalError,
		Message: fmt.Sprintf("Internal error: %s", err.Error()),
	}
}
