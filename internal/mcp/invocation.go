package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolInvoker is the dispatcher: it resolves a tool name, validates the
// argument bag against the tool's schema, runs the orchestrator and folds
// every outcome — success or failure — into a well-formed CallToolResult.
// Nothing propagates past it.
type ToolInvoker struct {
	executor   *ToolExecutor
	validators map[string]*SchemaValidator
}

// NewToolInvoker compiles all tool schemas and wires them to the executor.
func NewToolInvoker(executor *ToolExecutor) (*ToolInvoker, error) {
	validators, err := NewToolValidators()
	if err != nil {
		return nil, err
	}
	return &ToolInvoker{
		executor:   executor,
		validators: validators,
	}, nil
}

// InvokeTool runs one tool call end to end. An unrecognized tool name or a
// validation failure is answered without any network contact.
func (ti *ToolInvoker) InvokeTool(ctx context.Context, name string, args map[string]interface{}) *CallToolResult {
	validator, ok := ti.validators[name]
	if !ok {
		return errorResult(UnknownToolEnvelope(name))
	}

	if err := validator.Validate(args); err != nil {
		return errorResult(EnvelopeFromError(err))
	}

	payload, err := ti.execute(ctx, name, args)
	if err != nil {
		return errorResult(EnvelopeFromError(err))
	}
	return successResult(payload)
}

func (ti *ToolInvoker) execute(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case ToolEarningsCalendar:
		return ti.executor.ExecuteEarningsCalendar(ctx, ParseEarningsArgs(args))
	case ToolQuote:
		return ti.executor.ExecuteQuotes(ctx, ParseQuotesArgs(args))
	case ToolNews:
		return ti.executor.ExecuteNews(ctx, ParseNewsArgs(args))
	case ToolStockProfile:
		return ti.executor.ExecuteProfile(ctx, ParseProfileArgs(args))
	case ToolOptionsChain:
		return ti.executor.ExecuteOptionsChain(ctx, ParseOptionsChainArgs(args))
	default:
		// Unreachable: the validator lookup already gated the name.
		return nil, fmt.Errorf("no executor for tool %s", name)
	}
}

func successResult(payload interface{}) *CallToolResult {
	text, err := json.Marshal(payload)
	if err != nil {
		return errorResult(ErrorEnvelope{
			Error:   KindInternal,
			Message: fmt.Sprintf("serialize result: %v", err),
		})
	}
	return &CallToolResult{
		Content: []TextContent{{Type: "text", Text: string(text)}},
	}
}

func errorResult(envelope ErrorEnvelope) *CallToolResult {
	text, _ := json.Marshal(envelope)
	return &CallToolResult{
		Content: []TextContent{{Type: "text", Text: string(text)}},
		IsError: true,
	}
}
