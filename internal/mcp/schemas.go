package mcp

// Tool names exposed over the protocol.
const (
	ToolEarningsCalendar = "calendar.earnings"
	ToolQuote            = "quote"
	ToolNews             = "news"
	ToolStockProfile     = "stock.profile"
	ToolOptionsChain     = "options.chain"
)

// datePattern matches YYYY-MM-DD. Pattern-only on purpose: calendar
// plausibility is the provider's concern, the shape is ours.
const datePattern = `^\d{4}-\d{2}-\d{2}$`

func dateSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"pattern":     datePattern,
		"description": description,
	}
}

func symbolSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"minLength":   1,
		"maxLength":   10,
		"description": description,
	}
}

// toolSchemas holds the declarative per-tool argument rules, interpreted by
// one generic validator (validation.go).
var toolSchemas = map[string]map[string]interface{}{
	ToolEarningsCalendar: {
		"type": "object",
		"properties": map[string]interface{}{
			"from":   dateSchema("Start date (YYYY-MM-DD); defaults to today"),
			"to":     dateSchema("End date (YYYY-MM-DD); defaults to from + 7 days"),
			"symbol": symbolSchema("Optional stock symbol to filter by (e.g. AAPL)"),
		},
	},
	ToolQuote: {
		"type": "object",
		"properties": map[string]interface{}{
			"symbols": map[string]interface{}{
				"type":        "array",
				"items":       symbolSchema("Stock symbol"),
				"minItems":    1,
				"maxItems":    50,
				"description": "Stock symbols to quote (1-50)",
			},
		},
		"required": []string{"symbols"},
	},
	ToolNews: {
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": symbolSchema("Stock symbol (e.g. AAPL)"),
			"from":   dateSchema("Start date (YYYY-MM-DD)"),
			"to":     dateSchema("End date (YYYY-MM-DD)"),
		},
		"required": []string{"symbol", "from", "to"},
	},
	ToolStockProfile: {
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": symbolSchema("Stock symbol (e.g. AAPL)"),
		},
		"required": []string{"symbol"},
	},
	ToolOptionsChain: {
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": symbolSchema("Stock symbol (e.g. AAPL)"),
			"expirationDate": dateSchema(
				"Expiration date (YYYY-MM-DD); omit to list available expiration dates"),
		},
		"required": []string{"symbol"},
	},
}

// Tools returns the complete MCP tool definitions, in stable order.
func Tools() []Tool {
	return []Tool{
		{
			Name:        ToolEarningsCalendar,
			Description: "Get the earnings calendar for a date range, optionally filtered to one symbol. Dates default to the next 7 days.",
			InputSchema: toolSchemas[ToolEarningsCalendar],
		},
		{
			Name:        ToolQuote,
			Description: "Get real-time quotes for up to 50 symbols. Symbols the provider has no data for are omitted from the result.",
			InputSchema: toolSchemas[ToolQuote],
		},
		{
			Name:        ToolNews,
			Description: "Get company news for a symbol within a date range.",
			InputSchema: toolSchemas[ToolNews],
		},
		{
			Name:        ToolStockProfile,
			Description: "Get the company profile for a symbol. Returns a null profile when the symbol is unknown.",
			InputSchema: toolSchemas[ToolStockProfile],
		},
		{
			Name:        ToolOptionsChain,
			Description: "Get the options chain for a symbol. Call without expirationDate first to discover available expiration dates, then call again with one to get the contracts for that date.",
			InputSchema: toolSchemas[ToolOptionsChain],
		},
	}
}
