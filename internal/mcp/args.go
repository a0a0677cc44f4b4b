package mcp

import "strings"

// Typed argument records, extracted from the untyped bag after schema
// validation succeeded. Extraction uppercases symbols; date defaulting is
// the orchestrator's job because it needs a clock.

// EarningsArgs are the calendar.earnings arguments.
type EarningsArgs struct {
	From   string
	To     string
	Symbol string
}

// QuotesArgs are the quote arguments.
type QuotesArgs struct {
	Symbols []string
}

// NewsArgs are the news arguments.
type NewsArgs struct {
	Symbol string
	From   string
	To     string
}

// ProfileArgs are the stock.profile arguments.
type ProfileArgs struct {
	Symbol string
}

// OptionsChainArgs are the options.chain arguments.
type OptionsChainArgs struct {
	Symbol         string
	ExpirationDate string
}

// ParseEarningsArgs extracts calendar.earnings arguments.
func ParseEarningsArgs(args map[string]interface{}) EarningsArgs {
	return EarningsArgs{
		From:   stringArg(args, "from"),
		To:     stringArg(args, "to"),
		Symbol: strings.ToUpper(stringArg(args, "symbol")),
	}
}

// ParseQuotesArgs extracts quote arguments.
func ParseQuotesArgs(args map[string]interface{}) QuotesArgs {
	raw, _ := args["symbols"].([]interface{})
	symbols := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			symbols = append(symbols, strings.ToUpper(s))
		}
	}
	return QuotesArgs{Symbols: symbols}
}

// ParseNewsArgs extracts news arguments.
func ParseNewsArgs(args map[string]interface{}) NewsArgs {
	return NewsArgs{
		Symbol: strings.ToUpper(stringArg(args, "symbol")),
		From:   stringArg(args, "from"),
		To:     stringArg(args, "to"),
	}
}

// ParseProfileArgs extracts stock.profile arguments.
func ParseProfileArgs(args map[string]interface{}) ProfileArgs {
	return ProfileArgs{Symbol: strings.ToUpper(stringArg(args, "symbol"))}
}

// ParseOptionsChainArgs extracts options.chain arguments.
func ParseOptionsChainArgs(args map[string]interface{}) OptionsChainArgs {
	return OptionsChainArgs{
		Symbol:         strings.ToUpper(stringArg(args, "symbol")),
		ExpirationDate: stringArg(args, "expirationDate"),
	}
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}
