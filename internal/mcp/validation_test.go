package mcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func compiledValidators(t *testing.T) map[string]*SchemaValidator {
	t.Helper()
	validators, err := NewToolValidators()
	require.NoError(t, err)
	require.Len(t, validators, 5)
	return validators
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
	return ve
}

func TestValidate_EarningsAllOptional(t *testing.T) {
	v := compiledValidators(t)[ToolEarningsCalendar]

	require.NoError(t, v.Validate(nil))
	require.NoError(t, v.Validate(map[string]interface{}{}))
	require.NoError(t, v.Validate(map[string]interface{}{
		"from":   "2024-01-28",
		"to":     "2024-02-04",
		"symbol": "AAPL",
	}))
}

func TestValidate_DatePattern(t *testing.T) {
	v := compiledValidators(t)[ToolEarningsCalendar]

	for _, bad := range []string{"2024/01/28", "01-28-2024", "2024-1-8", "tomorrow", ""} {
		err := v.Validate(map[string]interface{}{"from": bad})
		ve := requireValidationError(t, err)
		require.Contains(t, ve.Error(), "from")
	}
}

func TestValidate_SymbolLengthBounds(t *testing.T) {
	v := compiledValidators(t)[ToolStockProfile]

	require.NoError(t, v.Validate(map[string]interface{}{"symbol": "A"}))
	require.NoError(t, v.Validate(map[string]interface{}{"symbol": "ABCDEFGHIJ"}))

	requireValidationError(t, v.Validate(map[string]interface{}{"symbol": ""}))
	requireValidationError(t, v.Validate(map[string]interface{}{"symbol": "ABCDEFGHIJK"}))
}

func TestValidate_RequiredFields(t *testing.T) {
	validators := compiledValidators(t)

	requireValidationError(t, validators[ToolStockProfile].Validate(map[string]interface{}{}))
	requireValidationError(t, validators[ToolQuote].Validate(map[string]interface{}{}))
	requireValidationError(t, validators[ToolNews].Validate(map[string]interface{}{
		"symbol": "AAPL", "from": "2024-01-01",
	}))
	requireValidationError(t, validators[ToolOptionsChain].Validate(map[string]interface{}{
		"expirationDate": "2024-06-21",
	}))
}

func TestValidate_SymbolsArrayBounds(t *testing.T) {
	v := compiledValidators(t)[ToolQuote]

	requireValidationError(t, v.Validate(map[string]interface{}{
		"symbols": []interface{}{},
	}))

	fifty := make([]interface{}, 50)
	for i := range fifty {
		fifty[i] = "AAPL"
	}
	require.NoError(t, v.Validate(map[string]interface{}{"symbols": fifty}))

	fiftyOne := append(fifty, "MSFT")
	requireValidationError(t, v.Validate(map[string]interface{}{"symbols": fiftyOne}))

	requireValidationError(t, v.Validate(map[string]interface{}{
		"symbols": []interface{}{"AAPL", 42},
	}))
}

func TestValidate_OptionsChainExpirationOptional(t *testing.T) {
	v := compiledValidators(t)[ToolOptionsChain]

	require.NoError(t, v.Validate(map[string]interface{}{"symbol": "AAPL"}))
	require.NoError(t, v.Validate(map[string]interface{}{
		"symbol":         "AAPL",
		"expirationDate": "2024-06-21",
	}))
	requireValidationError(t, v.Validate(map[string]interface{}{
		"symbol":         "AAPL",
		"expirationDate": "June 21",
	}))
}
