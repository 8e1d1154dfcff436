package utils

import (
	"fmt"
	"strings"
)

// ValidateSymbol accepts ticker and OCC option symbols: letters, digits, '.' and '/'.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol is empty")
	}

	// OCC option symbols are 21 characters at most
	if len(symbol) > 21 {
		return fmt.Errorf("symbol is too long: %d", len(symbol))
	}

	for _, c := range symbol {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '.' || c == '/') {
			return fmt.Errorf("invalid character in symbol: %c (%s)", c, symbol)
		}
	}

	return nil
}

// JoinSymbols upper-cases, validates and de-duplicates symbols into the comma separated
// form the API expects, keeping their first-seen order.
func JoinSymbols(symbols []string) (string, error) {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))

	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if err := ValidateSymbol(s); err != nil {
			return "", fmt.Errorf("JoinSymbols: %w", err)
		}

		if _, found := seen[s]; found {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	if len(out) == 0 {
		return "", fmt.Errorf("JoinSymbols: no symbols provided")
	}

	return strings.Join(out, ","), nil
}
