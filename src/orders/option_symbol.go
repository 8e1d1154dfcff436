package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OptionSymbol builds the OCC symbol used by the quote endpoints, e.g.
// AAPL190118C00150000 for the AAPL Jan 18 2019 150 call.
func OptionSymbol(underlying string, expiration time.Time, class OptionClass, strike decimal.Decimal) (string, error) {
	if underlying == "" {
		return "", fmt.Errorf("OptionSymbol: underlying is required")
	}

	if !class.IsValid() {
		return "", fmt.Errorf("OptionSymbol: invalid option class: %s", class)
	}

	if !strike.IsPositive() {
		return "", fmt.Errorf("OptionSymbol: strike must be greater than 0, got %s", strike)
	}

	thousandths := strike.Shift(3).Truncate(0).IntPart()
	if thousandths > 99999999 {
		return "", fmt.Errorf("OptionSymbol: strike too large: %s", strike)
	}

	return fmt.Sprintf("%s%s%s%08d", strings.ToUpper(underlying), expiration.Format("060102"), class.OCCLetter(), thousandths), nil
}

// ExpirationTag is the FIX MMY (year-month) code for a maturity date.
func ExpirationTag(maturity time.Time) string {
	return maturity.Format("200601")
}
