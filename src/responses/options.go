package responses

import "fmt"

// ParseStrikes maps response.prices.price of market/options/strikes.
func ParseStrikes(p *Payload) ([]string, error) {
	strikes, err := values(p, "prices", "price")
	if err != nil {
		return nil, fmt.Errorf("ParseStrikes: %w", err)
	}

	return strikes, nil
}

// ParseExpirations maps response.expirationdates.date of market/options/expirations.
func ParseExpirations(p *Payload) ([]string, error) {
	dates, err := values(p, "expirationdates", "date")
	if err != nil {
		return nil, fmt.Errorf("ParseExpirations: %w", err)
	}

	return dates, nil
}
