package orders

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/ally-invest/src/fixml"
)

// OrderConfig is the keyword form of an order. Enumerations accept either their name
// ("limit", "buy", "gtc") or their FIX code ("2", "1", "1").
type OrderConfig struct {
	Account         string `yaml:"acct"`
	Symbol          string `yaml:"sym"`
	Quantity        int    `yaml:"qty"`
	SecurityType    string `yaml:"sec_typ"`
	Side            string `yaml:"side"`
	Type            string `yaml:"typ"`
	TimeInForce     string `yaml:"tm_in_force"`
	Price           string `yaml:"px"`
	StopPrice       string `yaml:"stop_px"`
	PositionEffect  string `yaml:"pos_efct"`
	StrikePrice     string `yaml:"strk_px"`
	OptionClass     string `yaml:"cfi"`
	Maturity        string `yaml:"mat_dt"`
	ExpirationTag   string `yaml:"mmy"`
	OriginalOrderID string `yaml:"orig_id"`
	ShortCover      bool   `yaml:"short_cover"`
}

// OrderFile is the YAML document accepted by the order commands: either one order or
// a list of legs.
type OrderFile struct {
	Order  *OrderConfig  `yaml:"order"`
	Legs   []OrderConfig `yaml:"legs"`
	Cancel bool          `yaml:"cancel"`
}

// NewOrder parses the keyword options. Unknown enumeration names fail here; missing
// fields are left unset for Validate to report.
func NewOrder(cfg OrderConfig) (*Order, error) {
	o := &Order{
		Account:         cfg.Account,
		Symbol:          cfg.Symbol,
		Quantity:        cfg.Quantity,
		ExpirationTag:   cfg.ExpirationTag,
		OriginalOrderID: cfg.OriginalOrderID,
		ShortCover:      cfg.ShortCover,
	}

	var err error
	if cfg.SecurityType != "" {
		if o.SecurityType, err = ParseSecurityType(cfg.SecurityType); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if cfg.Side != "" {
		if o.Side, err = ParseSide(cfg.Side); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if cfg.Type != "" {
		if o.Type, err = ParseOrderType(cfg.Type); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if cfg.TimeInForce != "" {
		if o.TimeInForce, err = ParseTimeInForce(cfg.TimeInForce); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if cfg.PositionEffect != "" {
		if o.PositionEffect, err = ParsePositionEffect(cfg.PositionEffect); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if cfg.OptionClass != "" {
		if o.OptionClass, err = ParseOptionClass(cfg.OptionClass); err != nil {
			return nil, fmt.Errorf("NewOrder: %w", err)
		}
	}

	if o.Price, err = parseDecimal("px", cfg.Price); err != nil {
		return nil, fmt.Errorf("NewOrder: %w", err)
	}

	if o.StopPrice, err = parseDecimal("stop_px", cfg.StopPrice); err != nil {
		return nil, fmt.Errorf("NewOrder: %w", err)
	}

	if o.StrikePrice, err = parseDecimal("strk_px", cfg.StrikePrice); err != nil {
		return nil, fmt.Errorf("NewOrder: %w", err)
	}

	if cfg.Maturity != "" {
		if o.Maturity, err = time.Parse(time.DateOnly, cfg.Maturity); err != nil {
			return nil, fmt.Errorf("NewOrder: failed to parse mat_dt: %w", err)
		}
	}

	return o, nil
}

func parseDecimal(field, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", field, err)
	}

	return &d, nil
}

func ReadOrderFile(r io.Reader) (*OrderFile, error) {
	var f OrderFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("ReadOrderFile: failed to decode yaml: %w", err)
	}

	if f.Order == nil && len(f.Legs) == 0 {
		return nil, fmt.Errorf("ReadOrderFile: expected an order or legs")
	}

	if f.Order != nil && len(f.Legs) > 0 {
		return nil, fmt.Errorf("ReadOrderFile: expected an order or legs, not both")
	}

	return &f, nil
}

// Document builds the FIXML document described by the file.
func (f *OrderFile) Document() (*fixml.Node, error) {
	if f.Order != nil {
		o, err := NewOrder(*f.Order)
		if err != nil {
			return nil, fmt.Errorf("OrderFile.Document: %w", err)
		}

		doc, err := Build(o, f.Cancel)
		if err != nil {
			return nil, fmt.Errorf("OrderFile.Document: %w", err)
		}

		return doc, nil
	}

	legs := make([]*Order, 0, len(f.Legs))
	for i, cfg := range f.Legs {
		o, err := NewOrder(cfg)
		if err != nil {
			return nil, fmt.Errorf("OrderFile.Document: leg %d: %w", i, err)
		}
		legs = append(legs, o)
	}

	doc, err := BuildMultileg(legs, f.Cancel)
	if err != nil {
		return nil, fmt.Errorf("OrderFile.Document: %w", err)
	}

	return doc, nil
}

// Account is the account the file's order, or its first leg, is placed in.
func (f *OrderFile) Account() string {
	if f.Order != nil {
		return f.Order.Account
	}

	if len(f.Legs) > 0 {
		return f.Legs[0].Account
	}

	return ""
}
