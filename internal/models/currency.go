package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the display and comparison currency selected by the visitor.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyZWL Currency = "ZWL"
)

// ParseCurrency accepts a currency code in any case. An empty code means USD.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(CurrencyUSD):
		return CurrencyUSD, nil
	case string(CurrencyZWL):
		return CurrencyZWL, nil
	default:
		return "", fmt.Errorf("unsupported currency: %q", s)
	}
}

// Format renders an amount the way the storefront displays it,
// e.g. "$89.99" or "ZWL 8,999.00".
func (c Currency) Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	if c == CurrencyZWL {
		return "ZWL " + groupThousands(fixed)
	}
	return "$" + fixed
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
