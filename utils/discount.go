package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// discountCodes maps a code to the fraction taken off the cart total.
var discountCodes = map[string]decimal.Decimal{
	"SAVE10":    decimal.NewFromFloat(0.10),
	"WELCOME20": decimal.NewFromFloat(0.20),
}

// LookupDiscount resolves a discount code case-insensitively. An empty code
// means no discount and is valid; an unknown code returns ok=false with a
// zero fraction so checkout can still proceed without it.
func LookupDiscount(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, true
	}
	fraction, ok := discountCodes[code]
	if !ok {
		return decimal.Zero, false
	}
	return fraction, true
}
