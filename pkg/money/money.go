// Package money parses and formats the catalog's taka currency strings.
// Prices travel through the system as display strings ("650৳", "1,250৳");
// arithmetic happens on decimals so repeated additions stay exact.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TakaGlyph is the currency sign carried by catalog price strings.
const TakaGlyph = "৳"

// ParsePrice converts a currency string into a decimal amount. The glyph and
// thousands separators are stripped before parsing. Blank or unparseable
// input yields zero, mirroring how the storefront treats malformed prices.
func ParsePrice(value string) decimal.Decimal {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, TakaGlyph, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Format renders an amount back into the storefront's display form: whole
// taka, no separators, trailing glyph.
func Format(amount decimal.Decimal) string {
	return amount.Round(0).String() + TakaGlyph
}
