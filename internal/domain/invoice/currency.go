package invoice

import "github.com/shopspring/decimal"

// Fixed symbol table for the supported currencies. Unknown codes fall back to
// "CODE 42.00" instead of failing, so a document never becomes unrenderable
// because of its currency field.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// FormatAmount renders an amount for display: symbol (or raw code plus a
// space) followed by the amount with exactly two decimal places.
//
// Rounding is decimal.StringFixed, i.e. round half away from zero. The choice
// is arbitrary for display purposes; what matters is that it is the same for
// every figure of one document.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	fixed := amount.StringFixed(2)
	if sym, ok := currencySymbols[currencyCode]; ok {
		return sym + fixed
	}
	return currencyCode + " " + fixed
}

// CurrencySymbol returns the display symbol, or the raw code when unknown.
func CurrencySymbol(currencyCode string) string {
	if sym, ok := currencySymbols[currencyCode]; ok {
		return sym
	}
	return currencyCode
}
