package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/crealab/invoice-studio/internal/domain/invoice"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"usd symbol", decimal.NewFromInt(42), "USD", "$42.00"},
		{"eur symbol", decimal.NewFromFloat(1999.5), "EUR", "€1999.50"},
		{"gbp symbol", decimal.NewFromInt(0), "GBP", "£0.00"},
		{"inr symbol", decimal.NewFromInt(75000), "INR", "₹75000.00"},
		{"jpy two decimals kept", decimal.NewFromInt(1200), "JPY", "¥1200.00"},
		{"unknown code falls back to raw code", decimal.NewFromInt(42), "XYZ", "XYZ 42.00"},
		{"empty code", decimal.NewFromInt(10), "", " 10.00"},
		{"negative amount", decimal.NewFromInt(-5), "USD", "$-5.00"},
		{"rounds half away from zero", decimal.NewFromFloat(1.005), "USD", "$1.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, invoice.FormatAmount(tc.amount, tc.currency))
		})
	}
}

func TestCurrencySymbol_UnknownReturnsCode(t *testing.T) {
	assert.Equal(t, "$", invoice.CurrencySymbol("USD"))
	assert.Equal(t, "CHF", invoice.CurrencySymbol("CHF"))
}
