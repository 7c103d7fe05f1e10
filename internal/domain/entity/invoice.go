package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Supported currency codes. The formatter falls back to the raw code for
// anything outside this set, so the list is display sugar, not validation.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyINR = "INR"
	CurrencyJPY = "JPY"
)

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// PartyInfo identifies one side of the invoice (issuer or client).
// Every field is an optional free-form string; templates render what is there.
type PartyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

// LineItem is one billable row. Position in the slice is the display order;
// there is no stable identity beyond the index.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// InvoiceData is the full editable document. Quantities, prices, tax and
// discount are unvalidated: the editor mirrors what was typed and negatives
// pass through to the derived totals.
type InvoiceData struct {
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`     // ISO calendar date or empty
	DueDate       string          `json:"due_date"` // optional
	From          PartyInfo       `json:"from"`
	To            PartyInfo       `json:"to"`
	Items         []LineItem      `json:"items"`
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"` // percentage, 0-100 by convention
	Discount      decimal.Decimal `json:"discount"`
	DiscountType  string          `json:"discount_type"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	BankDetails   string          `json:"bank_details,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Terms         string          `json:"terms,omitempty"`
}

// NewInvoiceData returns a fresh document with the defaults a new editor
// session starts from: a timestamp-derived number, today's date, one empty
// line item and USD.
func NewInvoiceData(now time.Time) InvoiceData {
	return InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%d", now.Unix()),
		Date:          now.Format("2006-01-02"),
		Items: []LineItem{
			{Description: "", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero},
		},
		Currency:     CurrencyUSD,
		TaxRate:      decimal.Zero,
		Discount:     decimal.Zero,
		DiscountType: DiscountPercentage,
	}
}

// Clone returns a deep copy. History records snapshot the document by value so
// later edits never leak into a stored record.
func (d InvoiceData) Clone() InvoiceData {
	out := d
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}
