// Package invoice holds the pure document arithmetic: totals derivation and
// currency display formatting. Nothing here performs I/O, so every function is
// safe to call on each keystroke of the editor.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/crealab/invoice-studio/internal/domain/entity"
)

// Totals are the derived figures of a document. They are recomputed on every
// read and never stored independently of their inputs.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	AfterDiscount  decimal.Decimal `json:"after_discount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives the totals from line items and rate parameters.
//
// Pure and total over its inputs: negative quantities, prices or rates are not
// rejected and flow into the result unchanged. The only clamp is that the
// discounted base never goes below zero, no matter how large the discount is
// relative to the subtotal. DiscountAmount itself is reported as computed,
// even when it exceeds the subtotal.
func ComputeTotals(items []entity.LineItem, discount decimal.Decimal, discountType string, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}

	discountAmount := discount
	if discountType == entity.DiscountPercentage {
		discountAmount = subtotal.Mul(discount).Div(oneHundred)
	}

	afterDiscount := subtotal.Sub(discountAmount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	tax := afterDiscount.Mul(taxRate).Div(oneHundred)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		AfterDiscount:  afterDiscount,
		Tax:            tax,
		Total:          afterDiscount.Add(tax),
	}
}
