package pdf

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	domInvoice "github.com/crealab/invoice-studio/internal/domain/invoice"
	"github.com/crealab/invoice-studio/internal/render"
)

func sampleInvoice() (entity.InvoiceData, domInvoice.Totals) {
	data := entity.InvoiceData{
		InvoiceNumber: "INV-7001",
		Date:          "2025-06-01",
		DueDate:       "2025-07-01",
		Currency:      entity.CurrencyUSD,
		From:          entity.PartyInfo{Name: "Studio Co", Email: "billing@studio.example"},
		To:            entity.PartyInfo{Name: "Client Ltd", City: "Austin"},
		Items: []entity.LineItem{
			{Description: "Design work", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(120)},
		},
		DiscountType:  entity.DiscountPercentage,
		Discount:      decimal.NewFromInt(10),
		TaxRate:       decimal.NewFromInt(8),
		PaymentMethod: "Bank transfer",
		Notes:         "Thank you for your business.",
	}
	totals := domInvoice.ComputeTotals(data.Items, data.Discount, data.DiscountType, data.TaxRate)
	return data, totals
}

func TestGenerateInvoicePDF_ProducesDocument(t *testing.T) {
	data, totals := sampleInvoice()
	gen := NewMarotoGenerator()

	for _, tpl := range render.All() {
		t.Run(tpl.Name, func(t *testing.T) {
			out, err := gen.GenerateInvoicePDF(context.Background(), tpl, data, totals, nil)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestGenerateInvoicePDF_CancelledContext(t *testing.T) {
	data, totals := sampleInvoice()
	gen := NewMarotoGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.GenerateInvoicePDF(ctx, render.ByID(1), data, totals, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageExtension(t *testing.T) {
	ext, ok := imageExtension("image/png")
	assert.True(t, ok)
	assert.Equal(t, "png", string(ext))

	ext, ok = imageExtension("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "jpg", string(ext))

	_, ok = imageExtension("image/gif")
	assert.False(t, ok, "formats the embedder cannot handle are skipped")

	_, ok = imageExtension("text/html")
	assert.False(t, ok)
}
