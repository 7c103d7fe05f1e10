package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/invoice"
	"github.com/crealab/invoice-studio/internal/render"
)

func sampleData() entity.InvoiceData {
	d := entity.NewInvoiceData(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	d.InvoiceNumber = "INV-2025-007"
	d.From.Name = "Crealab Studio"
	d.To.Name = "Acme GmbH"
	d.Items = []entity.LineItem{
		{Description: "Brand identity", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(4500)},
		{Description: "Web design", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(800)},
	}
	d.TaxRate = decimal.NewFromInt(19)
	return d
}

func totalsFor(d entity.InvoiceData) invoice.Totals {
	return invoice.ComputeTotals(d.Items, d.Discount, d.DiscountType, d.TaxRate)
}

func TestByID_UnknownFallsBackToFirst(t *testing.T) {
	first := render.ByID(1)
	assert.Equal(t, first.ID, render.ByID(999).ID)
	assert.Equal(t, first.ID, render.ByID(-3).ID)
	assert.Equal(t, first.ID, render.ByID(0).ID)
}

func TestAll_StableIDs(t *testing.T) {
	all := render.All()
	require.NotEmpty(t, all)
	// Shipped ids; removing or renumbering any of these breaks historical
	// records, so this test pins them.
	ids := make([]int, 0, len(all))
	for _, tpl := range all {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestRenderHTML_AllTemplates(t *testing.T) {
	data := sampleData()
	totals := totalsFor(data)

	for _, tpl := range render.All() {
		tpl := tpl
		t.Run(tpl.Name, func(t *testing.T) {
			html, err := tpl.RenderHTML(data, totals, "")
			require.NoError(t, err)
			assert.Contains(t, html, "INV-2025-007")
			assert.Contains(t, html, "Brand identity")
			assert.Contains(t, html, "$4500.00")
			// total = (4500 + 2400) * 1.19
			assert.Contains(t, html, "$8211.00")
		})
	}
}

func TestRenderHTML_Deterministic(t *testing.T) {
	data := sampleData()
	totals := totalsFor(data)
	tpl := render.ByID(2)

	a, err := tpl.RenderHTML(data, totals, "")
	require.NoError(t, err)
	b, err := tpl.RenderHTML(data, totals, "")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderHTML_EscapesDocumentContent(t *testing.T) {
	data := sampleData()
	data.Items[0].Description = `<script>alert("x")</script>`
	data.Notes = `<img src=x onerror=alert(1)>`
	totals := totalsFor(data)

	html, err := render.ByID(1).RenderHTML(data, totals, "")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
	assert.NotContains(t, html, "onerror=alert")
}

func TestRenderHTML_LogoDataURISurvivesEscaping(t *testing.T) {
	data := sampleData()
	totals := totalsFor(data)
	logo := "data:image/png;base64,iVBORw0KGgo="

	html, err := render.ByID(3).RenderHTML(data, totals, logo)
	require.NoError(t, err)
	assert.Contains(t, html, logo)
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderHTML_EmptyItems(t *testing.T) {
	data := sampleData()
	data.Items = nil
	totals := totalsFor(data)

	html, err := render.ByID(1).RenderHTML(data, totals, "")
	require.NoError(t, err)
	assert.Contains(t, html, "$0.00")
}

func TestRenderHTML_UnknownCurrencyUsesRawCode(t *testing.T) {
	data := sampleData()
	data.Currency = "XYZ"
	totals := totalsFor(data)

	html, err := render.ByID(1).RenderHTML(data, totals, "")
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "XYZ "), "raw code should appear in amounts")
}
