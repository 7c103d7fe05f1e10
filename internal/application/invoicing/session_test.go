package invoicing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
}

func TestNewSession_Defaults(t *testing.T) {
	s := testSession(t)
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.Data.InvoiceNumber)
	assert.Equal(t, "2025-06-01", snap.Data.Date)
	assert.Equal(t, entity.CurrencyUSD, snap.Data.Currency)
	assert.Equal(t, 1, snap.TemplateID)
	require.Len(t, snap.Data.Items, 1)
	assert.True(t, snap.Totals.Total.IsZero())
}

func TestSession_EditsRecomputeTotals(t *testing.T) {
	s := testSession(t)

	snap, err := s.UpdateItem(0, entity.LineItem{
		Description: "Design",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, snap.Totals.Subtotal.Equal(decimal.NewFromInt(1000)))

	data := snap.Data
	data.TaxRate = decimal.NewFromInt(10)
	snap = s.Replace(data)
	assert.True(t, snap.Totals.Total.Equal(decimal.NewFromInt(1100)), "total: %s", snap.Totals.Total)

	snap = s.AddItem(entity.LineItem{
		Description: "Hosting",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(100),
	})
	assert.True(t, snap.Totals.Subtotal.Equal(decimal.NewFromInt(1100)))
}

func TestSession_RemoveItemReindexes(t *testing.T) {
	s := testSession(t)
	s.AddItem(entity.LineItem{Description: "second", Quantity: decimal.NewFromInt(1)})
	s.AddItem(entity.LineItem{Description: "third", Quantity: decimal.NewFromInt(1)})

	snap, err := s.RemoveItem(1)
	require.NoError(t, err)
	require.Len(t, snap.Data.Items, 2)
	assert.Equal(t, "third", snap.Data.Items[1].Description)

	_, err = s.RemoveItem(7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.UpdateItem(-1, entity.LineItem{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_SelectTemplateFallsBackAndKeepsData(t *testing.T) {
	s := testSession(t)
	before := s.Snapshot().Data

	snap := s.SelectTemplate(2)
	assert.Equal(t, 2, snap.TemplateID)

	snap = s.SelectTemplate(999)
	assert.Equal(t, 1, snap.TemplateID, "unknown ids resolve to the catalog fallback")
	assert.Equal(t, before.InvoiceNumber, snap.Data.InvoiceNumber, "template selection never mutates the document")
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s := testSession(t)
	snap := s.Snapshot()
	snap.Data.Items[0].Description = "mutated outside the session"

	assert.NotEqual(t, "mutated outside the session", s.Snapshot().Data.Items[0].Description)
}

func TestSession_LoadRecordIsFullOverwrite(t *testing.T) {
	s := testSession(t)
	data := s.Snapshot().Data
	data.Notes = "unsaved work"
	s.Replace(data)
	s.SetLogo("data:image/png;base64,AAAA")

	recData := entity.NewInvoiceData(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	recData.InvoiceNumber = "INV-OLD"
	snap := s.LoadRecord(entity.HistoryRecord{
		ID:         42,
		Data:       recData,
		TemplateID: 3,
	})

	assert.Equal(t, "INV-OLD", snap.Data.InvoiceNumber)
	assert.Equal(t, 3, snap.TemplateID)
	assert.Empty(t, snap.Data.Notes, "no merge: current edits are discarded")
	assert.Empty(t, snap.LogoURL, "logo follows the record, absent included")
}

func TestSession_PreviewRendersSelectedTemplate(t *testing.T) {
	s := testSession(t)
	data := s.Snapshot().Data
	data.InvoiceNumber = "INV-PREVIEW-1"
	s.Replace(data)

	html, err := s.Preview()
	require.NoError(t, err)
	assert.Contains(t, html, "INV-PREVIEW-1")
}

func TestSession_ExportGuard(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.beginExport())
	assert.ErrorIs(t, s.beginExport(), domain.ErrExportInFlight)

	s.endExport()
	assert.NoError(t, s.beginExport(), "slot is free again after the export finishes")
}
