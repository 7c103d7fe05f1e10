package dto

import (
	"github.com/shopspring/decimal"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/invoice"
)

// SessionResponse is the editor session as the client sees it: the document,
// freshly derived totals, and the selected template.
type SessionResponse struct {
	Data       entity.InvoiceData `json:"data"`
	Totals     invoice.Totals     `json:"totals"`
	TemplateID int                `json:"template_id"`
	HasLogo    bool               `json:"has_logo"`
}

// LineItemRequest body for POST/PUT on line items.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ToEntity maps the request to a line item.
func (r LineItemRequest) ToEntity() entity.LineItem {
	return entity.LineItem{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

// SelectTemplateRequest body for PUT /api/invoice/template.
type SelectTemplateRequest struct {
	ID int `json:"id"`
}

// TemplateResponse one catalog entry for listings.
type TemplateResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HistoryRecordResponse one entry of the export history, summarized for the
// browse list. Loading goes through the record id.
type HistoryRecordResponse struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	ClientName    string `json:"client_name,omitempty"`
	Total         string `json:"total"`
	TemplateID    int    `json:"template"`
	CreatedAt     string `json:"created_at"`
}

// NewHistoryRecordResponse summarizes a record, deriving the display total
// from the stored document the same way the editor would.
func NewHistoryRecordResponse(rec entity.HistoryRecord) HistoryRecordResponse {
	totals := invoice.ComputeTotals(rec.Data.Items, rec.Data.Discount, rec.Data.DiscountType, rec.Data.TaxRate)
	return HistoryRecordResponse{
		ID:            rec.ID,
		InvoiceNumber: rec.Data.InvoiceNumber,
		ClientName:    rec.Data.To.Name,
		Total:         invoice.FormatAmount(totals.Total, rec.Data.Currency),
		TemplateID:    rec.TemplateID,
		CreatedAt:     rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
