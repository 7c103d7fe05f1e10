package entity

import "time"

// HistoryRecord is a snapshot of a previously exported invoice. Records are
// created right before each export attempt and kept in an append-only log
// capped to the most recent entries (FIFO eviction).
type HistoryRecord struct {
	ID         int64       `json:"id"` // unix milliseconds at creation
	Data       InvoiceData `json:"data"`
	TemplateID int         `json:"template"`
	LogoURL    string      `json:"logo_url,omitempty"` // data URI, embedded by value
	CreatedAt  time.Time   `json:"created_at"`
}
