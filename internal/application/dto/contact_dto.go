package dto

import "github.com/shopspring/decimal"

// ContactRequest body for POST /api/contact.
type ContactRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Company string          `json:"company,omitempty"`
	Budget  decimal.Decimal `json:"budget,omitempty"` // estimated project budget
	Message string          `json:"message"`
}

// ContactResponse acknowledgment of a stored submission.
type ContactResponse struct {
	ID string `json:"id"`
}
