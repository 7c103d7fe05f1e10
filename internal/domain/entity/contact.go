package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContactSubmission is one entry from the site's contact form.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Budget    decimal.Decimal // estimated project budget; zero when not given
	Message   string
	CreatedAt time.Time
}
