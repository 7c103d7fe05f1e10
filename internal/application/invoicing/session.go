// Package invoicing owns the editor session and its export pipeline: the
// single live invoice document, the mutations the editor performs on it, and
// the snapshot handed to the renderers.
package invoicing

import (
	"sync"
	"time"

	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/invoice"
	"github.com/crealab/invoice-studio/internal/render"
)

// Snapshot is an immutable copy of the session at one instant: the document,
// the selected template and the logo, plus totals derived at capture time.
type Snapshot struct {
	Data       entity.InvoiceData
	TemplateID int
	LogoURL    string
	Totals     invoice.Totals
}

// Session is the single-writer owner of the live InvoiceData. All access goes
// through its methods; the mutex serializes HTTP callbacks, everything else
// follows the one-session-one-document model. Field mutations are synchronous
// and unvalidated; totals are recomputed on every read, never cached.
type Session struct {
	mu         sync.Mutex
	data       entity.InvoiceData
	templateID int
	logoURL    string
	exporting  bool
}

// NewSession starts a session with a fresh default document.
func NewSession(now time.Time) *Session {
	return &Session{
		data:       entity.NewInvoiceData(now),
		templateID: render.All()[0].ID,
	}
}

// Snapshot captures the current state with freshly derived totals.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	data := s.data.Clone()
	return Snapshot{
		Data:       data,
		TemplateID: s.templateID,
		LogoURL:    s.logoURL,
		Totals:     invoice.ComputeTotals(data.Items, data.Discount, data.DiscountType, data.TaxRate),
	}
}

// Replace overwrites the whole editable document. No validation gate: the
// editor reflects whatever was typed.
func (s *Session) Replace(data entity.InvoiceData) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	return s.snapshotLocked()
}

// AddItem appends a line item.
func (s *Session) AddItem(item entity.LineItem) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Items = append(s.data.Items, item)
	return s.snapshotLocked()
}

// UpdateItem replaces the line item at the given display position.
func (s *Session) UpdateItem(index int, item entity.LineItem) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.data.Items) {
		return Snapshot{}, domain.ErrNotFound
	}
	s.data.Items[index] = item
	return s.snapshotLocked(), nil
}

// RemoveItem deletes the line item at the given display position. Remaining
// items re-index by position; there is no stable line-item identity.
func (s *Session) RemoveItem(index int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.data.Items) {
		return Snapshot{}, domain.ErrNotFound
	}
	s.data.Items = append(s.data.Items[:index], s.data.Items[index+1:]...)
	return s.snapshotLocked(), nil
}

// SelectTemplate switches the active template. Unknown ids resolve to the
// catalog fallback; the document itself is never touched.
func (s *Session) SelectTemplate(id int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templateID = render.ByID(id).ID
	return s.snapshotLocked()
}

// SetLogo stores the ingested logo data URI on the session.
func (s *Session) SetLogo(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoURL = dataURI
}

// ClearLogo removes the logo.
func (s *Session) ClearLogo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoURL = ""
}

// LoadRecord overwrites the session from a history record. Full overwrite, no
// merge; current unsaved edits are discarded without warning.
func (s *Session) LoadRecord(rec entity.HistoryRecord) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = rec.Data.Clone()
	s.templateID = render.ByID(rec.TemplateID).ID
	s.logoURL = rec.LogoURL
	return s.snapshotLocked()
}

// Preview renders the live markup with the selected template.
func (s *Session) Preview() (string, error) {
	snap := s.Snapshot()
	return render.ByID(snap.TemplateID).RenderHTML(snap.Data, snap.Totals, snap.LogoURL)
}

// beginExport claims the export slot. The editor disables further exports
// while one runs instead of queuing them.
func (s *Session) beginExport() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exporting {
		return domain.ErrExportInFlight
	}
	s.exporting = true
	return nil
}

func (s *Session) endExport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exporting = false
}
