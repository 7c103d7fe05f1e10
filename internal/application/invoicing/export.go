package invoicing

import (
	"context"
	"strings"
	"time"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/repository"
	"github.com/crealab/invoice-studio/internal/render"
	"github.com/crealab/invoice-studio/pkg/logger"
)

// Artifact is the downloadable result of an export. Exactly one is produced
// per export: the PDF, or the raw markup when the PDF attempt failed.
type Artifact struct {
	Filename    string
	ContentType string
	Bytes       []byte
	Fallback    bool
}

// ExportPipeline turns a session snapshot into a downloadable document.
//
// Ordering guarantee: the history record is appended before the PDF attempt,
// so the user's work survives a rendering failure even when no file is ever
// produced. History durability and export outcome are deliberately decoupled.
type ExportPipeline struct {
	history repository.HistoryRepository
	pdf     PDFGenerator
	timeout time.Duration
	log     *logger.Logger
	now     func() time.Time
}

// NewExportPipeline builds the pipeline. timeout bounds the single PDF
// attempt so a stuck generator degrades to the markup fallback instead of
// hanging the request.
func NewExportPipeline(
	history repository.HistoryRepository,
	pdf PDFGenerator,
	timeout time.Duration,
	log *logger.Logger,
) *ExportPipeline {
	return &ExportPipeline{
		history: history,
		pdf:     pdf,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Export runs the full pipeline against the session's current state.
//
// One PDF attempt is made; on any failure the fallback is the markup
// download, not a retry of the same format. Errors only propagate when even
// the fallback markup cannot be produced.
func (e *ExportPipeline) Export(ctx context.Context, session *Session) (Artifact, error) {
	if err := session.beginExport(); err != nil {
		return Artifact{}, err
	}
	defer session.endExport()

	snap := session.Snapshot()

	// History first. A persistence failure degrades to "history unavailable"
	// and is never allowed to block the export itself.
	rec := entity.HistoryRecord{
		ID:         e.now().UnixMilli(),
		Data:       snap.Data,
		TemplateID: snap.TemplateID,
		LogoURL:    snap.LogoURL,
		CreatedAt:  e.now(),
	}
	if err := e.history.Append(rec); err != nil {
		e.log.Warn().Err(err).Msg("history append failed, continuing with export")
	}

	tpl := render.ByID(snap.TemplateID)
	markup, err := tpl.RenderHTML(snap.Data, snap.Totals, snap.LogoURL)
	if err != nil {
		// Without markup there is neither a preview nor a fallback artifact.
		return Artifact{}, err
	}

	logo, err := DecodeLogoDataURI(snap.LogoURL)
	if err != nil {
		e.log.Warn().Err(err).Msg("stored logo is unreadable, exporting without it")
		logo = nil
	}

	base := "invoice-" + sanitizeFilename(snap.Data.InvoiceNumber)

	// The generation context is torn down via cancel on success and failure
	// alike; a generation still running past the deadline is discarded.
	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	pdfBytes, err := e.pdf.GenerateInvoicePDF(genCtx, tpl, snap.Data, snap.Totals, logo)
	if err != nil {
		e.log.Error().Err(err).Str("template", tpl.Name).
			Msg("pdf generation failed, falling back to markup download")
		return Artifact{
			Filename:    base + ".html",
			ContentType: "text/html; charset=utf-8",
			Bytes:       []byte(markup),
			Fallback:    true,
		}, nil
	}

	return Artifact{
		Filename:    base + ".pdf",
		ContentType: "application/pdf",
		Bytes:       pdfBytes,
	}, nil
}

// sanitizeFilename strips characters that would break a download filename.
// The invoice number itself stays free-form.
func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '\n', '\r', '\x00':
			return '-'
		}
		return r
	}, s)
}
