package invoicing

import (
	"context"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/invoice"
	"github.com/crealab/invoice-studio/internal/render"
)

// LogoImage is a decoded logo ready for embedding.
type LogoImage struct {
	Bytes []byte
	MIME  string
}

// PDFGenerator renders the primary export artifact. One attempt per export;
// the implementation must respect ctx so the pipeline's timeout can discard a
// hung generation.
type PDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		tpl render.Template,
		data entity.InvoiceData,
		totals invoice.Totals,
		logo *LogoImage,
	) ([]byte, error)
}
