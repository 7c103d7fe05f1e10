// Package pdf renders the exported invoice document with Maroto v2.
//
// A4 page layout, shared by every template (templates only change colors):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: logo + INVOICE        │  number + date + due date  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: issuer block            │  BILL TO: client block     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Unit Price | Amount             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: subtotal / discount / tax / TOTAL                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: payment details, notes, terms                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/crealab/invoice-studio/internal/application/invoicing"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	domInvoice "github.com/crealab/invoice-studio/internal/domain/invoice"
	"github.com/crealab/invoice-studio/internal/render"
)

var _ invoicing.PDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implements invoicing.PDFGenerator using Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator builds the generator.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// GenerateInvoicePDF lays out and renders the document, honoring ctx: when
// the deadline fires mid-generation the partial document is discarded.
// Maroto's Generate has no cancellation hook, so the work runs in a goroutine
// and the caller's context decides who wins.
func (g *MarotoGenerator) GenerateInvoicePDF(
	ctx context.Context,
	tpl render.Template,
	data entity.InvoiceData,
	totals domInvoice.Totals,
	logo *invoicing.LogoImage,
) ([]byte, error) {
	type result struct {
		bytes []byte
		err   error
	}
	done := make(chan result, 1)
	go func() {
		b, err := g.generate(tpl, data, totals, logo)
		done <- result{bytes: b, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("pdf: generation aborted: %w", ctx.Err())
	case r := <-done:
		return r.bytes, r.err
	}
}

func (g *MarotoGenerator) generate(
	tpl render.Template,
	data entity.InvoiceData,
	totals domInvoice.Totals,
	logo *invoicing.LogoImage,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+data.InvoiceNumber, true).
		WithAuthor(data.From.Name, true).
		Build()

	m := maroto.New(cfg)
	primary := color(tpl.Style.Primary)
	muted := color(tpl.Style.Muted)

	m.AddRows(headerRow(data, logo, primary, muted))
	m.AddRows(line.NewRow(2, props.Line{Color: primary, Thickness: 0.5}))
	m.AddRows(partiesRow(data, primary, muted))
	m.AddRows(line.NewRow(2, props.Line{Color: primary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(primary))
	for _, r := range tableDetailRows(data) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: primary, Thickness: 0.3}))
	m.AddRows(totalsRow(data, totals, primary))

	for _, r := range footerRows(data, muted) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(data entity.InvoiceData, logo *invoicing.LogoImage, primary, muted *props.Color) core.Row {
	left := col.New(7)
	top := 1.0
	if logo != nil {
		if ext, ok := imageExtension(logo.MIME); ok {
			left.Add(image.NewFromBytes(logo.Bytes, ext, props.Rect{Percent: 45}))
			top = 16
		}
	}
	left.Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 16, Color: primary, Top: top,
		}),
	)

	right := col.New(5).Add(
		text.New(data.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
		}),
		text.New("Date: "+data.Date, props.Text{
			Size: 8, Align: align.Right, Top: 8, Color: muted,
		}),
	)
	if data.DueDate != "" {
		right.Add(text.New("Due: "+data.DueDate, props.Text{
			Size: 8, Align: align.Right, Top: 12, Color: muted,
		}))
	}
	return row.New(26).Add(left, right)
}

func partiesRow(data entity.InvoiceData, primary, muted *props.Color) core.Row {
	party := func(label string, p entity.PartyInfo, a align.Type) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: primary, Top: 1, Align: a,
			}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: a}),
			text.New(joinNonEmpty(p.Address, p.City, p.Zip, p.Country), props.Text{
				Size: 8, Top: 12, Color: muted, Align: a,
			}),
			text.New(joinNonEmpty(p.Email, p.Phone), props.Text{
				Size: 8, Top: 16, Color: muted, Align: a,
			}),
		)
	}
	return row.New(22).Add(
		party("FROM", data.From, align.Left),
		party("BILL TO", data.To, align.Right),
	)
}

func tableHeaderRow(primary *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: primary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

func tableDetailRows(data entity.InvoiceData) []core.Row {
	result := make([]core.Row, 0, len(data.Items))
	for _, it := range data.Items {
		amount := it.Quantity.Mul(it.UnitPrice)
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				domInvoice.FormatAmount(it.UnitPrice, data.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				domInvoice.FormatAmount(amount, data.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(data entity.InvoiceData, totals domInvoice.Totals, primary *props.Color) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	cur := data.Currency
	labels := col.New(3)
	values := col.New(3)
	top := 0.0
	labels.Add(label("Subtotal:", top))
	values.Add(value(domInvoice.FormatAmount(totals.Subtotal, cur), top))
	top += 5
	if !totals.DiscountAmount.IsZero() {
		labels.Add(label("Discount:", top))
		values.Add(value("-"+domInvoice.FormatAmount(totals.DiscountAmount, cur), top))
		top += 5
	}
	labels.Add(label(fmt.Sprintf("Tax (%s%%):", data.TaxRate.String()), top))
	values.Add(value(domInvoice.FormatAmount(totals.Tax, cur), top))
	top += 6
	labels.Add(text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: primary, Right: 2, Top: top,
	}))
	values.Add(text.New(domInvoice.FormatAmount(totals.Total, cur), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: primary, Right: 1, Top: top,
	}))

	return row.New(top + 8).Add(col.New(6), labels, values)
}

func footerRows(data entity.InvoiceData, muted *props.Color) []core.Row {
	var rows []core.Row
	block := func(label, body string) {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2,
			}))),
			row.New(8).Add(col.New(12).Add(text.New(body, props.Text{
				Size: 8, Color: muted, Top: 1,
			}))),
		)
	}
	if data.PaymentMethod != "" {
		block("Payment Method", data.PaymentMethod)
	}
	if data.BankDetails != "" {
		block("Bank Details", data.BankDetails)
	}
	if data.Notes != "" {
		block("Notes", data.Notes)
	}
	if data.Terms != "" {
		block("Terms & Conditions", data.Terms)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func color(c render.RGB) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

// imageExtension maps the sniffed logo MIME to a Maroto image type. Formats
// gofpdf cannot embed (gif, webp, svg) are skipped in the PDF; the HTML
// artifact still carries them as a data URI.
func imageExtension(mime string) (extension.Type, bool) {
	switch mime {
	case "image/png":
		return extension.Png, true
	case "image/jpeg", "image/jpg":
		return extension.Jpg, true
	default:
		return "", false
	}
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "  ·  "
		}
		out += p
	}
	return out
}
