// Package render holds the fixed catalog of invoice templates: pure functions
// from a document snapshot to display markup, selected by a stable integer id.
//
// Id-stability policy: a template id is never removed or reused once shipped,
// only new ids are added. Historical records therefore stay renderable with
// the exact template they were saved under.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/invoice"
)

// RGB is a template accent color, kept free of any PDF library types so the
// catalog stays pure presentation data.
type RGB struct {
	R, G, B int
}

// Style carries the per-template visual parameters shared by the HTML markup
// and the PDF layout.
type Style struct {
	Primary RGB
	Accent  RGB
	Muted   RGB
}

// Template is one catalog entry.
type Template struct {
	ID    int
	Name  string
	Style Style
	tpl   *template.Template
}

// lineView is a line item with preformatted amounts.
type lineView struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// viewModel is what the markup templates actually consume: raw document
// fields plus every money figure already formatted in the document currency.
type viewModel struct {
	Data         entity.InvoiceData
	Logo         template.URL
	Lines        []lineView
	Subtotal     string
	Discount     string
	HasDiscount  bool
	TaxRate      string
	Tax          string
	Total        string
	PrimaryColor template.CSS
	AccentColor  template.CSS
	MutedColor   template.CSS
}

// RenderHTML produces the template's markup for the given snapshot. Pure:
// same inputs, same markup. Field values pass through html/template escaping,
// so the output carries no executable script regardless of document content.
func (t Template) RenderHTML(data entity.InvoiceData, totals invoice.Totals, logoURL string) (string, error) {
	cur := data.Currency
	lines := make([]lineView, 0, len(data.Items))
	for _, it := range data.Items {
		lines = append(lines, lineView{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   invoice.FormatAmount(it.UnitPrice, cur),
			Amount:      invoice.FormatAmount(it.Quantity.Mul(it.UnitPrice), cur),
		})
	}

	vm := viewModel{
		Data: data,
		// The logo is a data URI validated at ingestion (image MIME, size
		// cap); template.URL keeps html/template from mangling it.
		Logo:         template.URL(logoURL),
		Lines:        lines,
		Subtotal:     invoice.FormatAmount(totals.Subtotal, cur),
		Discount:     invoice.FormatAmount(totals.DiscountAmount, cur),
		HasDiscount:  !totals.DiscountAmount.IsZero(),
		TaxRate:      data.TaxRate.String(),
		Tax:          invoice.FormatAmount(totals.Tax, cur),
		Total:        invoice.FormatAmount(totals.Total, cur),
		PrimaryColor: cssColor(t.Style.Primary),
		AccentColor:  cssColor(t.Style.Accent),
		MutedColor:   cssColor(t.Style.Muted),
	}

	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, vm); err != nil {
		return "", fmt.Errorf("render template %d: %w", t.ID, err)
	}
	return buf.String(), nil
}

func cssColor(c RGB) template.CSS {
	return template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B))
}

// catalog is the shipped template set, ordered by id.
var catalog = []Template{
	{
		ID:   1,
		Name: "Classic",
		Style: Style{
			Primary: RGB{R: 0, G: 70, B: 127},
			Accent:  RGB{R: 230, G: 240, B: 250},
			Muted:   RGB{R: 100, G: 100, B: 100},
		},
		tpl: mustParse("classic", classicHTML),
	},
	{
		ID:   2,
		Name: "Modern",
		Style: Style{
			Primary: RGB{R: 17, G: 24, B: 39},
			Accent:  RGB{R: 245, G: 158, B: 11},
			Muted:   RGB{R: 107, G: 114, B: 128},
		},
		tpl: mustParse("modern", modernHTML),
	},
	{
		ID:   3,
		Name: "Minimal",
		Style: Style{
			Primary: RGB{R: 30, G: 30, B: 30},
			Accent:  RGB{R: 240, G: 240, B: 240},
			Muted:   RGB{R: 140, G: 140, B: 140},
		},
		tpl: mustParse("minimal", minimalHTML),
	},
}

func mustParse(name, src string) *template.Template {
	return template.Must(template.New(name).Parse(src))
}

// ByID returns the template for id, falling back to the first catalog entry
// for anything unknown so historical records never fail to render.
func ByID(id int) Template {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return catalog[0]
}

// All returns the catalog in id order.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}
