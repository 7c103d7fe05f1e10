package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crealab/invoice-studio/internal/application/contact"
	"github.com/crealab/invoice-studio/internal/application/invoicing"
	"github.com/crealab/invoice-studio/internal/application/preview"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Session   *invoicing.Session
	Export    *invoicing.ExportPipeline
	HistoryUC *invoicing.HistoryUseCase
	ContactUC *contact.UseCase // nil when the contact backend is disabled
	PreviewUC *preview.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Editor session
	inv := api.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.Session, deps.Export)
	inv.Get("/", invoiceHandler.Get)
	inv.Put("/", invoiceHandler.Update)
	inv.Post("/items", invoiceHandler.AddItem)
	inv.Put("/items/:index", invoiceHandler.UpdateItem)
	inv.Delete("/items/:index", invoiceHandler.RemoveItem)
	inv.Put("/template", invoiceHandler.SelectTemplate)
	inv.Post("/logo", invoiceHandler.UploadLogo)
	inv.Delete("/logo", invoiceHandler.ClearLogo)
	inv.Get("/preview", invoiceHandler.Preview)
	inv.Post("/export", invoiceHandler.Export)

	api.Get("/templates", invoiceHandler.ListTemplates)

	// Export history
	history := api.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Session)
	history.Get("/", historyHandler.List)
	history.Post("/:id/load", historyHandler.Load)

	// Contact form backend (only when a database is configured)
	if deps.ContactUC != nil {
		contactHandler := NewContactHandler(deps.ContactUC)
		api.Post("/contact", contactHandler.Create)
		api.Get("/contact", contactHandler.List)
	}

	// Client-side utility tools
	tools := api.Group("/tools")
	previewHandler := NewPreviewHandler(deps.PreviewUC)
	tools.Get("/social-preview", previewHandler.Get)
}
