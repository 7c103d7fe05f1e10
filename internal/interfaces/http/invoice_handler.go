package http

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/application/invoicing"
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/render"
)

// InvoiceHandler serves the editor session: document edits, template
// selection, logo, live preview and export.
type InvoiceHandler struct {
	session *invoicing.Session
	export  *invoicing.ExportPipeline
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(session *invoicing.Session, export *invoicing.ExportPipeline) *InvoiceHandler {
	return &InvoiceHandler{session: session, export: export}
}

func sessionResponse(snap invoicing.Snapshot) dto.SessionResponse {
	return dto.SessionResponse{
		Data:       snap.Data,
		Totals:     snap.Totals,
		TemplateID: snap.TemplateID,
		HasLogo:    snap.LogoURL != "",
	}
}

// Get returns the current session state.
// GET /api/invoice
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	return c.JSON(sessionResponse(h.session.Snapshot()))
}

// Update replaces the whole editable document. No validation gate: the
// session mirrors what was typed, and the response carries the recomputed
// totals.
// PUT /api/invoice
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in entity.InvoiceData
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	return c.JSON(sessionResponse(h.session.Replace(in)))
}

// AddItem appends a line item.
// POST /api/invoice/items
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.LineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	return c.JSON(sessionResponse(h.session.AddItem(in.ToEntity())))
}

// UpdateItem replaces the line item at a display position.
// PUT /api/invoice/items/:index
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index must be an integer"})
	}
	var in dto.LineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	snap, err := h.session.UpdateItem(index, in.ToEntity())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no line item at that position"})
	}
	return c.JSON(sessionResponse(snap))
}

// RemoveItem deletes the line item at a display position.
// DELETE /api/invoice/items/:index
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index must be an integer"})
	}
	snap, err := h.session.RemoveItem(index)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no line item at that position"})
	}
	return c.JSON(sessionResponse(snap))
}

// SelectTemplate switches the active template. Unknown ids silently resolve
// to the catalog fallback, mirroring how historical records render.
// PUT /api/invoice/template
func (h *InvoiceHandler) SelectTemplate(c *fiber.Ctx) error {
	var in dto.SelectTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	return c.JSON(sessionResponse(h.session.SelectTemplate(in.ID)))
}

// ListTemplates returns the template catalog.
// GET /api/templates
func (h *InvoiceHandler) ListTemplates(c *fiber.Ctx) error {
	all := render.All()
	out := make([]dto.TemplateResponse, 0, len(all))
	for _, t := range all {
		out = append(out, dto.TemplateResponse{ID: t.ID, Name: t.Name})
	}
	return c.JSON(out)
}

// UploadLogo ingests the logo file from a multipart form. Size and MIME
// violations come back as inline 422s; the session is untouched on failure.
// POST /api/invoice/logo
func (h *InvoiceHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "logo file required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "could not read logo file"})
	}
	defer f.Close()

	// Read one byte past the cap so oversize files are detected without
	// buffering arbitrarily large uploads.
	raw, err := io.ReadAll(io.LimitReader(f, invoicing.MaxLogoBytes+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "could not read logo file"})
	}

	dataURI, err := invoicing.IngestLogo(raw)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogoTooLarge):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "LOGO_TOO_LARGE",
				Message: fmt.Sprintf("logo must be at most %d KiB", invoicing.MaxLogoBytes/1024),
			})
		case errors.Is(err, domain.ErrLogoNotImage):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "LOGO_NOT_IMAGE",
				Message: "logo must be an image file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	h.session.SetLogo(dataURI)
	return c.JSON(sessionResponse(h.session.Snapshot()))
}

// ClearLogo removes the logo from the session.
// DELETE /api/invoice/logo
func (h *InvoiceHandler) ClearLogo(c *fiber.Ctx) error {
	h.session.ClearLogo()
	return c.JSON(sessionResponse(h.session.Snapshot()))
}

// Preview renders the live markup with the selected template.
// GET /api/invoice/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	markup, err := h.session.Preview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.SendString(markup)
}

// Export runs the export pipeline and streams the artifact as a download.
// A second export while one is running is refused with 409.
// POST /api/invoice/export
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	artifact, err := h.export.Export(c.Context(), h.session)
	if err != nil {
		if errors.Is(err, domain.ErrExportInFlight) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXPORT_IN_FLIGHT", Message: "an export is already running"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Send(artifact.Bytes)
}
