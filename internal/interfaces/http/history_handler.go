package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/application/invoicing"
	"github.com/crealab/invoice-studio/internal/domain"
)

// HistoryHandler serves the export history: browse and restore.
type HistoryHandler struct {
	uc      *invoicing.HistoryUseCase
	session *invoicing.Session
}

// NewHistoryHandler builds the handler.
func NewHistoryHandler(uc *invoicing.HistoryUseCase, session *invoicing.Session) *HistoryHandler {
	return &HistoryHandler{uc: uc, session: session}
}

// List returns the log, most recent first. A broken store answers 503:
// history is unavailable this session, the editor keeps working.
// GET /api/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "HISTORY_UNAVAILABLE", Message: "history is unavailable this session"})
	}
	out := make([]dto.HistoryRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.NewHistoryRecordResponse(rec))
	}
	return c.JSON(out)
}

// Load overwrites the session with a stored record. Full overwrite, no merge.
// POST /api/history/:id/load
func (h *HistoryHandler) Load(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id must be an integer"})
	}
	snap, err := h.uc.Load(h.session, int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "history record not found"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "HISTORY_UNAVAILABLE", Message: "history is unavailable this session"})
	}
	return c.JSON(sessionResponse(snap))
}
