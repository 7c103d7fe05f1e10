package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crealab/invoice-studio/internal/application/contact"
	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/domain"
)

// ContactHandler serves the contact-form backend.
type ContactHandler struct {
	uc *contact.UseCase
}

// NewContactHandler builds the handler.
func NewContactHandler(uc *contact.UseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create stores a submission.
// POST /api/contact
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	resp, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email and message are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List returns stored submissions, newest first.
// GET /api/contact
func (h *ContactHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	subs, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(subs)
}
