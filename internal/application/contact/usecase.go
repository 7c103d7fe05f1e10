// Package contact handles the marketing site's contact-form submissions.
package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/repository"
	"github.com/crealab/invoice-studio/pkg/logger"
)

// UseCase validates and stores contact submissions.
type UseCase struct {
	repo repository.ContactRepository
	log  *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.ContactRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Submit validates the request and persists it. Name, email and message are
// required; company and budget are optional.
func (uc *UseCase) Submit(ctx context.Context, in dto.ContactRequest) (*dto.ContactResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if name == "" || message == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}

	sub := &entity.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Company:   strings.TrimSpace(in.Company),
		Budget:    in.Budget,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(sub); err != nil {
		uc.log.Error().Err(err).Msg("persist contact submission")
		return nil, err
	}

	uc.log.Info().Str("id", sub.ID).Str("email", sub.Email).Msg("contact submission stored")
	return &dto.ContactResponse{ID: sub.ID}, nil
}

// List returns submissions for review, newest first.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]*entity.ContactSubmission, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}
