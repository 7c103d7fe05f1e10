package repository

import "github.com/crealab/invoice-studio/internal/domain/entity"

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(submission *entity.ContactSubmission) error
	List(limit, offset int) ([]*entity.ContactSubmission, error)
}
