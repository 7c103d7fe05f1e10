package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crealab/invoice-studio/internal/application/contact"
	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/pkg/logger"
)

type fakeContactRepo struct {
	stored    []*entity.ContactSubmission
	createErr error
}

func (f *fakeContactRepo) Create(sub *entity.ContactSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.stored = append(f.stored, sub)
	return nil
}

func (f *fakeContactRepo) List(limit, offset int) ([]*entity.ContactSubmission, error) {
	if offset >= len(f.stored) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.stored) {
		end = len(f.stored)
	}
	return f.stored[offset:end], nil
}

func TestSubmit_Valid(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := contact.NewUseCase(repo, logger.Nop())

	resp, err := uc.Submit(context.Background(), dto.ContactRequest{
		Name:    "  Dana Reyes  ",
		Email:   "dana@acme.example",
		Company: "Acme",
		Budget:  decimal.NewFromInt(5000),
		Message: "Need invoices with our branding.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	require.Len(t, repo.stored, 1)
	sub := repo.stored[0]
	assert.Equal(t, "Dana Reyes", sub.Name, "name is trimmed before storage")
	assert.Equal(t, resp.ID, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSubmit_Validation(t *testing.T) {
	uc := contact.NewUseCase(&fakeContactRepo{}, logger.Nop())

	cases := []struct {
		name string
		in   dto.ContactRequest
	}{
		{"missing name", dto.ContactRequest{Email: "a@b.c", Message: "hi"}},
		{"missing message", dto.ContactRequest{Name: "A", Email: "a@b.c"}},
		{"bad email", dto.ContactRequest{Name: "A", Email: "not-an-email", Message: "hi"}},
		{"whitespace only", dto.ContactRequest{Name: "   ", Email: "a@b.c", Message: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSubmit_RepoFailurePropagates(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("connection reset")}
	uc := contact.NewUseCase(repo, logger.Nop())

	_, err := uc.Submit(context.Background(), dto.ContactRequest{
		Name: "A", Email: "a@b.c", Message: "hi",
	})
	assert.Error(t, err)
}

func TestList_AppliesDefaults(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := contact.NewUseCase(repo, logger.Nop())
	for i := 0; i < 3; i++ {
		_, err := uc.Submit(context.Background(), dto.ContactRequest{
			Name: "A", Email: "a@b.c", Message: "hi",
		})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
