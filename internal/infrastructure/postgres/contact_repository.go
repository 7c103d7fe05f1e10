package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crealab/invoice-studio/internal/domain/entity"
	"github.com/crealab/invoice-studio/internal/domain/repository"
)

// Querier is the subset of pgx shared by pool and tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo persists contact submissions. Works with a pool or a tx.
type ContactRepo struct {
	q Querier
}

// NewContactRepository builds the adapter.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create inserts a new submission.
func (r *ContactRepo) Create(sub *entity.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, company, budget, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Budget, sub.Message, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// List returns submissions, newest first.
func (r *ContactRepo) List(limit, offset int) ([]*entity.ContactSubmission, error) {
	query := `
		SELECT id, name, email, company, budget, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []*entity.ContactSubmission
	for rows.Next() {
		var s entity.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Budget, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return out, nil
}
