package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/talentbase-api/internal/model"
)

type CandidateRepo struct {
	pool *pgxpool.Pool
}

func NewCandidateRepo(pool *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{pool: pool}
}

// CandidateFilter holds query parameters for listing candidates.
// SearchVariants carries the raw query plus its keyboard-layout
// transliterations; a row matches if any variant matches.
type CandidateFilter struct {
	SearchVariants []string
	Company        string
}

// List returns candidates, newest first, with optional filters
func (r *CandidateRepo) List(ctx context.Context, filter CandidateFilter) ([]model.Candidate, error) {
	query := `
		SELECT id, name, email, phone, last_company, last_position,
		       source_file, created_at, updated_at
		FROM candidates
		WHERE 1 = 1
	`
	args := []any{}
	argIdx := 1

	if len(filter.SearchVariants) > 0 {
		var clauses []string
		for _, v := range filter.SearchVariants {
			clauses = append(clauses, fmt.Sprintf(
				"(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d OR LOWER(last_company) LIKE $%d OR LOWER(last_position) LIKE $%d)",
				argIdx, argIdx, argIdx, argIdx))
			args = append(args, "%"+strings.ToLower(v)+"%")
			argIdx++
		}
		query += " AND (" + strings.Join(clauses, " OR ") + ")"
	}
	if filter.Company != "" {
		query += fmt.Sprintf(" AND LOWER(last_company) LIKE $%d", argIdx)
		args = append(args, "%"+strings.ToLower(filter.Company)+"%")
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	defer rows.Close()

	var candidates []model.Candidate
	for rows.Next() {
		var c model.Candidate
		err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.LastCompany,
			&c.LastPosition, &c.SourceFile, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

// FindByID returns a single candidate, nil if not found
func (r *CandidateRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var c model.Candidate
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, last_company, last_position,
		       source_file, created_at, updated_at
		FROM candidates
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.LastCompany,
		&c.LastPosition, &c.SourceFile, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding candidate: %w", err)
	}
	return &c, nil
}

// Create inserts a new candidate
func (r *CandidateRepo) Create(ctx context.Context, c *model.Candidate) (*model.Candidate, error) {
	var created model.Candidate
	err := r.pool.QueryRow(ctx, `
		INSERT INTO candidates (name, email, phone, last_company, last_position, source_file)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, last_company, last_position,
		          source_file, created_at, updated_at
	`, c.Name, c.Email, c.Phone, c.LastCompany, c.LastPosition, c.SourceFile,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Phone,
		&created.LastCompany, &created.LastPosition, &created.SourceFile,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating candidate: %w", err)
	}
	return &created, nil
}

// Update updates a candidate
func (r *CandidateRepo) Update(ctx context.Context, c *model.Candidate) (*model.Candidate, error) {
	var updated model.Candidate
	err := r.pool.QueryRow(ctx, `
		UPDATE candidates
		SET name = $2, email = $3, phone = $4, last_company = $5,
		    last_position = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, phone, last_company, last_position,
		          source_file, created_at, updated_at
	`, c.ID, c.Name, c.Email, c.Phone, c.LastCompany, c.LastPosition,
	).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.Phone,
		&updated.LastCompany, &updated.LastPosition, &updated.SourceFile,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating candidate: %w", err)
	}
	return &updated, nil
}

// Delete removes a candidate
func (r *CandidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}
