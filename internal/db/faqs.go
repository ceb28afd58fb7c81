package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campusfaq/internal/models"
)

const faqColumns = `id, question, answer, category, created_at, updated_at`

// ListFAQs returns every stored FAQ ordered by creation time.
func (d *DB) ListFAQs(ctx context.Context) ([]models.StoredFAQ, error) {
	rows, err := d.Pool.Query(ctx, `SELECT `+faqColumns+` FROM faqs ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.StoredFAQ
	for rows.Next() {
		var f models.StoredFAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetFAQByID retrieves a single FAQ by ID.
func (d *DB) GetFAQByID(ctx context.Context, id uuid.UUID) (*models.StoredFAQ, error) {
	var f models.StoredFAQ
	err := d.Pool.QueryRow(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFAQNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFAQ inserts a new FAQ. Returns ErrDuplicateQuestion if the question already exists.
func (d *DB) CreateFAQ(ctx context.Context, question, answer string, category *string) (*models.StoredFAQ, error) {
	var f models.StoredFAQ
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING `+faqColumns,
		question, answer, category,
	).Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateQuestion
		}
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return &f, nil
}

// DeleteFAQ removes an FAQ by ID.
func (d *DB) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFAQNotFound
	}
	return nil
}
