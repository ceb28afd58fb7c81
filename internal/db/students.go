package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campusfaq/internal/models"
)

// GetStudentByID looks up a student record by its identifier.
// Returns ErrStudentNotFound when no row matches.
func (d *DB) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	var s models.Student
	err := d.Pool.QueryRow(ctx, `
		SELECT id, name, fees_total::float8, fees_paid::float8, fees_due_date,
		       marks, attendance_percent::float8, updated_at
		FROM students
		WHERE id = $1
	`, id).Scan(
		&s.ID, &s.Name, &s.FeesTotal, &s.FeesPaid, &s.FeesDueDate,
		&s.Marks, &s.AttendancePercent, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &s, nil
}
