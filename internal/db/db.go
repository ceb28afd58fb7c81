package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusfaq/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevData inserts sample FAQs and students for development. Skips rows that already exist.
func (d *DB) SeedDevData(ctx context.Context) error {
	faqs := []struct {
		question string
		answer   string
		category string
	}{
		{"What is SIH?", "Smart India Hackathon", "events"},
		{"When does the semester start?", "The odd semester starts in the first week of August.", "academics"},
		{"How do I pay my fees?", "Fees can be paid online through the student portal under Payments.", "fees"},
		{"Where is the library?", "The central library is on the ground floor of Block A.", "campus"},
	}

	for _, f := range faqs {
		if _, err := d.CreateFAQ(ctx, f.question, f.answer, &f.category); err != nil && !errors.Is(err, ErrDuplicateQuestion) {
			return fmt.Errorf("failed to seed faq %q: %w", f.question, err)
		}
	}

	students := []struct {
		id         string
		name       string
		total      float64
		paid       float64
		marks      string
		attendance float64
	}{
		{"S1001", "Asha Verma", 85000, 60000, `{"maths": 78, "physics": 82}`, 91.5},
		{"S1002", "Rohan Iyer", 85000, 85000, `{"maths": 64, "chemistry": 71}`, 74.0},
	}

	query := `
		INSERT INTO students (id, name, fees_total, fees_paid, marks, attendance_percent)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)
		ON CONFLICT (id) DO NOTHING
	`

	for _, s := range students {
		if _, err := d.Pool.Exec(ctx, query, s.id, s.name, s.total, s.paid, s.marks, s.attendance); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", s.id, err)
		}
	}

	return nil
}
