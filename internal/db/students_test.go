package db

import (
	"context"
	"errors"
	"testing"
)

func TestGetStudentByID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := db.SeedDevData(ctx); err != nil {
		t.Fatalf("SeedDevData() error = %v", err)
	}
	// Seeding twice must be a no-op.
	if err := db.SeedDevData(ctx); err != nil {
		t.Fatalf("SeedDevData() second run error = %v", err)
	}

	s, err := db.GetStudentByID(ctx, "S1001")
	if err != nil {
		t.Fatalf("GetStudentByID() error = %v", err)
	}
	if s.Name != "Asha Verma" {
		t.Errorf("Name = %q, want %q", s.Name, "Asha Verma")
	}
	if s.FeesDue() != 25000 {
		t.Errorf("FeesDue() = %v, want 25000", s.FeesDue())
	}
	if s.Marks["physics"] != 82 {
		t.Errorf("Marks[physics] = %v, want 82", s.Marks["physics"])
	}
}

func TestGetStudentByIDNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetStudentByID(context.Background(), "NOPE")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("GetStudentByID() error = %v, want ErrStudentNotFound", err)
	}
}

func TestIncrementQueryLookup(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.IncrementQueryLookup(ctx, "FinanceIntent", "structured"); err != nil {
			t.Fatalf("IncrementQueryLookup() error = %v", err)
		}
	}
	if err := db.IncrementQueryLookup(ctx, "Default Fallback Intent", "faq"); err != nil {
		t.Fatalf("IncrementQueryLookup() error = %v", err)
	}

	lookups, err := db.GetAllQueryLookups(ctx)
	if err != nil {
		t.Fatalf("GetAllQueryLookups() error = %v", err)
	}
	counts := map[string]int64{}
	for _, l := range lookups {
		counts[l.Intent+"/"+l.Outcome] = l.Count
	}
	if counts["FinanceIntent/structured"] != 3 {
		t.Errorf("FinanceIntent/structured = %d, want 3", counts["FinanceIntent/structured"])
	}
	if counts["Default Fallback Intent/faq"] != 1 {
		t.Errorf("Default Fallback Intent/faq = %d, want 1", counts["Default Fallback Intent/faq"])
	}
}
