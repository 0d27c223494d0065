package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed guards every insert with an exists check, so running it twice
	// must not error and must not duplicate reference data.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify the admin user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE role = 'admin'").Scan(&userCount); err != nil {
		t.Fatalf("count admin users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 admin user, got %d", userCount)
	}

	// Category slugs are unique — re-seeding must not create duplicates.
	var catCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM news_categories WHERE slug = 'technology'").Scan(&catCount); err != nil {
		t.Fatalf("count news categories: %v", err)
	}
	if catCount != 1 {
		t.Errorf("expected exactly 1 technology category, got %d", catCount)
	}

	// Baseline company profile keys exist.
	var infoCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM company_info").Scan(&infoCount); err != nil {
		t.Fatalf("count company info: %v", err)
	}
	if infoCount < 1 {
		t.Errorf("expected at least 1 company info entry, got %d", infoCount)
	}
}
