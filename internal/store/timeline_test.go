// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"kldcms/internal/models"
)

func TestTimelineStoreReplaceAll(t *testing.T) {
	db := testDB(t)
	s := NewTimelineStore(db)

	// Snapshot so we can restore whatever the seed put there.
	original, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	t.Cleanup(func() { s.ReplaceAll(original) })

	items := []models.TimelineItem{
		{Year: "2020", Title: models.LocalizedText{models.LocaleEN: "Founded"}, Order: 0},
		{Year: "2022", Title: models.LocalizedText{models.LocaleEN: "Expanded"}, Order: 1},
		{Year: "2024", Title: models.LocalizedText{models.LocaleEN: "Rebuilt"}, Order: 2},
	}

	replaced, err := s.ReplaceAll(items)
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if len(replaced) != 3 {
		t.Fatalf("expected 3 items, got %d", len(replaced))
	}
	for i, item := range replaced {
		if item.Year != items[i].Year {
			t.Errorf("item %d year: got %q, want %q", i, item.Year, items[i].Year)
		}
	}

	// Replacing again fully discards the previous set.
	replaced, err = s.ReplaceAll(items[:1])
	if err != nil {
		t.Fatalf("ReplaceAll (shrink): %v", err)
	}
	if len(replaced) != 1 {
		t.Errorf("expected 1 item after shrink, got %d", len(replaced))
	}
}

func TestTimelineStoreReplaceAllEmpty(t *testing.T) {
	db := testDB(t)
	s := NewTimelineStore(db)

	original, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	t.Cleanup(func() { s.ReplaceAll(original) })

	replaced, err := s.ReplaceAll(nil)
	if err != nil {
		t.Fatalf("ReplaceAll(nil): %v", err)
	}
	if len(replaced) != 0 {
		t.Errorf("expected empty timeline, got %d items", len(replaced))
	}
}
