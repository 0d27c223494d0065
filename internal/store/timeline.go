// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"kldcms/internal/models"
)

// TimelineStore manages company history milestones. The timeline is always
// edited as a whole: admins submit the full list and it replaces whatever
// was there before.
type TimelineStore struct {
	db *sql.DB
}

// NewTimelineStore returns a new TimelineStore.
func NewTimelineStore(db *sql.DB) *TimelineStore {
	return &TimelineStore{db: db}
}

const timelineColumns = `id, year, title, description, sort_order`

// List returns all milestones ordered by sort_order then year.
func (s *TimelineStore) List() ([]models.TimelineItem, error) {
	rows, err := s.db.Query(`SELECT ` + timelineColumns + ` FROM timeline ORDER BY sort_order, year`)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	defer rows.Close()

	var items []models.TimelineItem
	for rows.Next() {
		var t models.TimelineItem
		if err := rows.Scan(&t.ID, &t.Year, &t.Title, &t.Description, &t.Order); err != nil {
			return nil, fmt.Errorf("scan timeline item: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// ReplaceAll swaps the entire timeline for the given items in a single
// transaction. On any failure the previous timeline stays intact.
func (s *TimelineStore) ReplaceAll(items []models.TimelineItem) ([]models.TimelineItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("replace timeline: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM timeline`); err != nil {
		return nil, fmt.Errorf("replace timeline: clear: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO timeline (year, title, description, sort_order)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return nil, fmt.Errorf("replace timeline: prepare: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		if _, err := stmt.Exec(item.Year, item.Title, item.Description, item.Order); err != nil {
			return nil, fmt.Errorf("replace timeline: insert item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("replace timeline: commit: %w", err)
	}
	return s.List()
}
