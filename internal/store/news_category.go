// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kldcms/internal/models"
)

// NewsCategoryStore manages news categories in the database.
type NewsCategoryStore struct {
	db *sql.DB
}

// NewNewsCategoryStore returns a new NewsCategoryStore.
func NewNewsCategoryStore(db *sql.DB) *NewsCategoryStore {
	return &NewsCategoryStore{db: db}
}

const newsCategoryColumns = `id, name, slug, sort_order, created_at`

// scanNewsCategory scans a row into a NewsCategory struct.
func scanNewsCategory(scanner interface{ Scan(...any) error }) (*models.NewsCategory, error) {
	var c models.NewsCategory
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all news categories ordered by sort_order, each with the
// number of articles it owns.
func (s *NewsCategoryStore) List() ([]models.NewsCategory, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.sort_order, c.created_at,
		       COUNT(n.id) AS news_count
		FROM news_categories c
		LEFT JOIN news n ON n.category_id = c.id
		GROUP BY c.id
		ORDER BY c.sort_order, c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list news categories: %w", err)
	}
	defer rows.Close()

	var items []models.NewsCategory
	for rows.Next() {
		var c models.NewsCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.CreatedAt, &c.NewsCount); err != nil {
			return nil, fmt.Errorf("scan news category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *NewsCategoryStore) FindByID(id uuid.UUID) (*models.NewsCategory, error) {
	row := s.db.QueryRow(`SELECT `+newsCategoryColumns+` FROM news_categories WHERE id = $1`, id)
	c, err := scanNewsCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by its unique slug. Returns nil if not found.
func (s *NewsCategoryStore) FindBySlug(slug string) (*models.NewsCategory, error) {
	row := s.db.QueryRow(`SELECT `+newsCategoryColumns+` FROM news_categories WHERE slug = $1`, slug)
	c, err := scanNewsCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it with the generated ID.
// The slug uniqueness constraint surfaces as an error on duplicates.
func (s *NewsCategoryStore) Create(c *models.NewsCategory) (*models.NewsCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO news_categories (name, slug, sort_order)
		VALUES ($1, $2, $3)
		RETURNING `+newsCategoryColumns,
		c.Name, c.Slug, c.Order,
	)
	result, err := scanNewsCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create news category: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of a category. Returns nil if the
// category does not exist.
func (s *NewsCategoryStore) Update(id uuid.UUID, c *models.NewsCategory) (*models.NewsCategory, error) {
	row := s.db.QueryRow(`
		UPDATE news_categories SET name = $1, slug = $2, sort_order = $3
		WHERE id = $4
		RETURNING `+newsCategoryColumns,
		c.Name, c.Slug, c.Order, id,
	)
	result, err := scanNewsCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update news category: %w", err)
	}
	return result, nil
}

// Delete removes a category. Articles keep existing with their category
// reference cleared (ON DELETE SET NULL). Reports whether a row was removed.
func (s *NewsCategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM news_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news category: %w", err)
	}
	return n > 0, nil
}
