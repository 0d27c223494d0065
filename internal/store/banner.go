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

// BannerStore manages homepage banners in the database.
type BannerStore struct {
	db *sql.DB
}

// NewBannerStore returns a new BannerStore.
func NewBannerStore(db *sql.DB) *BannerStore {
	return &BannerStore{db: db}
}

const bannerColumns = `id, title, subtitle, image, link, is_active, sort_order, created_at`

func scanBanner(scanner interface{ Scan(...any) error }) (*models.Banner, error) {
	var b models.Banner
	err := scanner.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Image, &b.Link,
		&b.IsActive, &b.Order, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns banners ordered by sort_order. When activeOnly is set,
// hidden banners are excluded.
func (s *BannerStore) List(activeOnly bool) ([]models.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var items []models.Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a banner by ID. Returns nil if not found.
func (s *BannerStore) FindByID(id uuid.UUID) (*models.Banner, error) {
	row := s.db.QueryRow(`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)
	b, err := scanBanner(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find banner by id: %w", err)
	}
	return b, nil
}

// Create inserts a new banner and returns it with the generated ID.
func (s *BannerStore) Create(b *models.Banner) (*models.Banner, error) {
	row := s.db.QueryRow(`
		INSERT INTO banners (title, subtitle, image, link, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bannerColumns,
		b.Title, b.Subtitle, b.Image, b.Link, b.IsActive, b.Order,
	)
	result, err := scanBanner(row)
	if err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of a banner. Returns nil if the
// banner does not exist.
func (s *BannerStore) Update(id uuid.UUID, b *models.Banner) (*models.Banner, error) {
	row := s.db.QueryRow(`
		UPDATE banners SET
			title = $1, subtitle = $2, image = $3, link = $4,
			is_active = $5, sort_order = $6
		WHERE id = $7
		RETURNING `+bannerColumns,
		b.Title, b.Subtitle, b.Image, b.Link, b.IsActive, b.Order, id,
	)
	result, err := scanBanner(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return result, nil
}

// SetActive toggles visibility. Returns nil if the banner does not exist.
func (s *BannerStore) SetActive(id uuid.UUID, active bool) (*models.Banner, error) {
	row := s.db.QueryRow(`
		UPDATE banners SET is_active = $1
		WHERE id = $2
		RETURNING `+bannerColumns,
		active, id,
	)
	result, err := scanBanner(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set banner active: %w", err)
	}
	return result, nil
}

// Delete removes a banner. Reports whether a row was removed.
func (s *BannerStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete banner: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete banner: %w", err)
	}
	return n > 0, nil
}
