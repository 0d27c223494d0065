// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kldcms/internal/models"
)

// NewsStore manages news articles in the database.
type NewsStore struct {
	db *sql.DB
}

// NewNewsStore returns a new NewsStore.
func NewNewsStore(db *sql.DB) *NewsStore {
	return &NewsStore{db: db}
}

// NewsFilter narrows List and Count queries. Nil pointer fields mean
// "no constraint".
type NewsFilter struct {
	CategoryID *uuid.UUID
	Published  *bool
	Limit      int
	Offset     int
}

const newsColumns = `n.id, n.title, n.slug, n.excerpt, n.content, n.image,
	n.category_id, n.is_published, n.published_at, n.view_count,
	n.created_at, n.updated_at`

// scanNews scans a row into a News struct, including the joined category
// columns when present.
func scanNews(scanner interface{ Scan(...any) error }) (*models.News, error) {
	var n models.News
	var catID, catSlug sql.NullString
	var catName models.LocalizedText
	err := scanner.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Excerpt, &n.Content, &n.Image,
		&n.CategoryID, &n.IsPublished, &n.PublishedAt, &n.ViewCount,
		&n.CreatedAt, &n.UpdatedAt,
		&catID, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		id, err := uuid.Parse(catID.String)
		if err != nil {
			return nil, fmt.Errorf("parse category id: %w", err)
		}
		n.Category = &models.NewsCategory{ID: id, Name: catName, Slug: catSlug.String}
	}
	return &n, nil
}

func (f NewsFilter) where(args *[]any) string {
	var conds []string
	if f.Published != nil {
		*args = append(*args, *f.Published)
		conds = append(conds, fmt.Sprintf("n.is_published = $%d", len(*args)))
	}
	if f.CategoryID != nil {
		*args = append(*args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("n.category_id = $%d", len(*args)))
	}
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// List returns articles matching the filter, most recently published first.
// Unpublished articles sort by creation time after the published ones.
func (s *NewsStore) List(f NewsFilter) ([]models.News, error) {
	var args []any
	where := f.where(&args)

	query := `
		SELECT ` + newsColumns + `, c.id, c.name, c.slug
		FROM news n
		LEFT JOIN news_categories c ON c.id = n.category_id
		` + where + `
		ORDER BY n.published_at DESC NULLS LAST, n.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// Count returns the number of articles matching the filter.
func (s *NewsStore) Count(f NewsFilter) (int, error) {
	var args []any
	where := f.where(&args)

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM news n `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return count, nil
}

// FindByID retrieves an article by ID with its category. Returns nil if
// not found.
func (s *NewsStore) FindByID(id uuid.UUID) (*models.News, error) {
	row := s.db.QueryRow(`
		SELECT `+newsColumns+`, c.id, c.name, c.slug
		FROM news n
		LEFT JOIN news_categories c ON c.id = n.category_id
		WHERE n.id = $1`, id)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by id: %w", err)
	}
	return n, nil
}

// FindBySlug retrieves an article by its unique slug. Returns nil if not found.
func (s *NewsStore) FindBySlug(slug string) (*models.News, error) {
	row := s.db.QueryRow(`
		SELECT `+newsColumns+`, c.id, c.name, c.slug
		FROM news n
		LEFT JOIN news_categories c ON c.id = n.category_id
		WHERE n.slug = $1`, slug)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}
	return n, nil
}

// Create inserts a new article. An article created as published gets its
// publication timestamp set immediately.
func (s *NewsStore) Create(n *models.News) (*models.News, error) {
	var publishedAt *time.Time
	if n.IsPublished {
		now := time.Now()
		publishedAt = &now
	}
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO news (title, slug, excerpt, content, image, category_id, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		n.Title, n.Slug, n.Excerpt, n.Content, n.Image, n.CategoryID, n.IsPublished, publishedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return s.FindByID(id)
}

// Update replaces the editable fields of an article. The publication
// timestamp is stamped on the first transition to published and never
// changed afterwards, even across unpublish/republish cycles. Returns nil
// if the article does not exist.
func (s *NewsStore) Update(id uuid.UUID, n *models.News) (*models.News, error) {
	res, err := s.db.Exec(`
		UPDATE news SET
			title = $1, slug = $2, excerpt = $3, content = $4, image = $5,
			category_id = $6, is_published = $7,
			published_at = CASE WHEN $7 AND published_at IS NULL THEN now() ELSE published_at END,
			updated_at = now()
		WHERE id = $8`,
		n.Title, n.Slug, n.Excerpt, n.Content, n.Image, n.CategoryID, n.IsPublished, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.FindByID(id)
}

// SetPublished toggles the published flag, stamping the publication time
// on the first publish only. Returns nil if the article does not exist.
func (s *NewsStore) SetPublished(id uuid.UUID, published bool) (*models.News, error) {
	res, err := s.db.Exec(`
		UPDATE news SET
			is_published = $1,
			published_at = CASE WHEN $1 AND published_at IS NULL THEN now() ELSE published_at END,
			updated_at = now()
		WHERE id = $2`,
		published, id,
	)
	if err != nil {
		return nil, fmt.Errorf("set news published: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("set news published: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.FindByID(id)
}

// IncrementViewCount adds one view to an article. Missing articles are
// a no-op.
func (s *NewsStore) IncrementViewCount(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE news SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment news view count: %w", err)
	}
	return nil
}

// Delete removes an article. Reports whether a row was removed.
func (s *NewsStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	return n > 0, nil
}

// CountCreatedSince returns the number of articles created at or after t.
func (s *NewsStore) CountCreatedSince(t time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM news WHERE created_at >= $1`, t).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count news since: %w", err)
	}
	return count, nil
}

// Recent returns the latest n articles by creation time, regardless of
// publication state.
func (s *NewsStore) Recent(n int) ([]models.News, error) {
	rows, err := s.db.Query(`
		SELECT `+newsColumns+`, c.id, c.name, c.slug
		FROM news n
		LEFT JOIN news_categories c ON c.id = n.category_id
		ORDER BY n.created_at DESC
		LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("recent news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		item, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
