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

// ProjectStore manages reference projects in the database.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a new ProjectStore.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// ProjectFilter narrows List and Count queries.
type ProjectFilter struct {
	Active *bool
	Limit  int
	Offset int
}

const projectColumns = `id, title, slug, description, content, client, location,
	year, image, images, is_active, sort_order, created_at, updated_at`

func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.Client, &p.Location,
		&p.Year, &p.Image, &p.Images, &p.IsActive, &p.Order, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns projects ordered by sort_order then newest first.
func (s *ProjectStore) List(f ProjectFilter) ([]models.Project, error) {
	var args []any
	where := ""
	if f.Active != nil {
		args = append(args, *f.Active)
		where = "WHERE is_active = $1"
	}

	query := `SELECT ` + projectColumns + ` FROM projects ` + where + `
		ORDER BY sort_order, created_at DESC`
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
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of projects matching the filter.
func (s *ProjectStore) Count(f ProjectFilter) (int, error) {
	var args []any
	where := ""
	if f.Active != nil {
		args = append(args, *f.Active)
		where = "WHERE is_active = $1"
	}
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM projects `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// FindByID retrieves a project by ID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a project by its unique slug. Returns nil if not found.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (title, slug, description, content, client, location, year, image, images, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+projectColumns,
		p.Title, p.Slug, p.Description, p.Content, p.Client, p.Location, p.Year, p.Image, p.Images, p.IsActive, p.Order,
	)
	result, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of a project. Returns nil if the
// project does not exist.
func (s *ProjectStore) Update(id uuid.UUID, p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		UPDATE projects SET
			title = $1, slug = $2, description = $3, content = $4, client = $5,
			location = $6, year = $7, image = $8, images = $9, is_active = $10,
			sort_order = $11, updated_at = now()
		WHERE id = $12
		RETURNING `+projectColumns,
		p.Title, p.Slug, p.Description, p.Content, p.Client, p.Location, p.Year, p.Image, p.Images, p.IsActive, p.Order, id,
	)
	result, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return result, nil
}

// SetActive toggles visibility. Returns nil if the project does not exist.
func (s *ProjectStore) SetActive(id uuid.UUID, active bool) (*models.Project, error) {
	row := s.db.QueryRow(`
		UPDATE projects SET is_active = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+projectColumns,
		active, id,
	)
	result, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set project active: %w", err)
	}
	return result, nil
}

// Delete removes a project. Reports whether a row was removed.
func (s *ProjectStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}
