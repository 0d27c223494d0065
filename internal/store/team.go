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

// TeamMemberStore manages team member profiles in the database.
type TeamMemberStore struct {
	db *sql.DB
}

// NewTeamMemberStore returns a new TeamMemberStore.
func NewTeamMemberStore(db *sql.DB) *TeamMemberStore {
	return &TeamMemberStore{db: db}
}

const teamMemberColumns = `id, name, position, bio, image, is_active, sort_order, created_at`

func scanTeamMember(scanner interface{ Scan(...any) error }) (*models.TeamMember, error) {
	var m models.TeamMember
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Position, &m.Bio, &m.Image,
		&m.IsActive, &m.Order, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns team members ordered by sort_order. When activeOnly is set,
// hidden members are excluded.
func (s *TeamMemberStore) List(activeOnly bool) ([]models.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var items []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a team member by ID. Returns nil if not found.
func (s *TeamMemberStore) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	row := s.db.QueryRow(`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id)
	m, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team member by id: %w", err)
	}
	return m, nil
}

// Create inserts a new team member and returns it with the generated ID.
func (s *TeamMemberStore) Create(m *models.TeamMember) (*models.TeamMember, error) {
	row := s.db.QueryRow(`
		INSERT INTO team_members (name, position, bio, image, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+teamMemberColumns,
		m.Name, m.Position, m.Bio, m.Image, m.IsActive, m.Order,
	)
	result, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of a team member. Returns nil if the
// member does not exist.
func (s *TeamMemberStore) Update(id uuid.UUID, m *models.TeamMember) (*models.TeamMember, error) {
	row := s.db.QueryRow(`
		UPDATE team_members SET
			name = $1, position = $2, bio = $3, image = $4,
			is_active = $5, sort_order = $6
		WHERE id = $7
		RETURNING `+teamMemberColumns,
		m.Name, m.Position, m.Bio, m.Image, m.IsActive, m.Order, id,
	)
	result, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return result, nil
}

// SetActive toggles visibility. Returns nil if the member does not exist.
func (s *TeamMemberStore) SetActive(id uuid.UUID, active bool) (*models.TeamMember, error) {
	row := s.db.QueryRow(`
		UPDATE team_members SET is_active = $1
		WHERE id = $2
		RETURNING `+teamMemberColumns,
		active, id,
	)
	result, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set team member active: %w", err)
	}
	return result, nil
}

// Delete removes a team member. Reports whether a row was removed.
func (s *TeamMemberStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete team member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete team member: %w", err)
	}
	return n > 0, nil
}
