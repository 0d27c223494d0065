// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kldcms/internal/models"
)

// MessageStore manages contact form submissions in the database.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore returns a new MessageStore.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

const messageColumns = `id, name, email, phone, company, subject, content, is_read, created_at`

func scanMessage(scanner interface{ Scan(...any) error }) (*models.Message, error) {
	var m models.Message
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Subject,
		&m.Content, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns messages, newest first. read narrows to read or unread
// messages; nil returns both.
func (s *MessageStore) List(read *bool, limit, offset int) ([]models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages`
	var args []any
	if read != nil {
		args = append(args, *read)
		query += fmt.Sprintf(" WHERE is_read = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var items []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Count returns the number of messages matching the read filter; nil
// counts all.
func (s *MessageStore) Count(read *bool) (int, error) {
	query := `SELECT COUNT(*) FROM messages`
	var args []any
	if read != nil {
		args = append(args, *read)
		query += ` WHERE is_read = $1`
	}
	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return count, nil
}

// UnreadCount returns the number of messages not yet marked read.
func (s *MessageStore) UnreadCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE is_read = FALSE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

// FindByID retrieves a message by ID. Returns nil if not found.
func (s *MessageStore) FindByID(id uuid.UUID) (*models.Message, error) {
	row := s.db.QueryRow(`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find message by id: %w", err)
	}
	return m, nil
}

// Create inserts a new message and returns it with the generated ID.
// Messages always start unread.
func (s *MessageStore) Create(m *models.Message) (*models.Message, error) {
	row := s.db.QueryRow(`
		INSERT INTO messages (name, email, phone, company, subject, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+messageColumns,
		m.Name, m.Email, m.Phone, m.Company, m.Subject, m.Content,
	)
	result, err := scanMessage(row)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return result, nil
}

// SetRead updates the read flag. Returns nil if the message does not exist.
func (s *MessageStore) SetRead(id uuid.UUID, read bool) (*models.Message, error) {
	row := s.db.QueryRow(`
		UPDATE messages SET is_read = $1 WHERE id = $2
		RETURNING `+messageColumns,
		read, id,
	)
	result, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set message read: %w", err)
	}
	return result, nil
}

// Delete removes a message. Reports whether a row was removed.
func (s *MessageStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return n > 0, nil
}

// CountCreatedSince returns the number of messages created at or after t.
func (s *MessageStore) CountCreatedSince(t time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE created_at >= $1`, t).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count messages since: %w", err)
	}
	return count, nil
}

// Recent returns the latest n messages.
func (s *MessageStore) Recent(n int) ([]models.Message, error) {
	return s.List(nil, n, 0)
}
