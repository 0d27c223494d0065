// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"kldcms/internal/models"
)

// SettingStore manages site settings as a key/value map of JSON documents.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore returns a new SettingStore.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// All returns every setting as a key → value map.
func (s *SettingStore) All() (models.SettingMap, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	out := models.SettingMap{}
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[key] = json.RawMessage(value)
	}
	return out, rows.Err()
}

// Get returns the value for a key, or nil if the key is not set.
func (s *SettingStore) Get(key string) (json.RawMessage, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return json.RawMessage(value), nil
}

// SetMany upserts all given keys in a single transaction and returns the
// full map afterwards. Either every key is written or none are.
func (s *SettingStore) SetMany(values models.SettingMap) (models.SettingMap, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("set settings: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`)
	if err != nil {
		return nil, fmt.Errorf("set settings: prepare: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.Exec(key, []byte(value)); err != nil {
			return nil, fmt.Errorf("set setting %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("set settings: commit: %w", err)
	}
	return s.All()
}

// CompanyInfoStore manages localized company profile fields keyed by name
// (about, mission, vision and so on).
type CompanyInfoStore struct {
	db *sql.DB
}

// NewCompanyInfoStore returns a new CompanyInfoStore.
func NewCompanyInfoStore(db *sql.DB) *CompanyInfoStore {
	return &CompanyInfoStore{db: db}
}

// All returns every company info field as a key → localized text map.
func (s *CompanyInfoStore) All() (models.CompanyInfoMap, error) {
	rows, err := s.db.Query(`SELECT key, value FROM company_info`)
	if err != nil {
		return nil, fmt.Errorf("list company info: %w", err)
	}
	defer rows.Close()

	out := models.CompanyInfoMap{}
	for rows.Next() {
		var key string
		var value models.LocalizedText
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan company info: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

// Get returns the localized value for a key, or nil if the key is not set.
func (s *CompanyInfoStore) Get(key string) (models.LocalizedText, error) {
	var value models.LocalizedText
	err := s.db.QueryRow(`SELECT value FROM company_info WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get company info: %w", err)
	}
	return value, nil
}

// SetMany upserts all given keys in a single transaction and returns the
// full map afterwards.
func (s *CompanyInfoStore) SetMany(values models.CompanyInfoMap) (models.CompanyInfoMap, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("set company info: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO company_info (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`)
	if err != nil {
		return nil, fmt.Errorf("set company info: prepare: %w", err)
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.Exec(key, value); err != nil {
			return nil, fmt.Errorf("set company info %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("set company info: commit: %w", err)
	}
	return s.All()
}
