// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Locale identifies one of the site's supported content languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
	LocaleFR Locale = "fr"
	LocaleAR Locale = "ar"
)

// Locales is the closed set of supported locales. DefaultLocale is the
// fallback every render path resolves through.
var Locales = []Locale{LocaleEN, LocaleZH, LocaleFR, LocaleAR}

// DefaultLocale is the language used when a requested translation is missing.
const DefaultLocale = LocaleEN

// IsValidLocale reports whether s is one of the supported locale codes.
func IsValidLocale(s string) bool {
	switch Locale(s) {
	case LocaleEN, LocaleZH, LocaleFR, LocaleAR:
		return true
	}
	return false
}

// LocalizedText holds the same piece of text in multiple languages.
// Not every locale needs to be populated; missing entries resolve through
// the default locale. Stored as a JSONB column.
type LocalizedText map[Locale]string

// Resolve picks the display string for the requested locale: the requested
// translation if present and non-empty, otherwise the default-locale
// translation, otherwise the empty string. Every read path — public pages
// and admin views alike — resolves through this exact order.
func (t LocalizedText) Resolve(locale Locale) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLocale]; ok && v != "" {
		return v
	}
	return ""
}

// IsEmpty reports whether no locale carries a non-empty string.
func (t LocalizedText) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// UnmarshalJSON accepts either the usual locale→string object or a bare
// JSON string. Bare strings predate localization; they are treated as
// already-resolved text and surface verbatim for every requested locale.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var m map[Locale]string
	if err := json.Unmarshal(data, &m); err == nil {
		for loc := range m {
			if !IsValidLocale(string(loc)) {
				return fmt.Errorf("localized text: unsupported locale %q", loc)
			}
		}
		*t = m
		return nil
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = LocalizedText{DefaultLocale: plain}
		return nil
	}

	return fmt.Errorf("localized text: expected object or string, got %s", data)
}

// Value implements driver.Valuer so LocalizedText can be written to a
// JSONB column. A nil map is stored as SQL NULL.
func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner, decoding a JSONB column into the map.
// Shares the legacy plain-string handling with UnmarshalJSON.
func (t *LocalizedText) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("localized text: cannot scan %T", src)
	}

	return t.UnmarshalJSON(data)
}
