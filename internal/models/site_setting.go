// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"
)

// Setting is a single site configuration entry. The value is free-form
// JSON — usually a LocalizedText object, sometimes a nested structure —
// keyed by a unique string. Writes are upserts keyed by Key alone.
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SettingMap is the key→value view of the settings table returned by the
// API and consumed by page components.
type SettingMap map[string]json.RawMessage

// CompanyInfo is one entry of the company profile store: a unique key
// mapped to a localized value (address, mission statement, phone, ...).
type CompanyInfo struct {
	Key       string        `json:"key"`
	Value     LocalizedText `json:"value"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CompanyInfoMap is the key→value view of the company profile.
type CompanyInfoMap map[string]LocalizedText
