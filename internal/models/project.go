// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a reference engagement shown on the public projects page.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Title       LocalizedText `json:"title"`
	Slug        string        `json:"slug"`
	Description LocalizedText `json:"description,omitempty"`
	Content     LocalizedText `json:"content,omitempty"`
	Client      LocalizedText `json:"client,omitempty"`
	Location    LocalizedText `json:"location,omitempty"`
	Year        *string       `json:"year,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Images      StringList    `json:"images"`
	IsActive    bool          `json:"isActive"`
	Order       int           `json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
