// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a hero carousel slide on the homepage.
type Banner struct {
	ID        uuid.UUID     `json:"id"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle,omitempty"`
	Image     string        `json:"image"`
	Link      *string       `json:"link,omitempty"`
	Order     int           `json:"order"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
}

// TeamMember is a person listed on the about/team page.
type TeamMember struct {
	ID        uuid.UUID     `json:"id"`
	Name      LocalizedText `json:"name"`
	Position  LocalizedText `json:"position"`
	Bio       LocalizedText `json:"bio,omitempty"`
	Image     *string       `json:"image,omitempty"`
	Order     int           `json:"order"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
}

// TimelineItem is one milestone on the company history timeline.
type TimelineItem struct {
	ID          uuid.UUID     `json:"id"`
	Year        string        `json:"year"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
	Order       int           `json:"order"`
}
