// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsCategory groups news articles. Deleting a category never deletes its
// articles — their category reference is cleared instead.
type NewsCategory struct {
	ID        uuid.UUID     `json:"id"`
	Name      LocalizedText `json:"name"`
	Slug      string        `json:"slug"`
	Order     int           `json:"order"`
	NewsCount int           `json:"newsCount,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// News is a single article. Title and content are localized; the slug is
// globally unique among articles and forms the public URL.
type News struct {
	ID          uuid.UUID     `json:"id"`
	Title       LocalizedText `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     LocalizedText `json:"excerpt,omitempty"`
	Content     LocalizedText `json:"content"`
	Image       *string       `json:"image,omitempty"`
	CategoryID  *uuid.UUID    `json:"categoryId,omitempty"`
	Category    *NewsCategory `json:"category,omitempty"`
	IsPublished bool          `json:"isPublished"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	ViewCount   int           `json:"viewCount"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
