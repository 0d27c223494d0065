// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory groups products. Category deletion leaves products in
// place with their category reference cleared.
type ProductCategory struct {
	ID           uuid.UUID     `json:"id"`
	Name         LocalizedText `json:"name"`
	Slug         string        `json:"slug"`
	Image        *string       `json:"image,omitempty"`
	Order        int           `json:"order"`
	ProductCount int           `json:"productCount,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Product is a catalog entry on the public site.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        LocalizedText    `json:"name"`
	Slug        string           `json:"slug"`
	Description LocalizedText    `json:"description,omitempty"`
	Content     LocalizedText    `json:"content,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Images      StringList       `json:"images"`
	CategoryID  *uuid.UUID       `json:"categoryId,omitempty"`
	Category    *ProductCategory `json:"category,omitempty"`
	IsActive    bool             `json:"isActive"`
	Order       int              `json:"order"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
