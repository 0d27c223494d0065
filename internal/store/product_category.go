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

// ProductCategoryStore manages product categories in the database.
type ProductCategoryStore struct {
	db *sql.DB
}

// NewProductCategoryStore returns a new ProductCategoryStore.
func NewProductCategoryStore(db *sql.DB) *ProductCategoryStore {
	return &ProductCategoryStore{db: db}
}

const productCategoryColumns = `id, name, slug, image, sort_order, created_at`

func scanProductCategory(scanner interface{ Scan(...any) error }) (*models.ProductCategory, error) {
	var c models.ProductCategory
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Image, &c.Order, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all product categories ordered by sort_order, each with the
// number of products it owns.
func (s *ProductCategoryStore) List() ([]models.ProductCategory, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.image, c.sort_order, c.created_at,
		       COUNT(p.id) AS product_count
		FROM product_categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.sort_order, c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	var items []models.ProductCategory
	for rows.Next() {
		var c models.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Image, &c.Order, &c.CreatedAt, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *ProductCategoryStore) FindByID(id uuid.UUID) (*models.ProductCategory, error) {
	row := s.db.QueryRow(`SELECT `+productCategoryColumns+` FROM product_categories WHERE id = $1`, id)
	c, err := scanProductCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by its unique slug. Returns nil if not found.
func (s *ProductCategoryStore) FindBySlug(slug string) (*models.ProductCategory, error) {
	row := s.db.QueryRow(`SELECT `+productCategoryColumns+` FROM product_categories WHERE slug = $1`, slug)
	c, err := scanProductCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it with the generated ID.
func (s *ProductCategoryStore) Create(c *models.ProductCategory) (*models.ProductCategory, error) {
	row := s.db.QueryRow(`
		INSERT INTO product_categories (name, slug, image, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+productCategoryColumns,
		c.Name, c.Slug, c.Image, c.Order,
	)
	result, err := scanProductCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create product category: %w", err)
	}
	return result, nil
}

// Update replaces the editable fields of a category. Returns nil if the
// category does not exist.
func (s *ProductCategoryStore) Update(id uuid.UUID, c *models.ProductCategory) (*models.ProductCategory, error) {
	row := s.db.QueryRow(`
		UPDATE product_categories SET name = $1, slug = $2, image = $3, sort_order = $4
		WHERE id = $5
		RETURNING `+productCategoryColumns,
		c.Name, c.Slug, c.Image, c.Order, id,
	)
	result, err := scanProductCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product category: %w", err)
	}
	return result, nil
}

// Delete removes a category, clearing the reference on its products.
func (s *ProductCategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product category: %w", err)
	}
	return n > 0, nil
}
