// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kldcms/internal/models"
)

// ProductStore manages products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// ProductFilter narrows List and Count queries.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Active     *bool
	Limit      int
	Offset     int
}

const productColumns = `p.id, p.name, p.slug, p.description, p.content, p.image, p.images,
	p.category_id, p.is_active, p.sort_order, p.created_at, p.updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var catID, catSlug sql.NullString
	var catName models.LocalizedText
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Content, &p.Image, &p.Images,
		&p.CategoryID, &p.IsActive, &p.Order, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		id, err := uuid.Parse(catID.String)
		if err != nil {
			return nil, fmt.Errorf("parse category id: %w", err)
		}
		p.Category = &models.ProductCategory{ID: id, Name: catName, Slug: catSlug.String}
	}
	return &p, nil
}

func (f ProductFilter) where(args *[]any) string {
	var conds []string
	if f.Active != nil {
		*args = append(*args, *f.Active)
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", len(*args)))
	}
	if f.CategoryID != nil {
		*args = append(*args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(*args)))
	}
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// List returns products matching the filter, ordered by sort_order then
// newest first.
func (s *ProductStore) List(f ProductFilter) ([]models.Product, error) {
	var args []any
	where := f.where(&args)

	query := `
		SELECT ` + productColumns + `, c.id, c.name, c.slug
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		` + where + `
		ORDER BY p.sort_order, p.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of products matching the filter.
func (s *ProductStore) Count(f ProductFilter) (int, error) {
	var args []any
	where := f.where(&args)

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products p `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// FindByID retrieves a product by ID with its category. Returns nil if
// not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`
		SELECT `+productColumns+`, c.id, c.name, c.slug
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a product by its unique slug. Returns nil if not found.
func (s *ProductStore) FindBySlug(slug string) (*models.Product, error) {
	row := s.db.QueryRow(`
		SELECT `+productColumns+`, c.id, c.name, c.slug
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE p.slug = $1`, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it with the generated ID.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO products (name, slug, description, content, image, images, category_id, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		p.Name, p.Slug, p.Description, p.Content, p.Image, p.Images, p.CategoryID, p.IsActive, p.Order,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.FindByID(id)
}

// Update replaces the editable fields of a product. Returns nil if the
// product does not exist.
func (s *ProductStore) Update(id uuid.UUID, p *models.Product) (*models.Product, error) {
	res, err := s.db.Exec(`
		UPDATE products SET
			name = $1, slug = $2, description = $3, content = $4, image = $5, images = $6,
			category_id = $7, is_active = $8, sort_order = $9, updated_at = now()
		WHERE id = $10`,
		p.Name, p.Slug, p.Description, p.Content, p.Image, p.Images, p.CategoryID, p.IsActive, p.Order, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.FindByID(id)
}

// SetActive toggles visibility. Returns nil if the product does not exist.
func (s *ProductStore) SetActive(id uuid.UUID, active bool) (*models.Product, error) {
	res, err := s.db.Exec(`UPDATE products SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return nil, fmt.Errorf("set product active: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("set product active: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return s.FindByID(id)
}

// Delete removes a product. Reports whether a row was removed.
func (s *ProductStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

// CountAll returns the total number of products.
func (s *ProductStore) CountAll() (int, error) {
	return s.Count(ProductFilter{})
}
