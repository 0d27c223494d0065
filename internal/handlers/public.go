// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kldcms/internal/cache"
	"kldcms/internal/content"
	"kldcms/internal/models"
	"kldcms/internal/store"
)

// Public groups the unauthenticated read endpoints consumed by the
// marketing site, plus the contact-form submission. List responses are
// cached in Valkey and flushed whenever the admin panel mutates content.
type Public struct {
	content  *content.Service
	messages *store.MessageStore
	cache    *cache.ResponseCache
}

// NewPublic creates a new Public handler group. respCache may be nil
// when Valkey is not available; responses are then built per request.
func NewPublic(svc *content.Service, messages *store.MessageStore, respCache *cache.ResponseCache) *Public {
	return &Public{
		content:  svc,
		messages: messages,
		cache:    respCache,
	}
}

// serveCached writes the cached response for this URL if present,
// otherwise builds the payload, caches it, and writes it.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, build func() any) {
	ctx := r.Context()
	key := r.URL.RequestURI()

	if p.cache != nil {
		if body, ok := p.cache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write(body)
			return
		}
	}

	body, err := json.Marshal(build())
	if err != nil {
		slog.Error("public response encode failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if p.cache != nil {
		p.cache.Set(ctx, key, body)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(body)
}

// NewsList returns published news, newest first, optionally filtered by
// category slug.
func (p *Public) NewsList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaginationDefault(r, content.DefaultNewsLimit)
	opts := content.NewsOptions{
		CategorySlug: r.URL.Query().Get("category"),
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	p.serveCached(w, r, func() any {
		return map[string]any{
			"data":       p.content.News(opts),
			"pagination": newPagination(page, limit, p.content.NewsCount(opts)),
		}
	})
}

// NewsDetail returns one published article by slug (or ID) and counts
// the view. Never cached: each fetch increments the view counter.
func (p *Public) NewsDetail(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "slug")

	var item *models.News
	if id, err := uuid.Parse(param); err == nil {
		item = p.content.NewsItem(id)
	} else {
		item = p.content.NewsItemBySlug(param)
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// NewsCategories returns all news categories with article counts.
func (p *Public) NewsCategories(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.NewsCategories()}
	})
}

// ProductsList returns active products, optionally filtered by category
// slug.
func (p *Public) ProductsList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	opts := content.ProductOptions{
		CategorySlug: r.URL.Query().Get("category"),
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	p.serveCached(w, r, func() any {
		return map[string]any{
			"data":       p.content.Products(opts),
			"pagination": newPagination(page, limit, p.content.ProductsCount(opts)),
		}
	})
}

// ProductDetail returns one active product by slug.
func (p *Public) ProductDetail(w http.ResponseWriter, r *http.Request) {
	item := p.content.Product(chi.URLParam(r, "slug"))
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ProductCategories returns all product categories with product counts.
func (p *Public) ProductCategories(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.ProductCategories()}
	})
}

// ProjectsList returns active reference projects.
func (p *Public) ProjectsList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	p.serveCached(w, r, func() any {
		return map[string]any{
			"data":       p.content.Projects(limit, (page-1)*limit),
			"pagination": newPagination(page, limit, p.content.ProjectsCount()),
		}
	})
}

// ProjectDetail returns one active project by slug.
func (p *Public) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	item := p.content.Project(chi.URLParam(r, "slug"))
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Banners returns active homepage banners in display order.
func (p *Public) Banners(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.Banners()}
	})
}

// Team returns active team members in display order.
func (p *Public) Team(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.TeamMembers()}
	})
}

// Timeline returns the company history milestones in order.
func (p *Public) Timeline(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.Timeline()}
	})
}

// Company returns the company profile as a key → localized value map.
func (p *Public) Company(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.CompanyInfo()}
	})
}

// Settings returns the site settings map.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() any {
		return map[string]any{"data": p.content.Settings()}
	})
}

// ContactSubmit validates a contact-form submission and stores it as an
// unread message.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if !decodeJSON(w, r, &form) {
		return
	}
	if msg := validateContactForm(&form); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := p.messages.Create(&models.Message{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   optional(form.Phone),
		Company: optional(form.Company),
		Subject: optional(form.Subject),
		Content: form.Content,
	})
	if err != nil {
		slog.Error("contact message create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save your message")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": created.ID})
}
