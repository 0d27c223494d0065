// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"kldcms/internal/cache"
	"kldcms/internal/content"
	"kldcms/internal/models"
	"kldcms/internal/slug"
	"kldcms/internal/storage"
	"kldcms/internal/store"
)

// Admin groups the authenticated mutation endpoints for the admin panel.
// Every successful mutation flushes the public response cache.
type Admin struct {
	news              *store.NewsStore
	newsCategories    *store.NewsCategoryStore
	products          *store.ProductStore
	productCategories *store.ProductCategoryStore
	projects          *store.ProjectStore
	banners           *store.BannerStore
	team              *store.TeamMemberStore
	timeline          *store.TimelineStore
	messages          *store.MessageStore
	settings          *store.SettingStore
	company           *store.CompanyInfoStore
	media             *store.MediaStore
	content           *content.Service
	files             storage.Storage
	cache             *cache.ResponseCache
	maxUpload         int64
}

// NewAdmin creates a new Admin handler group over a database connection.
// respCache may be nil when Valkey is not available.
func NewAdmin(db *sql.DB, svc *content.Service, respCache *cache.ResponseCache, files storage.Storage, maxUpload int64) *Admin {
	return &Admin{
		news:              store.NewNewsStore(db),
		newsCategories:    store.NewNewsCategoryStore(db),
		products:          store.NewProductStore(db),
		productCategories: store.NewProductCategoryStore(db),
		projects:          store.NewProjectStore(db),
		banners:           store.NewBannerStore(db),
		team:              store.NewTeamMemberStore(db),
		timeline:          store.NewTimelineStore(db),
		messages:          store.NewMessageStore(db),
		settings:          store.NewSettingStore(db),
		company:           store.NewCompanyInfoStore(db),
		media:             store.NewMediaStore(db),
		content:           svc,
		files:             files,
		cache:             respCache,
		maxUpload:         maxUpload,
	}
}

// flush drops all cached public responses after a mutation.
func (a *Admin) flush(ctx context.Context) {
	if a.cache != nil {
		a.cache.InvalidateAll(ctx)
	}
}

// deleteByID is the shared delete handler: parse id, delete, flush.
func (a *Admin) deleteByID(w http.ResponseWriter, r *http.Request, del func(uuid.UUID) (bool, error)) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	ok, err := del(id)
	if err != nil {
		slog.Error("delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeSuccess(w)
}

// Dashboard returns the admin overview stats.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.content.Dashboard())
}

// Slugify converts free text into a URL slug for the admin form helper.
func (a *Admin) Slugify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"slug": slug.Generate(r.URL.Query().Get("text")),
	})
}

// --- News ---

type newsRequest struct {
	Title       models.LocalizedText `json:"title"`
	Slug        string               `json:"slug"`
	Excerpt     models.LocalizedText `json:"excerpt"`
	Content     models.LocalizedText `json:"content"`
	Image       *string              `json:"image"`
	CategoryID  *uuid.UUID           `json:"categoryId"`
	IsPublished bool                 `json:"isPublished"`
}

func (req *newsRequest) model() *models.News {
	return &models.News{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
	}
}

// NewsList returns all articles for the admin panel, drafts included.
// Supports published=true|false and categoryId filters.
func (a *Admin) NewsList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaginationDefault(r, content.DefaultNewsLimit)
	filter := store.NewsFilter{Limit: limit, Offset: (page - 1) * limit}

	if v := r.URL.Query().Get("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid published filter")
			return
		}
		filter.Published = &published
	}
	if v := r.URL.Query().Get("categoryId"); v != "" {
		catID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid categoryId filter")
			return
		}
		filter.CategoryID = &catID
	}

	items, err := a.news.List(filter)
	if err != nil {
		slog.Error("admin news list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	total, err := a.news.Count(filter)
	if err != nil {
		slog.Error("admin news count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.News{}
	}
	writeList(w, items, page, limit, total)
}

// NewsDetail returns one article by ID, published or not.
func (a *Admin) NewsDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := a.news.FindByID(id)
	if err != nil {
		slog.Error("admin news lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// NewsCreate creates an article. The slug is generated from the English
// title when the caller leaves it empty.
func (a *Admin) NewsCreate(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title.Resolve(models.DefaultLocale))
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.news.Create(req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("news create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// NewsUpdate replaces the editable fields of an article. Partial bodies
// are merged against the existing record, so a bare
// {"isPublished": true} toggles publication without touching content.
// Publishing stamps publishedAt exactly once; it is never reset.
func (a *Admin) NewsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.news.FindByID(id)
	if err != nil {
		slog.Error("admin news lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := newsRequest{
		Title:       existing.Title,
		Slug:        existing.Slug,
		Excerpt:     existing.Excerpt,
		Content:     existing.Content,
		Image:       existing.Image,
		CategoryID:  existing.CategoryID,
		IsPublished: existing.IsPublished,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.news.Update(id, req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("news update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// NewsDelete removes an article.
func (a *Admin) NewsDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.news.Delete)
}

// --- News categories ---

type categoryRequest struct {
	Name  models.LocalizedText `json:"name"`
	Slug  string               `json:"slug"`
	Image *string              `json:"image"`
	Order int                  `json:"order"`
}

func (req *categoryRequest) normalize(w http.ResponseWriter) bool {
	if req.Name.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return false
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name.Resolve(models.DefaultLocale))
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// NewsCategoryList returns all news categories with article counts.
func (a *Admin) NewsCategoryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.newsCategories.List()
	if err != nil {
		slog.Error("admin news category list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.NewsCategory{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// NewsCategoryCreate creates a news category.
func (a *Admin) NewsCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) || !req.normalize(w) {
		return
	}
	created, err := a.newsCategories.Create(&models.NewsCategory{
		Name: req.Name, Slug: req.Slug, Order: req.Order,
	})
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("news category create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// NewsCategoryUpdate updates a news category.
func (a *Admin) NewsCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.newsCategories.FindByID(id)
	if err != nil {
		slog.Error("admin news category lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := categoryRequest{Name: existing.Name, Slug: existing.Slug, Order: existing.Order}
	if !decodeJSON(w, r, &req) || !req.normalize(w) {
		return
	}
	updated, err := a.newsCategories.Update(id, &models.NewsCategory{
		Name: req.Name, Slug: req.Slug, Order: req.Order,
	})
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("news category update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// NewsCategoryDelete removes a category. Articles keep existing with
// their category reference cleared (ON DELETE SET NULL).
func (a *Admin) NewsCategoryDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.newsCategories.Delete)
}

// --- Products ---

type productRequest struct {
	Name        models.LocalizedText `json:"name"`
	Slug        string               `json:"slug"`
	Description models.LocalizedText `json:"description"`
	Content     models.LocalizedText `json:"content"`
	Image       *string              `json:"image"`
	Images      models.StringList    `json:"images"`
	CategoryID  *uuid.UUID           `json:"categoryId"`
	IsActive    bool                 `json:"isActive"`
	Order       int                  `json:"order"`
}

func (req *productRequest) model() *models.Product {
	return &models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
		Order:       req.Order,
	}
}

// ProductList returns all products for the admin panel, hidden included.
func (a *Admin) ProductList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := store.ProductFilter{Limit: limit, Offset: (page - 1) * limit}

	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid active filter")
			return
		}
		filter.Active = &active
	}
	if v := r.URL.Query().Get("categoryId"); v != "" {
		catID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid categoryId filter")
			return
		}
		filter.CategoryID = &catID
	}

	items, err := a.products.List(filter)
	if err != nil {
		slog.Error("admin product list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	total, err := a.products.Count(filter)
	if err != nil {
		slog.Error("admin product count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	writeList(w, items, page, limit, total)
}

// ProductDetail returns one product by ID.
func (a *Admin) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("admin product lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ProductCreate creates a product. New products default to active.
func (a *Admin) ProductCreate(w http.ResponseWriter, r *http.Request) {
	req := productRequest{IsActive: true}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name.Resolve(models.DefaultLocale))
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Images == nil {
		req.Images = models.StringList{}
	}

	created, err := a.products.Create(req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("product create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// ProductUpdate replaces the editable fields of a product; partial
// bodies merge against the existing record.
func (a *Admin) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.products.FindByID(id)
	if err != nil {
		slog.Error("admin product lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := productRequest{
		Name:        existing.Name,
		Slug:        existing.Slug,
		Description: existing.Description,
		Content:     existing.Content,
		Image:       existing.Image,
		Images:      existing.Images,
		CategoryID:  existing.CategoryID,
		IsActive:    existing.IsActive,
		Order:       existing.Order,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.products.Update(id, req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("product update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// ProductDelete removes a product.
func (a *Admin) ProductDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.products.Delete)
}

// --- Product categories ---

// ProductCategoryList returns all product categories with counts.
func (a *Admin) ProductCategoryList(w http.ResponseWriter, r *http.Request) {
	items, err := a.productCategories.List()
	if err != nil {
		slog.Error("admin product category list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.ProductCategory{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// ProductCategoryCreate creates a product category.
func (a *Admin) ProductCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) || !req.normalize(w) {
		return
	}
	created, err := a.productCategories.Create(&models.ProductCategory{
		Name: req.Name, Slug: req.Slug, Image: req.Image, Order: req.Order,
	})
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("product category create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// ProductCategoryUpdate updates a product category.
func (a *Admin) ProductCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.productCategories.FindByID(id)
	if err != nil {
		slog.Error("admin product category lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := categoryRequest{
		Name: existing.Name, Slug: existing.Slug,
		Image: existing.Image, Order: existing.Order,
	}
	if !decodeJSON(w, r, &req) || !req.normalize(w) {
		return
	}
	updated, err := a.productCategories.Update(id, &models.ProductCategory{
		Name: req.Name, Slug: req.Slug, Image: req.Image, Order: req.Order,
	})
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("product category update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// ProductCategoryDelete removes a product category. Products keep their
// rows with the category reference cleared.
func (a *Admin) ProductCategoryDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.productCategories.Delete)
}

// --- Projects ---

type projectRequest struct {
	Title       models.LocalizedText `json:"title"`
	Slug        string               `json:"slug"`
	Description models.LocalizedText `json:"description"`
	Content     models.LocalizedText `json:"content"`
	Client      models.LocalizedText `json:"client"`
	Location    models.LocalizedText `json:"location"`
	Year        *string              `json:"year"`
	Image       *string              `json:"image"`
	Images      models.StringList    `json:"images"`
	IsActive    bool                 `json:"isActive"`
	Order       int                  `json:"order"`
}

func (req *projectRequest) model() *models.Project {
	return &models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Client:      req.Client,
		Location:    req.Location,
		Year:        req.Year,
		Image:       req.Image,
		Images:      req.Images,
		IsActive:    req.IsActive,
		Order:       req.Order,
	}
}

// ProjectList returns all projects for the admin panel.
func (a *Admin) ProjectList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := store.ProjectFilter{Limit: limit, Offset: (page - 1) * limit}

	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid active filter")
			return
		}
		filter.Active = &active
	}

	items, err := a.projects.List(filter)
	if err != nil {
		slog.Error("admin project list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	total, err := a.projects.Count(filter)
	if err != nil {
		slog.Error("admin project count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	writeList(w, items, page, limit, total)
}

// ProjectDetail returns one project by ID.
func (a *Admin) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("admin project lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ProjectCreate creates a project. New projects default to active.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	req := projectRequest{IsActive: true}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title.Resolve(models.DefaultLocale))
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Images == nil {
		req.Images = models.StringList{}
	}

	created, err := a.projects.Create(req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("project create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// ProjectUpdate replaces the editable fields of a project; partial
// bodies merge against the existing record.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("admin project lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := projectRequest{
		Title:       existing.Title,
		Slug:        existing.Slug,
		Description: existing.Description,
		Content:     existing.Content,
		Client:      existing.Client,
		Location:    existing.Location,
		Year:        existing.Year,
		Image:       existing.Image,
		Images:      existing.Images,
		IsActive:    existing.IsActive,
		Order:       existing.Order,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if msg := validateSlug(req.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.projects.Update(id, req.model())
	if isUniqueViolation(err) {
		writeError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("project update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// ProjectDelete removes a project.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.projects.Delete)
}

// --- Banners ---

type bannerRequest struct {
	Title    models.LocalizedText `json:"title"`
	Subtitle models.LocalizedText `json:"subtitle"`
	Image    string               `json:"image"`
	Link     *string              `json:"link"`
	IsActive bool                 `json:"isActive"`
	Order    int                  `json:"order"`
}

// BannerList returns all banners for the admin panel.
func (a *Admin) BannerList(w http.ResponseWriter, r *http.Request) {
	items, err := a.banners.List(false)
	if err != nil {
		slog.Error("admin banner list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.Banner{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// BannerCreate creates a banner. The image is mandatory.
func (a *Admin) BannerCreate(w http.ResponseWriter, r *http.Request) {
	req := bannerRequest{IsActive: true}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "Image is required.")
		return
	}

	created, err := a.banners.Create(&models.Banner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		Link:     req.Link,
		IsActive: req.IsActive,
		Order:    req.Order,
	})
	if err != nil {
		slog.Error("banner create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// BannerUpdate updates a banner; partial bodies merge against the
// existing record.
func (a *Admin) BannerUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.banners.FindByID(id)
	if err != nil {
		slog.Error("admin banner lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := bannerRequest{
		Title:    existing.Title,
		Subtitle: existing.Subtitle,
		Image:    existing.Image,
		Link:     existing.Link,
		IsActive: existing.IsActive,
		Order:    existing.Order,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "Image is required.")
		return
	}

	updated, err := a.banners.Update(id, &models.Banner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		Link:     req.Link,
		IsActive: req.IsActive,
		Order:    req.Order,
	})
	if err != nil {
		slog.Error("banner update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// BannerDelete removes a banner.
func (a *Admin) BannerDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.banners.Delete)
}

// --- Team members ---

type teamMemberRequest struct {
	Name     models.LocalizedText `json:"name"`
	Position models.LocalizedText `json:"position"`
	Bio      models.LocalizedText `json:"bio"`
	Image    *string              `json:"image"`
	IsActive bool                 `json:"isActive"`
	Order    int                  `json:"order"`
}

// TeamList returns all team members for the admin panel.
func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	items, err := a.team.List(false)
	if err != nil {
		slog.Error("admin team list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.TeamMember{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// TeamCreate creates a team member.
func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	req := teamMemberRequest{IsActive: true}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if req.Position.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Position is required.")
		return
	}

	created, err := a.team.Create(&models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		Image:    req.Image,
		IsActive: req.IsActive,
		Order:    req.Order,
	})
	if err != nil {
		slog.Error("team member create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusCreated, created)
}

// TeamUpdate updates a team member; partial bodies merge against the
// existing record.
func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := a.team.FindByID(id)
	if err != nil {
		slog.Error("admin team lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	req := teamMemberRequest{
		Name:     existing.Name,
		Position: existing.Position,
		Bio:      existing.Bio,
		Image:    existing.Image,
		IsActive: existing.IsActive,
		Order:    existing.Order,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if req.Position.IsEmpty() {
		writeError(w, http.StatusBadRequest, "Position is required.")
		return
	}

	updated, err := a.team.Update(id, &models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		Image:    req.Image,
		IsActive: req.IsActive,
		Order:    req.Order,
	})
	if err != nil {
		slog.Error("team member update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// TeamDelete removes a team member.
func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.team.Delete)
}

// --- Timeline ---

type timelineItemRequest struct {
	Year        string               `json:"year"`
	Title       models.LocalizedText `json:"title"`
	Description models.LocalizedText `json:"description"`
	Order       *int                 `json:"order"`
}

// TimelineList returns the full timeline for the admin panel.
func (a *Admin) TimelineList(w http.ResponseWriter, r *http.Request) {
	items, err := a.timeline.List()
	if err != nil {
		slog.Error("admin timeline list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.TimelineItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// TimelineReplace swaps the entire timeline for the submitted list.
// Items without an explicit order take their position in the list.
func (a *Admin) TimelineReplace(w http.ResponseWriter, r *http.Request) {
	var reqs []timelineItemRequest
	if !decodeJSON(w, r, &reqs) {
		return
	}

	items := make([]models.TimelineItem, 0, len(reqs))
	for i, req := range reqs {
		if req.Year == "" {
			writeError(w, http.StatusBadRequest, "Year is required for every milestone.")
			return
		}
		if req.Title.IsEmpty() {
			writeError(w, http.StatusBadRequest, "Title is required for every milestone.")
			return
		}
		order := i
		if req.Order != nil {
			order = *req.Order
		}
		items = append(items, models.TimelineItem{
			Year:        req.Year,
			Title:       req.Title,
			Description: req.Description,
			Order:       order,
		})
	}

	saved, err := a.timeline.ReplaceAll(items)
	if err != nil {
		slog.Error("timeline replace failed", "error", err)
		writeError(w, http.StatusInternalServerError, "timeline replace failed")
		return
	}
	if saved == nil {
		saved = []models.TimelineItem{}
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"data": saved})
}

// --- Messages ---

// MessageList returns contact messages, newest first, with the unread
// total alongside the page.
func (a *Admin) MessageList(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	var read *bool
	if v := r.URL.Query().Get("read"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid read filter")
			return
		}
		read = &b
	}

	items, err := a.messages.List(read, limit, (page-1)*limit)
	if err != nil {
		slog.Error("admin message list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	total, err := a.messages.Count(read)
	if err != nil {
		slog.Error("admin message count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	unread, err := a.messages.UnreadCount()
	if err != nil {
		slog.Error("admin unread count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if items == nil {
		items = []models.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":        items,
		"pagination":  newPagination(page, limit, total),
		"unreadCount": unread,
	})
}

// MessageDetail returns one contact message by ID.
func (a *Admin) MessageDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := a.messages.FindByID(id)
	if err != nil {
		slog.Error("admin message lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MessageUpdate toggles the read flag. Messages are otherwise immutable.
func (a *Admin) MessageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := a.messages.FindByID(id)
	if err != nil {
		slog.Error("admin message lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	// Merge over the current value so a body omitting isRead is a no-op.
	req := struct {
		IsRead bool `json:"isRead"`
	}{IsRead: existing.IsRead}
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := a.messages.SetRead(id, req.IsRead)
	if err != nil {
		slog.Error("message read toggle failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// MessageDelete removes a contact message.
func (a *Admin) MessageDelete(w http.ResponseWriter, r *http.Request) {
	a.deleteByID(w, r, a.messages.Delete)
}

// --- Settings and company info ---

// SettingsGet returns the full settings map.
func (a *Admin) SettingsGet(w http.ResponseWriter, r *http.Request) {
	m, err := a.settings.All()
	if err != nil {
		slog.Error("admin settings read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "read failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": m})
}

// SettingsPut upserts the submitted keys in one transaction and returns
// the full resulting map.
func (a *Admin) SettingsPut(w http.ResponseWriter, r *http.Request) {
	var values models.SettingMap
	if !decodeJSON(w, r, &values) {
		return
	}
	if len(values) == 0 {
		writeError(w, http.StatusBadRequest, "no settings provided")
		return
	}

	m, err := a.settings.SetMany(values)
	if err != nil {
		slog.Error("settings upsert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"data": m})
}

// CompanyGet returns the company profile map.
func (a *Admin) CompanyGet(w http.ResponseWriter, r *http.Request) {
	m, err := a.company.All()
	if err != nil {
		slog.Error("admin company read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "read failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": m})
}

// CompanyPut upserts the submitted company-info keys in one transaction
// and returns the full resulting map.
func (a *Admin) CompanyPut(w http.ResponseWriter, r *http.Request) {
	var values models.CompanyInfoMap
	if !decodeJSON(w, r, &values) {
		return
	}
	if len(values) == 0 {
		writeError(w, http.StatusBadRequest, "no company fields provided")
		return
	}

	m, err := a.company.SetMany(values)
	if err != nil {
		slog.Error("company upsert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	a.flush(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"data": m})
}
