// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content is the read path for the public site. Every method is
// fail-soft: when the database is unreachable or a query fails, it logs
// the error and returns an empty value so page rendering degrades to
// empty sections instead of failing outright.
package content

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"kldcms/internal/models"
	"kldcms/internal/store"
)

// Default list sizes for public reads.
const (
	DefaultNewsLimit    = 10
	DefaultProductLimit = 20
	DefaultProjectLimit = 20
)

// Service aggregates the stores behind the public read API.
type Service struct {
	news              *store.NewsStore
	newsCategories    *store.NewsCategoryStore
	products          *store.ProductStore
	productCategories *store.ProductCategoryStore
	projects          *store.ProjectStore
	banners           *store.BannerStore
	team              *store.TeamMemberStore
	timeline          *store.TimelineStore
	company           *store.CompanyInfoStore
	settings          *store.SettingStore
	messages          *store.MessageStore
	log               *slog.Logger
}

// NewService wires a Service over a database connection.
func NewService(db *sql.DB, log *slog.Logger) *Service {
	return &Service{
		news:              store.NewNewsStore(db),
		newsCategories:    store.NewNewsCategoryStore(db),
		products:          store.NewProductStore(db),
		productCategories: store.NewProductCategoryStore(db),
		projects:          store.NewProjectStore(db),
		banners:           store.NewBannerStore(db),
		team:              store.NewTeamMemberStore(db),
		timeline:          store.NewTimelineStore(db),
		company:           store.NewCompanyInfoStore(db),
		settings:          store.NewSettingStore(db),
		messages:          store.NewMessageStore(db),
		log:               log,
	}
}

// NewsOptions narrows public news queries.
type NewsOptions struct {
	CategorySlug string
	Limit        int
	Offset       int
}

// News returns published articles, newest first. Empty on error.
func (s *Service) News(opts NewsOptions) []models.News {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultNewsLimit
	}

	published := true
	filter := store.NewsFilter{Published: &published, Limit: limit, Offset: opts.Offset}

	if opts.CategorySlug != "" {
		cat, err := s.newsCategories.FindBySlug(opts.CategorySlug)
		if err != nil {
			s.log.Error("public news category lookup failed", "slug", opts.CategorySlug, "error", err)
			return []models.News{}
		}
		if cat == nil {
			return []models.News{}
		}
		filter.CategoryID = &cat.ID
	}

	items, err := s.news.List(filter)
	if err != nil {
		s.log.Error("public news list failed", "error", err)
		return []models.News{}
	}
	if items == nil {
		items = []models.News{}
	}
	return items
}

// NewsCount returns the number of published articles matching the
// options. Zero on error.
func (s *Service) NewsCount(opts NewsOptions) int {
	published := true
	filter := store.NewsFilter{Published: &published}

	if opts.CategorySlug != "" {
		cat, err := s.newsCategories.FindBySlug(opts.CategorySlug)
		if err != nil || cat == nil {
			return 0
		}
		filter.CategoryID = &cat.ID
	}

	n, err := s.news.Count(filter)
	if err != nil {
		s.log.Error("public news count failed", "error", err)
		return 0
	}
	return n
}

// NewsItem returns one published article by ID and counts the view.
// Returns nil when the article is missing, unpublished, or the lookup fails.
func (s *Service) NewsItem(id uuid.UUID) *models.News {
	item, err := s.news.FindByID(id)
	if err != nil {
		s.log.Error("public news lookup failed", "id", id, "error", err)
		return nil
	}
	if item == nil || !item.IsPublished {
		return nil
	}

	// View counting must never block the read.
	if err := s.news.IncrementViewCount(id); err != nil {
		s.log.Error("view count increment failed", "id", id, "error", err)
	} else {
		item.ViewCount++
	}
	return item
}

// NewsItemBySlug returns one published article by slug and counts the view.
func (s *Service) NewsItemBySlug(slug string) *models.News {
	item, err := s.news.FindBySlug(slug)
	if err != nil {
		s.log.Error("public news lookup failed", "slug", slug, "error", err)
		return nil
	}
	if item == nil || !item.IsPublished {
		return nil
	}
	if err := s.news.IncrementViewCount(item.ID); err != nil {
		s.log.Error("view count increment failed", "id", item.ID, "error", err)
	} else {
		item.ViewCount++
	}
	return item
}

// NewsCategories returns all news categories. Empty on error.
func (s *Service) NewsCategories() []models.NewsCategory {
	items, err := s.newsCategories.List()
	if err != nil {
		s.log.Error("public news categories failed", "error", err)
		return []models.NewsCategory{}
	}
	if items == nil {
		items = []models.NewsCategory{}
	}
	return items
}

// ProductOptions narrows public product queries.
type ProductOptions struct {
	CategorySlug string
	Limit        int
	Offset       int
}

// Products returns active products. Empty on error.
func (s *Service) Products(opts ProductOptions) []models.Product {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultProductLimit
	}

	active := true
	filter := store.ProductFilter{Active: &active, Limit: limit, Offset: opts.Offset}

	if opts.CategorySlug != "" {
		cat, err := s.productCategories.FindBySlug(opts.CategorySlug)
		if err != nil {
			s.log.Error("public product category lookup failed", "slug", opts.CategorySlug, "error", err)
			return []models.Product{}
		}
		if cat == nil {
			return []models.Product{}
		}
		filter.CategoryID = &cat.ID
	}

	items, err := s.products.List(filter)
	if err != nil {
		s.log.Error("public products list failed", "error", err)
		return []models.Product{}
	}
	if items == nil {
		items = []models.Product{}
	}
	return items
}

// ProductsCount returns the number of active products matching the
// options. Zero on error.
func (s *Service) ProductsCount(opts ProductOptions) int {
	active := true
	filter := store.ProductFilter{Active: &active}

	if opts.CategorySlug != "" {
		cat, err := s.productCategories.FindBySlug(opts.CategorySlug)
		if err != nil || cat == nil {
			return 0
		}
		filter.CategoryID = &cat.ID
	}

	n, err := s.products.Count(filter)
	if err != nil {
		s.log.Error("public products count failed", "error", err)
		return 0
	}
	return n
}

// Product returns one active product by slug. Nil when missing or hidden.
func (s *Service) Product(slug string) *models.Product {
	item, err := s.products.FindBySlug(slug)
	if err != nil {
		s.log.Error("public product lookup failed", "slug", slug, "error", err)
		return nil
	}
	if item == nil || !item.IsActive {
		return nil
	}
	return item
}

// ProductCategories returns all product categories. Empty on error.
func (s *Service) ProductCategories() []models.ProductCategory {
	items, err := s.productCategories.List()
	if err != nil {
		s.log.Error("public product categories failed", "error", err)
		return []models.ProductCategory{}
	}
	if items == nil {
		items = []models.ProductCategory{}
	}
	return items
}

// Projects returns active projects. Empty on error.
func (s *Service) Projects(limit, offset int) []models.Project {
	if limit <= 0 {
		limit = DefaultProjectLimit
	}
	active := true
	items, err := s.projects.List(store.ProjectFilter{Active: &active, Limit: limit, Offset: offset})
	if err != nil {
		s.log.Error("public projects list failed", "error", err)
		return []models.Project{}
	}
	if items == nil {
		items = []models.Project{}
	}
	return items
}

// ProjectsCount returns the number of active projects. Zero on error.
func (s *Service) ProjectsCount() int {
	active := true
	n, err := s.projects.Count(store.ProjectFilter{Active: &active})
	if err != nil {
		s.log.Error("public projects count failed", "error", err)
		return 0
	}
	return n
}

// Project returns one active project by slug. Nil when missing or hidden.
func (s *Service) Project(slug string) *models.Project {
	item, err := s.projects.FindBySlug(slug)
	if err != nil {
		s.log.Error("public project lookup failed", "slug", slug, "error", err)
		return nil
	}
	if item == nil || !item.IsActive {
		return nil
	}
	return item
}

// Banners returns active banners in display order. Empty on error.
func (s *Service) Banners() []models.Banner {
	items, err := s.banners.List(true)
	if err != nil {
		s.log.Error("public banners list failed", "error", err)
		return []models.Banner{}
	}
	if items == nil {
		items = []models.Banner{}
	}
	return items
}

// TeamMembers returns active team members in display order. Empty on error.
func (s *Service) TeamMembers() []models.TeamMember {
	items, err := s.team.List(true)
	if err != nil {
		s.log.Error("public team list failed", "error", err)
		return []models.TeamMember{}
	}
	if items == nil {
		items = []models.TeamMember{}
	}
	return items
}

// Timeline returns all company milestones in order. Empty on error.
func (s *Service) Timeline() []models.TimelineItem {
	items, err := s.timeline.List()
	if err != nil {
		s.log.Error("public timeline list failed", "error", err)
		return []models.TimelineItem{}
	}
	if items == nil {
		items = []models.TimelineItem{}
	}
	return items
}

// CompanyInfo returns the full company profile map. Empty on error.
func (s *Service) CompanyInfo() models.CompanyInfoMap {
	m, err := s.company.All()
	if err != nil {
		s.log.Error("public company info failed", "error", err)
		return models.CompanyInfoMap{}
	}
	return m
}

// Settings returns the full site settings map. Empty on error.
func (s *Service) Settings() models.SettingMap {
	m, err := s.settings.All()
	if err != nil {
		s.log.Error("public settings failed", "error", err)
		return models.SettingMap{}
	}
	return m
}

// DashboardStats is the admin overview: entity counts, activity for the
// current month, and the latest items.
type DashboardStats struct {
	NewsCount         int              `json:"newsCount"`
	ProductCount      int              `json:"productCount"`
	ProjectCount      int              `json:"projectCount"`
	MessageCount      int              `json:"messageCount"`
	UnreadMessages    int              `json:"unreadMessages"`
	NewsThisMonth     int              `json:"newsThisMonth"`
	MessagesThisMonth int              `json:"messagesThisMonth"`
	RecentNews        []models.News    `json:"recentNews"`
	RecentMessages    []models.Message `json:"recentMessages"`
}

// Dashboard assembles admin overview numbers. Individual failures zero
// out their field rather than failing the whole overview.
func (s *Service) Dashboard() DashboardStats {
	var stats DashboardStats
	var err error

	if stats.NewsCount, err = s.news.Count(store.NewsFilter{}); err != nil {
		s.log.Error("dashboard news count failed", "error", err)
	}
	if stats.ProductCount, err = s.products.Count(store.ProductFilter{}); err != nil {
		s.log.Error("dashboard product count failed", "error", err)
	}
	if stats.ProjectCount, err = s.projects.Count(store.ProjectFilter{}); err != nil {
		s.log.Error("dashboard project count failed", "error", err)
	}
	if stats.MessageCount, err = s.messages.Count(nil); err != nil {
		s.log.Error("dashboard message count failed", "error", err)
	}
	if stats.UnreadMessages, err = s.messages.UnreadCount(); err != nil {
		s.log.Error("dashboard unread count failed", "error", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.NewsThisMonth, err = s.news.CountCreatedSince(monthStart); err != nil {
		s.log.Error("dashboard monthly news count failed", "error", err)
	}
	if stats.MessagesThisMonth, err = s.messages.CountCreatedSince(monthStart); err != nil {
		s.log.Error("dashboard monthly message count failed", "error", err)
	}

	if stats.RecentNews, err = s.news.Recent(5); err != nil {
		s.log.Error("dashboard recent news failed", "error", err)
	}
	if stats.RecentMessages, err = s.messages.Recent(5); err != nil {
		s.log.Error("dashboard recent messages failed", "error", err)
	}
	if stats.RecentNews == nil {
		stats.RecentNews = []models.News{}
	}
	if stats.RecentMessages == nil {
		stats.RecentMessages = []models.Message{}
	}
	return stats
}
