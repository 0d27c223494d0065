// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// KLD CMS API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kldcms/internal/config"
	"kldcms/internal/handlers"
	"kldcms/internal/middleware"
	"kldcms/internal/session"
)

// contactRateLimit caps public contact-form submissions per client IP.
const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. uploadsDir is served at /uploads when
// non-empty (local media storage).
func New(cfg *config.Config, sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, uploadsDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	r.Get("/health", healthHandler)

	// Locally stored uploads. With S3 the media URLs point at the bucket
	// and this mount simply never matches anything.
	if uploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	contactLimiter := middleware.NewRateLimiter(contactRateLimit, contactRateWindow)

	r.Route("/api", func(r chi.Router) {
		// Public read API consumed by the marketing site.
		r.Route("/public", func(r chi.Router) {
			r.Get("/news", public.NewsList)
			r.Get("/news/{slug}", public.NewsDetail)
			r.Get("/news-categories", public.NewsCategories)
			r.Get("/products", public.ProductsList)
			r.Get("/products/{slug}", public.ProductDetail)
			r.Get("/product-categories", public.ProductCategories)
			r.Get("/projects", public.ProjectsList)
			r.Get("/projects/{slug}", public.ProjectDetail)
			r.Get("/banners", public.Banners)
			r.Get("/team", public.Team)
			r.Get("/timeline", public.Timeline)
			r.Get("/company", public.Company)
			r.Get("/settings", public.Settings)
		})

		// Contact form — public but rate-limited per client IP.
		r.With(contactLimiter.Middleware).Post("/messages", public.ContactSubmit)

		// Auth endpoints.
		r.Post("/auth/login", auth.Login)
		r.Post("/auth/logout", auth.Logout)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/auth/me", auth.Me)
			// 2FA requires a session but NOT a completed second factor.
			r.Post("/auth/2fa/setup", auth.TwoFASetup)
			r.Post("/auth/2fa/verify", auth.TwoFAVerify)
		})

		// Admin mutation API — authenticated and 2FA-verified.
		r.Group(func(r chi.Router) {
			if cfg.AuthBypass {
				r.Use(middleware.AuthBypass)
			}
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/dashboard", admin.Dashboard)
			r.Get("/slugify", admin.Slugify)

			r.Route("/news", func(r chi.Router) {
				r.Get("/", admin.NewsList)
				r.Post("/", admin.NewsCreate)
				r.Get("/{id}", admin.NewsDetail)
				r.Put("/{id}", admin.NewsUpdate)
				r.Delete("/{id}", admin.NewsDelete)
			})

			r.Route("/news-categories", func(r chi.Router) {
				r.Get("/", admin.NewsCategoryList)
				r.Post("/", admin.NewsCategoryCreate)
				r.Put("/{id}", admin.NewsCategoryUpdate)
				r.Delete("/{id}", admin.NewsCategoryDelete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", admin.ProductList)
				r.Post("/", admin.ProductCreate)
				r.Get("/{id}", admin.ProductDetail)
				r.Put("/{id}", admin.ProductUpdate)
				r.Delete("/{id}", admin.ProductDelete)
			})

			r.Route("/product-categories", func(r chi.Router) {
				r.Get("/", admin.ProductCategoryList)
				r.Post("/", admin.ProductCategoryCreate)
				r.Put("/{id}", admin.ProductCategoryUpdate)
				r.Delete("/{id}", admin.ProductCategoryDelete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ProjectList)
				r.Post("/", admin.ProjectCreate)
				r.Get("/{id}", admin.ProjectDetail)
				r.Put("/{id}", admin.ProjectUpdate)
				r.Delete("/{id}", admin.ProjectDelete)
			})

			r.Route("/banners", func(r chi.Router) {
				r.Get("/", admin.BannerList)
				r.Post("/", admin.BannerCreate)
				r.Put("/{id}", admin.BannerUpdate)
				r.Delete("/{id}", admin.BannerDelete)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", admin.TeamList)
				r.Post("/", admin.TeamCreate)
				r.Put("/{id}", admin.TeamUpdate)
				r.Delete("/{id}", admin.TeamDelete)
			})

			r.Route("/timeline", func(r chi.Router) {
				r.Get("/", admin.TimelineList)
				r.Put("/", admin.TimelineReplace)
			})

			// The message collection shares its path with the public
			// contact POST above; methods are registered individually
			// so the two middleware chains stay separate.
			r.Get("/messages", admin.MessageList)
			r.Get("/messages/{id}", admin.MessageDetail)
			r.Put("/messages/{id}", admin.MessageUpdate)
			r.Delete("/messages/{id}", admin.MessageDelete)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", admin.SettingsGet)
				r.Put("/", admin.SettingsPut)
			})

			r.Route("/company", func(r chi.Router) {
				r.Get("/", admin.CompanyGet)
				r.Put("/", admin.CompanyPut)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaList)
				r.Post("/", admin.MediaUpload)
				r.Delete("/{id}", admin.MediaDelete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
