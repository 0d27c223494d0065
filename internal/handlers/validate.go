// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for contact-form and entity fields.
const (
	maxContactNameLen    = 200
	maxContactEmailLen   = 320
	maxContactPhoneLen   = 50
	maxContactCompanyLen = 200
	maxContactSubjectLen = 300
	maxContactBodyLen    = 10_000

	maxTitleLen = 300
	maxSlugLen  = 300
)

// emailPattern is deliberately loose: one @, at least one dot in the
// domain, no whitespace. Deliverability is the mail server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactForm is the public contact submission body.
type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// validateContactForm checks a contact submission and returns the first
// error found, or "" when the form is acceptable.
func validateContactForm(f *contactForm) string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Content = strings.TrimSpace(f.Content)

	if f.Name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(f.Name) > maxContactNameLen {
		return "Name is too long (max 200 characters)."
	}
	if f.Email == "" {
		return "Email is required."
	}
	if len(f.Email) > maxContactEmailLen || !emailPattern.MatchString(f.Email) {
		return "Email address is not valid."
	}
	if f.Content == "" {
		return "Message content is required."
	}
	if utf8.RuneCountInString(f.Content) > maxContactBodyLen {
		return "Message is too long (max 10,000 characters)."
	}
	if utf8.RuneCountInString(f.Phone) > maxContactPhoneLen {
		return "Phone number is too long."
	}
	if utf8.RuneCountInString(f.Company) > maxContactCompanyLen {
		return "Company name is too long."
	}
	if utf8.RuneCountInString(f.Subject) > maxContactSubjectLen {
		return "Subject is too long."
	}
	return ""
}

// validateSlug checks an entity slug after generation or normalization.
func validateSlug(slug string) string {
	if slug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	return ""
}

// optional converts an empty form value to a NULL-able field.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
