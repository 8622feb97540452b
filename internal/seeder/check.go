// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seeder

import (
	"context"
	"fmt"
)

// Inventory queries used by Check. These pull the natural keys only, not
// the full documents.
const (
	queryAllCategories    = `*[_type == "category"]{_id, title}`
	queryAllAuthors       = `*[_type == "author"]{_id, name}`
	queryAllPosts         = `*[_type == "post"]{_id, title, "slug": slug.current}`
	queryEventsByStatus   = `*[_type == "event" && status == $status]{_id, title, "slug": slug.current}`
	querySiteSettingsFull = `*[_type == "siteSettings"][0]{_id, title}`
)

// Check reports what the content store currently holds, without writing
// anything. It works with or without an API token as long as the dataset
// is publicly readable.
func (s *Seeder) Check(ctx context.Context) error {
	var categories []struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	if err := s.client.Fetch(ctx, queryAllCategories, nil, &categories); err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	s.logger.Info("categories", "count", len(categories))
	for _, c := range categories {
		s.logger.Info("  category", "title", c.Title, "id", c.ID)
	}

	var authors []struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := s.client.Fetch(ctx, queryAllAuthors, nil, &authors); err != nil {
		return fmt.Errorf("listing authors: %w", err)
	}
	s.logger.Info("authors", "count", len(authors))
	for _, a := range authors {
		s.logger.Info("  author", "name", a.Name, "id", a.ID)
	}

	var posts []struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	if err := s.client.Fetch(ctx, queryAllPosts, nil, &posts); err != nil {
		return fmt.Errorf("listing posts: %w", err)
	}
	s.logger.Info("posts", "count", len(posts))
	for _, p := range posts {
		s.logger.Info("  post", "title", p.Title, "slug", p.Slug)
	}

	for _, status := range []string{"upcoming", "past", "cancelled"} {
		var events []struct {
			ID    string `json:"_id"`
			Title string `json:"title"`
			Slug  string `json:"slug"`
		}
		err := s.client.Fetch(ctx, queryEventsByStatus, map[string]any{"status": status}, &events)
		if err != nil {
			return fmt.Errorf("listing %s events: %w", status, err)
		}
		s.logger.Info("events", "status", status, "count", len(events))
		for _, e := range events {
			s.logger.Info("  event", "title", e.Title, "slug", e.Slug)
		}
	}

	var settings *struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	if err := s.client.Fetch(ctx, querySiteSettingsFull, nil, &settings); err != nil {
		return fmt.Errorf("checking site settings: %w", err)
	}
	if settings == nil {
		s.logger.Info("site settings not initialized")
	} else {
		s.logger.Info("site settings present", "title", settings.Title, "id", settings.ID)
	}

	return nil
}
