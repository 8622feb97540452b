// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seeder idempotently materializes the catalog records into the
// content store. Every record is checked for existence by its natural key
// (title, name, or slug) before creation, so re-running a partially
// completed seed skips whatever already landed. Processing is strictly
// sequential: posts need the identifiers produced by seeding categories
// and authors first.
package seeder

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/tollington/choirseed/internal/blocks"
	"github.com/tollington/choirseed/internal/catalog"
	"github.com/tollington/choirseed/internal/fetch"
	"github.com/tollington/choirseed/internal/sanity"
	"github.com/tollington/choirseed/internal/util"
)

// Existence-check queries, one per natural key.
const (
	queryCategoryByTitle = `*[_type == "category" && title == $title][0]{_id}`
	queryAuthorByName    = `*[_type == "author" && name == $name][0]{_id}`
	queryPostBySlug      = `*[_type == "post" && slug.current == $slug][0]{_id}`
	queryEventBySlug     = `*[_type == "event" && slug.current == $slug][0]{_id}`
	querySiteSettings    = `*[_type == "siteSettings"][0]{_id}`
)

// Seeder pushes the catalog into one project/dataset of the content store.
type Seeder struct {
	client  *sanity.Client
	fetcher fetch.Fetcher
	logger  *slog.Logger
}

// New creates a Seeder around the given store client and image fetcher.
func New(client *sanity.Client, fetcher fetch.Fetcher, logger *slog.Logger) *Seeder {
	return &Seeder{
		client:  client,
		fetcher: fetcher,
		logger:  logger,
	}
}

// SeedContent runs the full content sequence: categories, then authors,
// then posts. The order is a data dependency, not an optimization: posts
// embed references to identifiers the earlier steps produce.
func (s *Seeder) SeedContent(ctx context.Context) error {
	categoryIDs, err := s.SeedCategories(ctx)
	if err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	authorIDs, err := s.SeedAuthors(ctx)
	if err != nil {
		return fmt.Errorf("seeding authors: %w", err)
	}

	if err := s.SeedPosts(ctx, categoryIDs, authorIDs); err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	return nil
}

// SeedCategories creates each catalog category unless one with the same
// title already exists. It returns a map from category title to document
// identifier for use when resolving post references.
func (s *Seeder) SeedCategories(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string)

	for _, cat := range catalog.Categories() {
		id, exists, err := s.lookupID(ctx, queryCategoryByTitle, map[string]any{"title": cat.Title})
		if err != nil {
			return nil, fmt.Errorf("checking category %q: %w", cat.Title, err)
		}
		if exists {
			s.logger.Info("category already exists, skipping", "title", cat.Title, "id", id)
			ids[cat.Title] = id
			continue
		}

		id, err = s.client.Create(ctx, categoryDoc{
			Type:        "category",
			Title:       cat.Title,
			Description: cat.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("creating category %q: %w", cat.Title, err)
		}

		ids[cat.Title] = id
		s.logger.Info("created category", "title", cat.Title, "id", id)
	}

	return ids, nil
}

// SeedAuthors creates an author document for each distinct author name in
// the post catalog, uploading the portrait image first. It returns a map
// from author name to document identifier.
func (s *Seeder) SeedAuthors(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string)

	for _, name := range catalog.AuthorNames() {
		author, ok := catalog.AuthorByName(name)
		if !ok {
			return nil, fmt.Errorf("author %q not found in post catalog", name)
		}

		id, exists, err := s.lookupID(ctx, queryAuthorByName, map[string]any{"name": name})
		if err != nil {
			return nil, fmt.Errorf("checking author %q: %w", name, err)
		}
		if exists {
			s.logger.Info("author already exists, skipping", "name", name, "id", id)
			ids[name] = id
			continue
		}

		slug := util.Slugify(name)
		assetID, err := s.uploadImage(ctx, author.Image, "author-"+slug)
		if err != nil {
			return nil, fmt.Errorf("uploading portrait for %q: %w", name, err)
		}

		id, err = s.client.Create(ctx, authorDoc{
			Type:  "author",
			Name:  name,
			Slug:  sanity.NewSlug(slug),
			Bio:   blocks.FromText(author.Bio),
			Image: sanity.NewImage(assetID),
		})
		if err != nil {
			return nil, fmt.Errorf("creating author %q: %w", name, err)
		}

		ids[name] = id
		s.logger.Info("created author", "name", name, "id", id)
	}

	return ids, nil
}

// SeedPosts creates each catalog post unless one with the same slug
// already exists, resolving category and author references through the
// maps produced by the earlier seed steps.
func (s *Seeder) SeedPosts(ctx context.Context, categoryIDs, authorIDs map[string]string) error {
	for _, post := range catalog.Posts() {
		_, exists, err := s.lookupID(ctx, queryPostBySlug, map[string]any{"slug": post.Slug})
		if err != nil {
			return fmt.Errorf("checking post %q: %w", post.Slug, err)
		}
		if exists {
			s.logger.Info("post already exists, skipping", "slug", post.Slug)
			continue
		}

		authorID, ok := authorIDs[post.Author.Name]
		if !ok {
			return fmt.Errorf("post %q: author %q was not seeded", post.Slug, post.Author.Name)
		}

		categoryRefs := make([]sanity.Reference, 0, len(post.Categories))
		for _, title := range post.Categories {
			categoryID, ok := categoryIDs[title]
			if !ok {
				return fmt.Errorf("post %q: category %q was not seeded", post.Slug, title)
			}
			categoryRefs = append(categoryRefs, sanity.NewKeyedReference(categoryID))
		}

		assetID, err := s.uploadImage(ctx, post.FeaturedImage, "post-"+post.Slug)
		if err != nil {
			return fmt.Errorf("uploading featured image for %q: %w", post.Slug, err)
		}

		id, err := s.client.Create(ctx, postDoc{
			Type:        "post",
			Title:       post.Title,
			Slug:        sanity.NewSlug(post.Slug),
			Author:      sanity.NewReference(authorID),
			MainImage:   sanity.NewImage(assetID),
			Categories:  categoryRefs,
			PublishedAt: post.PublishedAt.UTC().Format(time.RFC3339),
			Body:        blocks.FromText(post.Body),
		})
		if err != nil {
			return fmt.Errorf("creating post %q: %w", post.Slug, err)
		}

		s.logger.Info("created post", "slug", post.Slug, "id", id)
	}

	return nil
}

// SeedEvents creates each catalog event unless one with the same slug
// already exists. The slug is the event's stable external id.
func (s *Seeder) SeedEvents(ctx context.Context) error {
	for _, ev := range catalog.Events() {
		_, exists, err := s.lookupID(ctx, queryEventBySlug, map[string]any{"slug": ev.Slug})
		if err != nil {
			return fmt.Errorf("checking event %q: %w", ev.Slug, err)
		}
		if exists {
			s.logger.Info("event already exists, skipping", "slug", ev.Slug)
			continue
		}

		assetID, err := s.uploadImage(ctx, ev.Image, "event-"+ev.Slug)
		if err != nil {
			return fmt.Errorf("uploading image for event %q: %w", ev.Slug, err)
		}

		id, err := s.client.Create(ctx, eventDoc{
			Type:        "event",
			Title:       ev.Title,
			Slug:        sanity.NewSlug(ev.Slug),
			Date:        ev.Date.UTC().Format(time.RFC3339),
			Time:        ev.Time,
			Location:    ev.Location,
			Image:       sanity.NewImage(assetID),
			Description: ev.Description,
			Details:     blocks.FromText(ev.Details),
			TicketLink:  ev.TicketLink,
			EventType:   ev.EventType,
			Status:      ev.Status,
		})
		if err != nil {
			return fmt.Errorf("creating event %q: %w", ev.Slug, err)
		}

		s.logger.Info("created event", "slug", ev.Slug, "id", id)
	}

	return nil
}

// InitSiteSettings upserts the site settings singleton: when a settings
// document already exists its mutable fields are patched in place,
// otherwise a fresh document is created. This is the only update path in
// the seeder; every other record is create-only.
func (s *Seeder) InitSiteSettings(ctx context.Context) error {
	settings := catalog.DefaultSiteSettings()
	doc := siteSettingsDoc{
		Type:        "siteSettings",
		Title:       settings.Title,
		Description: settings.Description,
		ContactInfo: contactInfoDoc{
			Address: settings.ContactInfo.Address,
			Email:   settings.ContactInfo.Email,
			Phone:   settings.ContactInfo.Phone,
		},
		SocialMedia: socialMediaDoc{
			Facebook:  settings.SocialMedia.Facebook,
			Instagram: settings.SocialMedia.Instagram,
			Twitter:   settings.SocialMedia.Twitter,
			YouTube:   settings.SocialMedia.YouTube,
		},
	}

	id, exists, err := s.lookupID(ctx, querySiteSettings, nil)
	if err != nil {
		return fmt.Errorf("checking site settings: %w", err)
	}

	if exists {
		err := s.client.Patch(ctx, id, map[string]any{
			"title":       doc.Title,
			"description": doc.Description,
			"contactInfo": doc.ContactInfo,
			"socialMedia": doc.SocialMedia,
		})
		if err != nil {
			return fmt.Errorf("updating site settings: %w", err)
		}
		s.logger.Info("site settings updated", "id", id)
		return nil
	}

	id, err = s.client.Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("creating site settings: %w", err)
	}
	s.logger.Info("site settings created", "id", id)
	return nil
}

// lookupID runs a natural-key existence check and reports the matching
// document's identifier, if any.
func (s *Seeder) lookupID(ctx context.Context, query string, params map[string]any) (string, bool, error) {
	var doc *struct {
		ID string `json:"_id"`
	}
	if err := s.client.Fetch(ctx, query, params, &doc); err != nil {
		return "", false, err
	}
	if doc == nil || doc.ID == "" {
		return "", false, nil
	}
	return doc.ID, true, nil
}

// uploadImage downloads an image from its source URL, verifies the bytes
// decode as an image, and uploads them as a store asset.
func (s *Seeder) uploadImage(ctx context.Context, srcURL, filename string) (string, error) {
	s.logger.Info("uploading image", "url", srcURL, "filename", filename)

	data, err := s.fetcher.Fetch(ctx, srcURL)
	if err != nil {
		return "", fmt.Errorf("fetching image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("source %s is not a decodable image: %w", srcURL, err)
	}
	bounds := img.Bounds()
	s.logger.Debug("image decoded", "filename", filename, "width", bounds.Dx(), "height", bounds.Dy())

	assetID, err := s.client.UploadImage(ctx, data, filename)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	return assetID, nil
}
