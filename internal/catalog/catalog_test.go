// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollington/choirseed/internal/util"
)

func TestPostsCategoriesExistInCatalog(t *testing.T) {
	known := make(map[string]bool)
	for _, cat := range Categories() {
		known[cat.Title] = true
	}

	for _, post := range Posts() {
		assert.NotEmpty(t, post.Categories, "post %q has no categories", post.Slug)
		for _, title := range post.Categories {
			assert.True(t, known[title], "post %q references unknown category %q", post.Slug, title)
		}
	}
}

func TestPostsSlugsValidAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, post := range Posts() {
		assert.True(t, util.IsValidSlug(post.Slug), "post slug %q", post.Slug)
		assert.False(t, seen[post.Slug], "duplicate post slug %q", post.Slug)
		seen[post.Slug] = true

		assert.NotEmpty(t, post.Title)
		assert.NotEmpty(t, post.Body)
		assert.NotEmpty(t, post.FeaturedImage)
		assert.False(t, post.PublishedAt.IsZero(), "post %q has no publish date", post.Slug)
		assert.NotEmpty(t, post.Author.Name)
		assert.NotEmpty(t, post.Author.Image)
		assert.NotEmpty(t, post.Author.Bio)
	}
}

func TestCategoriesTitlesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, cat := range Categories() {
		assert.False(t, seen[cat.Title], "duplicate category title %q", cat.Title)
		seen[cat.Title] = true
		assert.NotEmpty(t, cat.Description, "category %q has no description", cat.Title)
	}
	assert.Len(t, seen, 8)
}

func TestAuthorNamesDistinct(t *testing.T) {
	names := AuthorNames()
	require.NotEmpty(t, names)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], "AuthorNames() returned %q twice", name)
		seen[name] = true

		author, ok := AuthorByName(name)
		require.True(t, ok, "AuthorByName(%q) found nothing", name)
		assert.Equal(t, name, author.Name)
	}
}

func TestAuthorByNameUnknown(t *testing.T) {
	_, ok := AuthorByName("Nobody Atall")
	assert.False(t, ok)
}

func TestEventsSlugsValidAndUnique(t *testing.T) {
	events := Events()
	require.NotEmpty(t, events)

	seen := make(map[string]bool)
	for _, ev := range events {
		assert.True(t, util.IsValidSlug(ev.Slug), "event slug %q", ev.Slug)
		assert.False(t, seen[ev.Slug], "duplicate event slug %q", ev.Slug)
		seen[ev.Slug] = true

		assert.NotEmpty(t, ev.Title)
		assert.NotEmpty(t, ev.Time)
		assert.NotEmpty(t, ev.Location)
		assert.NotEmpty(t, ev.Image)
		assert.NotEmpty(t, ev.Description)
		assert.False(t, ev.Date.IsZero(), "event %q has no date", ev.Slug)
	}
}

func TestEventsTypesAndStatuses(t *testing.T) {
	validTypes := map[string]bool{
		EventTypeConcert: true, EventTypeWorkshop: true, EventTypeFundraiser: true,
		EventTypeCommunity: true, EventTypePrivate: true, EventTypeOther: true,
	}
	validStatuses := map[string]bool{
		EventStatusUpcoming: true, EventStatusPast: true, EventStatusCancelled: true,
	}

	for _, ev := range Events() {
		assert.True(t, validTypes[ev.EventType], "event %q has invalid type %q", ev.Slug, ev.EventType)
		assert.True(t, validStatuses[ev.Status], "event %q has invalid status %q", ev.Slug, ev.Status)
	}
}

func TestDefaultSiteSettings(t *testing.T) {
	settings := DefaultSiteSettings()

	assert.Equal(t, "Tollington Gospel Choir", settings.Title)
	assert.NotEmpty(t, settings.Description)
	assert.NotEmpty(t, settings.ContactInfo.Address)
	assert.NotEmpty(t, settings.ContactInfo.Email)
	assert.NotEmpty(t, settings.ContactInfo.Phone)
	assert.NotEmpty(t, settings.SocialMedia.Facebook)
	assert.NotEmpty(t, settings.SocialMedia.Instagram)
	assert.NotEmpty(t, settings.SocialMedia.Twitter)
	assert.NotEmpty(t, settings.SocialMedia.YouTube)
}
