// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog holds the fixed in-memory source records the seeder
// materializes into the content store: blog categories, posts with their
// authors, events, and the site settings singleton.
package catalog

import "time"

// Category is a blog post grouping, unique by title.
type Category struct {
	Title       string
	Description string
}

// Author is a post author as embedded in the post catalog. Distinct
// authors are derived from posts at seed time; Name is the natural key.
type Author struct {
	Name  string
	Image string // portrait source URL
	Bio   string
}

// Post is a blog post source record, unique by slug.
type Post struct {
	Title                string
	Slug                 string
	Body                 string
	FeaturedImage        string // source URL
	PublishedAt          time.Time
	EstimatedReadingTime int // minutes
	Author               Author
	Categories           []string // category titles
}

// Event types accepted by the event schema.
const (
	EventTypeConcert    = "concert"
	EventTypeWorkshop   = "workshop"
	EventTypeFundraiser = "fundraiser"
	EventTypeCommunity  = "community"
	EventTypePrivate    = "private"
	EventTypeOther      = "other"
)

// Event statuses accepted by the event schema.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusPast      = "past"
	EventStatusCancelled = "cancelled"
)

// Event is a choir event source record. Slug doubles as the stable
// external id and the natural key.
type Event struct {
	Slug        string
	Title       string
	Date        time.Time
	Time        string // free-text range, e.g. "7:00 PM - 9:30 PM"
	Location    string
	Image       string // source URL
	Description string
	Details     string // optional long-form text
	TicketLink  string // optional
	EventType   string
	Status      string
}

// ContactInfo is the site contact block.
type ContactInfo struct {
	Address string
	Email   string
	Phone   string
}

// SocialMedia holds the four social profile URLs.
type SocialMedia struct {
	Facebook  string
	Instagram string
	Twitter   string
	YouTube   string
}

// SiteSettings is the singleton site configuration document's source data.
type SiteSettings struct {
	Title       string
	Description string
	ContactInfo ContactInfo
	SocialMedia SocialMedia
}

// AuthorNames returns the distinct author names referenced by the post
// catalog, in first-appearance order.
func AuthorNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, post := range Posts() {
		if !seen[post.Author.Name] {
			seen[post.Author.Name] = true
			names = append(names, post.Author.Name)
		}
	}
	return names
}

// AuthorByName returns the author record embedded in the first post
// written by the named author.
func AuthorByName(name string) (Author, bool) {
	for _, post := range Posts() {
		if post.Author.Name == name {
			return post.Author, true
		}
	}
	return Author{}, false
}
