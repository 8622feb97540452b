// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seeder

import (
	"github.com/tollington/choirseed/internal/blocks"
	"github.com/tollington/choirseed/internal/sanity"
)

// Document shapes written to the content store. Field names follow the
// studio schema types (category, author, post, event, siteSettings).

type categoryDoc struct {
	Type        string `json:"_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type authorDoc struct {
	Type  string         `json:"_type"`
	Name  string         `json:"name"`
	Slug  sanity.Slug    `json:"slug"`
	Bio   []blocks.Block `json:"bio"`
	Image sanity.Image   `json:"image"`
}

type postDoc struct {
	Type        string             `json:"_type"`
	Title       string             `json:"title"`
	Slug        sanity.Slug        `json:"slug"`
	Author      sanity.Reference   `json:"author"`
	MainImage   sanity.Image       `json:"mainImage"`
	Categories  []sanity.Reference `json:"categories"`
	PublishedAt string             `json:"publishedAt"`
	Body        []blocks.Block     `json:"body"`
}

type eventDoc struct {
	Type        string         `json:"_type"`
	Title       string         `json:"title"`
	Slug        sanity.Slug    `json:"slug"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Location    string         `json:"location"`
	Image       sanity.Image   `json:"image"`
	Description string         `json:"description"`
	Details     []blocks.Block `json:"details,omitempty"`
	TicketLink  string         `json:"ticketLink,omitempty"`
	EventType   string         `json:"eventType"`
	Status      string         `json:"status"`
}

type contactInfoDoc struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type socialMediaDoc struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
}

type siteSettingsDoc struct {
	Type        string         `json:"_type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ContactInfo contactInfoDoc `json:"contactInfo"`
	SocialMedia socialMediaDoc `json:"socialMedia"`
}
