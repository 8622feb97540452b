// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package sanity

import "github.com/google/uuid"

// Slug is the content store's slug field wrapper.
type Slug struct {
	Type    string `json:"_type"`
	Current string `json:"current"`
}

// NewSlug wraps a slug string in the store's slug object shape.
func NewSlug(current string) Slug {
	return Slug{Type: "slug", Current: current}
}

// Reference points at another document by its store-assigned identifier.
// References held inside arrays additionally carry a unique key for the
// store's array ordering semantics.
type Reference struct {
	Type string `json:"_type"`
	Ref  string `json:"_ref"`
	Key  string `json:"_key,omitempty"`
}

// NewReference builds a plain document reference.
func NewReference(id string) Reference {
	return Reference{Type: "reference", Ref: id}
}

// NewKeyedReference builds an array-member reference with a freshly
// generated key.
func NewKeyedReference(id string) Reference {
	return Reference{Type: "reference", Ref: id, Key: uuid.New().String()}
}

// Image embeds an uploaded binary asset in a document.
type Image struct {
	Type  string    `json:"_type"`
	Asset Reference `json:"asset"`
}

// NewImage wraps an uploaded asset identifier as an embeddable image field.
func NewImage(assetID string) Image {
	return Image{Type: "image", Asset: NewReference(assetID)}
}
