// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blocks converts plain text into the content store's block/span
// rich text representation: an ordered sequence of paragraph blocks, each
// holding an ordered sequence of inline spans.
package blocks

import (
	"strings"

	"github.com/google/uuid"
)

// Span is a single inline text run inside a block. The seeded catalog is
// plain text, so spans never carry marks.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// Block is one paragraph-like node of rich text.
type Block struct {
	Type     string `json:"_type"`
	Key      string `json:"_key"`
	Style    string `json:"style"`
	MarkDefs []any  `json:"markDefs"`
	Children []Span `json:"children"`
}

// FromText splits text on blank-line paragraph breaks and wraps each
// paragraph in a normal-style block containing exactly one unmarked span.
// Empty input yields no blocks. Keys are freshly generated per call; the
// structure is otherwise deterministic.
func FromText(text string) []Block {
	if text == "" {
		return nil
	}

	paragraphs := strings.Split(text, "\n\n")
	result := make([]Block, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		result = append(result, Block{
			Type:     "block",
			Key:      uuid.New().String(),
			Style:    "normal",
			MarkDefs: []any{},
			Children: []Span{
				{
					Type:  "span",
					Key:   uuid.New().String(),
					Text:  paragraph,
					Marks: []string{},
				},
			},
		})
	}
	return result
}
