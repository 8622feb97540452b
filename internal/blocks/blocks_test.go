// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import "testing"

func TestFromText_Empty(t *testing.T) {
	if got := FromText(""); len(got) != 0 {
		t.Errorf("FromText(%q) returned %d blocks, want 0", "", len(got))
	}
}

func TestFromText_TwoParagraphs(t *testing.T) {
	got := FromText("A\n\nB")

	if len(got) != 2 {
		t.Fatalf("FromText returned %d blocks, want 2", len(got))
	}

	wantTexts := []string{"A", "B"}
	for i, block := range got {
		if block.Type != "block" {
			t.Errorf("block %d: Type = %q, want %q", i, block.Type, "block")
		}
		if block.Style != "normal" {
			t.Errorf("block %d: Style = %q, want %q", i, block.Style, "normal")
		}
		if len(block.MarkDefs) != 0 {
			t.Errorf("block %d: MarkDefs has %d entries, want 0", i, len(block.MarkDefs))
		}
		if len(block.Children) != 1 {
			t.Fatalf("block %d: has %d spans, want 1", i, len(block.Children))
		}

		span := block.Children[0]
		if span.Type != "span" {
			t.Errorf("block %d: span Type = %q, want %q", i, span.Type, "span")
		}
		if span.Text != wantTexts[i] {
			t.Errorf("block %d: span Text = %q, want %q", i, span.Text, wantTexts[i])
		}
		if len(span.Marks) != 0 {
			t.Errorf("block %d: span has %d marks, want 0", i, len(span.Marks))
		}
	}
}

func TestFromText_SingleParagraph(t *testing.T) {
	text := "Learn gospel singing techniques and repertoire in this day-long workshop."
	got := FromText(text)

	if len(got) != 1 {
		t.Fatalf("FromText returned %d blocks, want 1", len(got))
	}
	if got[0].Children[0].Text != text {
		t.Errorf("span Text = %q, want %q", got[0].Children[0].Text, text)
	}
}

func TestFromText_UniqueKeys(t *testing.T) {
	got := FromText("one\n\ntwo\n\nthree")

	seen := make(map[string]bool)
	for _, block := range got {
		if block.Key == "" {
			t.Error("block key is empty")
		}
		if seen[block.Key] {
			t.Errorf("duplicate block key %q", block.Key)
		}
		seen[block.Key] = true

		for _, span := range block.Children {
			if span.Key == "" {
				t.Error("span key is empty")
			}
			if seen[span.Key] {
				t.Errorf("duplicate span key %q", span.Key)
			}
			seen[span.Key] = true
		}
	}
}

func TestFromText_SingleNewlineStaysInOneBlock(t *testing.T) {
	got := FromText("line one\nline two")

	if len(got) != 1 {
		t.Fatalf("FromText returned %d blocks, want 1", len(got))
	}
	if got[0].Children[0].Text != "line one\nline two" {
		t.Errorf("span Text = %q, want the joined lines", got[0].Children[0].Text)
	}
}
