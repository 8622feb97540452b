package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "author name",
			input:    "John Smith",
			expected: "john-smith",
		},
		{
			name:     "simple title",
			input:    "Summer Concert 2025",
			expected: "summer-concert-2025",
		},
		{
			name:     "with special characters",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "with accents",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "with multiple spaces",
			input:    "Emma   Thompson",
			expected: "emma-thompson",
		},
		{
			name:     "with hyphens",
			input:    "Behind - the - Music",
			expected: "behind-the-music",
		},
		{
			name:     "with leading and trailing spaces",
			input:    "  Olivia Parker  ",
			expected: "olivia-parker",
		},
		{
			name:     "all special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case",
			input:    "MiChAeL RiChArDs",
			expected: "michael-richards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "valid simple slug",
			input:    "gospel-workshop-june",
			expected: true,
		},
		{
			name:     "valid slug with numbers",
			input:    "summer-concert-2025",
			expected: true,
		},
		{
			name:     "valid single word",
			input:    "community",
			expected: true,
		},
		{
			name:     "invalid - empty",
			input:    "",
			expected: false,
		},
		{
			name:     "invalid - uppercase",
			input:    "Summer-Concert",
			expected: false,
		},
		{
			name:     "invalid - spaces",
			input:    "summer concert",
			expected: false,
		},
		{
			name:     "invalid - starts with hyphen",
			input:    "-summer",
			expected: false,
		},
		{
			name:     "invalid - ends with hyphen",
			input:    "summer-",
			expected: false,
		},
		{
			name:     "invalid - consecutive hyphens",
			input:    "summer--concert",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidSlug(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
