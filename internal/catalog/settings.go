// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// DefaultSiteSettings returns the site settings singleton defaults.
// Logos and favicon are uploaded by editors in the studio, not seeded.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Title:       "Tollington Gospel Choir",
		Description: "Bringing musical joy to the community through gospel music since 2008.",
		ContactInfo: ContactInfo{
			Address: "St Saviour's Church, Hanley Road, London N4 3DQ",
			Email:   "tollingtongospelchoir@gmail.com",
			Phone:   "020 7123 4567",
		},
		SocialMedia: SocialMedia{
			Facebook:  "https://facebook.com",
			Instagram: "https://instagram.com",
			Twitter:   "https://twitter.com",
			YouTube:   "https://youtube.com",
		},
	}
}
