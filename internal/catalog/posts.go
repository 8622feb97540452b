// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "time"

const loremBody = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.\n\nDuis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// Categories returns the blog categories to seed.
func Categories() []Category {
	return []Category{
		{Title: "Performances", Description: "Live performances and concerts by the choir"},
		{Title: "Community", Description: "News and updates about our choir community"},
		{Title: "Workshops", Description: "Educational workshops and training sessions"},
		{Title: "Behind the Scenes", Description: "A look at what goes on behind the scenes"},
		{Title: "Events", Description: "Upcoming and past events"},
		{Title: "Announcements", Description: "Important announcements from the choir"},
		{Title: "Music", Description: "All about the music we perform and create"},
		{Title: "Education", Description: "Educational content about gospel music"},
	}
}

// Posts returns the blog posts to seed, in publication order (newest
// first, matching the original site's listing).
func Posts() []Post {
	return []Post{
		{
			Title:                "Summer Concert Highlights",
			Slug:                 "summer-concert-highlights",
			Body:                 loremBody,
			FeaturedImage:        "https://images.pexels.com/photos/995301/pexels-photo-995301.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PublishedAt:          time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			EstimatedReadingTime: 4,
			Author: Author{
				Name:  "Emma Thompson",
				Image: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Bio:   "Choir director and vocal coach with over 15 years of experience",
			},
			Categories: []string{"Performances", "Events"},
		},
		{
			Title:                "Welcome to Our New Members",
			Slug:                 "new-members-welcome",
			Body:                 loremBody,
			FeaturedImage:        "https://images.pexels.com/photos/8412420/pexels-photo-8412420.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PublishedAt:          time.Date(2025, time.May, 22, 0, 0, 0, 0, time.UTC),
			EstimatedReadingTime: 3,
			Author: Author{
				Name:  "Michael Richards",
				Image: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Bio:   "Community manager and choir tenor section leader",
			},
			Categories: []string{"Community", "Announcements"},
		},
		{
			Title:                "Gospel Workshop Success",
			Slug:                 "gospel-workshop-success",
			Body:                 loremBody,
			FeaturedImage:        "https://images.pexels.com/photos/7672255/pexels-photo-7672255.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PublishedAt:          time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
			EstimatedReadingTime: 5,
			Author: Author{
				Name:  "James Wilson",
				Image: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Bio:   "Vocal coach and workshop facilitator",
			},
			Categories: []string{"Workshops", "Education"},
		},
		{
			Title:                "Behind the Music: Our Choir's Creative Process",
			Slug:                 "behind-the-music",
			Body:                 loremBody,
			FeaturedImage:        "https://images.pexels.com/photos/6173866/pexels-photo-6173866.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PublishedAt:          time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			EstimatedReadingTime: 6,
			Author: Author{
				Name:  "Olivia Parker",
				Image: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Bio:   "Music arranger and choir alto section leader",
			},
			Categories: []string{"Behind the Scenes", "Music"},
		},
	}
}
