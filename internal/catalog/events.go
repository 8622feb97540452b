// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "time"

// Events returns all events to seed, upcoming first then past.
func Events() []Event {
	return append(upcomingEvents(), pastEvents()...)
}

func upcomingEvents() []Event {
	return []Event{
		{
			Slug:        "summer-concert-2025",
			Title:       "Summer Concert 2025",
			Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
			Time:        "7:00 PM - 9:30 PM",
			Location:    "St. Mary's Church, London",
			Image:       "https://images.pexels.com/photos/210766/pexels-photo-210766.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "Join us for a magical evening of uplifting gospel music at our annual summer concert.",
			Details:     "Our annual summer concert returns with a celebration of gospel classics and contemporary Christian music. The evening will feature our full choir, special guest soloists, and a backing band of London's finest musicians. Refreshments will be available during intermission.",
			TicketLink:  "#",
			EventType:   EventTypeConcert,
			Status:      EventStatusUpcoming,
		},
		{
			Slug:        "gospel-workshop-june",
			Title:       "Gospel Workshop",
			Date:        time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC),
			Time:        "10:00 AM - 4:00 PM",
			Location:    "Tollington Community Centre",
			Image:       "https://images.pexels.com/photos/7672255/pexels-photo-7672255.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "Learn gospel singing techniques and repertoire in this day-long workshop open to all skill levels.",
			Details:     "This workshop is designed for singers of all levels who want to explore gospel music. Our experienced vocal coaches will guide you through vocal techniques, harmony, and the distinctive style of gospel singing. By the end of the day, participants will have learned several gospel songs to perform together.",
			TicketLink:  "#",
			EventType:   EventTypeWorkshop,
			Status:      EventStatusUpcoming,
		},
		{
			Slug:        "charity-fundraiser",
			Title:       "Charity Fundraiser",
			Date:        time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC),
			Time:        "3:00 PM - 6:00 PM",
			Location:    "Finsbury Park",
			Image:       "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "An outdoor performance to raise funds for local homeless shelters.",
			Details:     "Join us for an afternoon of music in the park as we raise funds for local homeless shelters. Bring your picnic blankets and enjoy gospel music in the beautiful surroundings of Finsbury Park. Food vendors will be present, and all proceeds from ticket sales will go directly to our partner charities.",
			TicketLink:  "#",
			EventType:   EventTypeFundraiser,
			Status:      EventStatusUpcoming,
		},
	}
}

func pastEvents() []Event {
	return []Event{
		{
			Slug:        "easter-celebration",
			Title:       "Easter Celebration Concert",
			Date:        time.Date(2024, time.April, 16, 0, 0, 0, 0, time.UTC),
			Time:        "6:30 PM - 8:30 PM",
			Location:    "All Saints Church, London",
			Image:       "https://images.pexels.com/photos/260409/pexels-photo-260409.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "A special Easter concert celebrating hope and renewal through gospel music.",
			EventType:   EventTypeConcert,
			Status:      EventStatusPast,
		},
		{
			Slug:        "black-history-month",
			Title:       "Black History Month Celebration",
			Date:        time.Date(2024, time.October, 22, 0, 0, 0, 0, time.UTC),
			Time:        "7:00 PM - 9:00 PM",
			Location:    "Hackney Town Hall",
			Image:       "https://images.pexels.com/photos/2228568/pexels-photo-2228568.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "A concert honoring the rich tradition of gospel music and its cultural significance.",
			EventType:   EventTypeConcert,
			Status:      EventStatusPast,
		},
		{
			Slug:        "christmas-carol-service",
			Title:       "Christmas Carol Service",
			Date:        time.Date(2024, time.December, 18, 0, 0, 0, 0, time.UTC),
			Time:        "5:00 PM - 7:00 PM",
			Location:    "St. Paul's Cathedral",
			Image:       "https://images.pexels.com/photos/6141914/pexels-photo-6141914.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Description: "A festive evening of traditional carols and contemporary gospel Christmas music.",
			EventType:   EventTypeConcert,
			Status:      EventStatusPast,
		},
	}
}
