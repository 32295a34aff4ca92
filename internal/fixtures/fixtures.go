// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fixtures holds the built-in seed records used to populate a
// backend on first use. Seed ids carry a reserved prefix so the admin
// clear-defaults operation can identify and bulk-remove them without
// touching operator-created content.
package fixtures

import (
	"strings"
	"time"

	"photofolio/internal/models"
)

// SeedIDPrefix marks records that ship with the application.
const SeedIDPrefix = "seed-"

// IsSeedID reports whether id belongs to a built-in fixture record.
func IsSeedID(id string) bool {
	return strings.HasPrefix(id, SeedIDPrefix)
}

func ptr[T any](v T) *T { return &v }

// seededAt is a fixed timestamp so fixture data is stable across runs.
var seededAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Categories returns a fresh copy of the default category set.
func Categories() []models.Category {
	return []models.Category{
		{
			ID:           "seed-1",
			Name:         "Portraits",
			Slug:         "portraits",
			Description:  ptr("Professional portrait photography"),
			DisplayOrder: 1,
			IsActive:     true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-2",
			Name:         "Weddings",
			Slug:         "weddings",
			Description:  ptr("Beautiful wedding photography"),
			DisplayOrder: 2,
			IsActive:     true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-3",
			Name:         "Events",
			Slug:         "events",
			Description:  ptr("Event and celebration photography"),
			DisplayOrder: 3,
			IsActive:     true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-4",
			Name:         "Product",
			Slug:         "product",
			Description:  ptr("Product and commercial photography"),
			DisplayOrder: 4,
			IsActive:     true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
	}
}

// Photos returns a fresh copy of the default photo set.
func Photos() []models.Photo {
	section := func(s models.HomeSection) *models.HomeSection { return &s }
	return []models.Photo{
		{
			ID:                 "seed-p1",
			CategoryID:         ptr("seed-1"),
			Title:              "Professional Portrait Session",
			Description:        ptr("Elegant professional portrait with natural lighting."),
			URL:                "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=800&h=800&fit=crop",
			AltText:            ptr("Professional portrait of a woman with elegant lighting"),
			DisplayOrder:       1,
			IsFeatured:         true,
			IsHomeFeatured:     true,
			HomeDisplaySection: section(models.HomeSectionHero),
			CreatedAt:          seededAt,
			UpdatedAt:          seededAt,
		},
		{
			ID:                 "seed-p2",
			CategoryID:         ptr("seed-2"),
			Title:              "Wedding Ceremony",
			Description:        ptr("Intimate wedding ceremony captured in golden hour light."),
			URL:                "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=800&fit=crop",
			AltText:            ptr("Bride and groom exchanging vows outdoors"),
			DisplayOrder:       2,
			IsFeatured:         true,
			IsHomeFeatured:     true,
			HomeDisplaySection: section(models.HomeSectionTop),
			CreatedAt:          seededAt,
			UpdatedAt:          seededAt,
		},
		{
			ID:           "seed-p3",
			CategoryID:   ptr("seed-2"),
			Title:        "First Dance",
			Description:  ptr("The couple's first dance under string lights."),
			URL:          "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&h=800&fit=crop",
			AltText:      ptr("Newlyweds dancing at their reception"),
			DisplayOrder: 3,
			IsFeatured:   false,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-p4",
			CategoryID:   ptr("seed-3"),
			Title:        "Corporate Gala",
			Description:  ptr("Keynote moment at an evening corporate event."),
			URL:          "https://images.unsplash.com/photo-1511578314322-379afb476865?w=800&h=800&fit=crop",
			AltText:      ptr("Speaker on stage at a gala dinner"),
			DisplayOrder: 4,
			IsFeatured:   false,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:                 "seed-p5",
			CategoryID:         ptr("seed-4"),
			Title:              "Product Studio Shot",
			Description:        ptr("Minimalist product photography on seamless white."),
			URL:                "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&h=800&fit=crop",
			AltText:            ptr("Watch photographed on a white background"),
			DisplayOrder:       5,
			IsFeatured:         true,
			IsHomeFeatured:     true,
			HomeDisplaySection: section(models.HomeSectionBottom),
			CreatedAt:          seededAt,
			UpdatedAt:          seededAt,
		},
		{
			ID:           "seed-p6",
			CategoryID:   ptr("seed-1"),
			Title:        "Outdoor Portrait",
			Description:  ptr("Natural light portrait in an urban setting."),
			URL:          "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=800&h=800&fit=crop",
			AltText:      ptr("Portrait of a smiling man in the city"),
			DisplayOrder: 6,
			IsFeatured:   false,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
	}
}

// Videos returns a fresh copy of the default video set.
func Videos() []models.Video {
	return []models.Video{
		{
			ID:           "seed-v1",
			CategoryID:   ptr("seed-2"),
			Title:        "Wedding Highlight Film",
			Description:  ptr("A cinematic highlight reel from a full wedding day."),
			YouTubeURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			YouTubeID:    "dQw4w9WgXcQ",
			Duration:     ptr("3:45"),
			DisplayOrder: 1,
			IsFeatured:   true,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-v2",
			CategoryID:   ptr("seed-3"),
			Title:        "Event Aftermovie",
			Description:  ptr("Two-minute aftermovie of a corporate summit."),
			YouTubeURL:   "https://youtu.be/jNQXAC9IVRw",
			YouTubeID:    "jNQXAC9IVRw",
			Duration:     ptr("2:10"),
			DisplayOrder: 2,
			IsFeatured:   false,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "seed-v3",
			CategoryID:   ptr("seed-1"),
			Title:        "Behind the Lens",
			Description:  ptr("A look at how a studio portrait session comes together."),
			YouTubeURL:   "https://www.youtube.com/watch?v=9bZkp7q19f0",
			YouTubeID:    "9bZkp7q19f0",
			Duration:     ptr("5:02"),
			DisplayOrder: 3,
			IsFeatured:   false,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
	}
}

// Contact returns the default singleton contact record. Backends serve it
// verbatim until the operator saves their own details.
func Contact() models.ContactInfo {
	return models.ContactInfo{
		ID:               "seed-contact",
		PhotographerName: "Photography Studio",
		Phone:            "+1 (555) 123-4567",
		Location:         "123 Photography Street, Creative District, NY 10001",
		Email:            ptr("hello@photographystudio.com"),
		InstagramURL:     ptr("https://instagram.com/photographystudio"),
		FacebookURL:      ptr("https://facebook.com/PhotographyStudioNY"),
		UpdatedAt:        seededAt,
	}
}
