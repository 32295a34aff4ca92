// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// derive.go holds the validation and derived-field logic shared by all
// backends. Derived fields (category_name, photo_count, video_count) are
// recomputed on every read because the underlying collections can change
// between calls.
package store

import (
	"sort"
	"time"

	"photofolio/internal/models"
)

// ValidateCategory checks the fields required on every category.
func ValidateCategory(c *models.Category) error {
	if c.Name == "" {
		return Invalid("name is required")
	}
	if c.Slug == "" {
		return Invalid("slug is required")
	}
	return nil
}

// ValidatePhoto checks the fields required on every photo.
func ValidatePhoto(p *models.Photo) error {
	if p.Title == "" {
		return Invalid("title is required")
	}
	if p.URL == "" {
		return Invalid("url is required")
	}
	return nil
}

// ValidateVideo checks the fields required on every video. The youtube_id
// must already be derived (PrepareVideo does that for new records).
func ValidateVideo(v *models.Video) error {
	if v.Title == "" {
		return Invalid("title is required")
	}
	if v.YouTubeURL == "" {
		return Invalid("youtube_url is required")
	}
	if v.YouTubeID == "" {
		return Invalid("youtube_url is not a recognizable YouTube link")
	}
	return nil
}

// NormalizeHomeSection enforces the home-placement invariant: the section
// is nil unless the record is home-featured, and a home-featured record
// must carry a known section.
func NormalizeHomeSection(homeFeatured bool, section *models.HomeSection) (*models.HomeSection, error) {
	if !homeFeatured {
		return nil, nil
	}
	if section == nil {
		return nil, Invalid("home_display_section is required when is_home_featured is true")
	}
	if !models.ValidHomeSection(*section) {
		return nil, Invalid("home_display_section must be one of hero, top, bottom")
	}
	return section, nil
}

// PrepareCategory stamps identity and timestamps on a new category and
// validates it. Backends call this before persisting.
func PrepareCategory(c *models.Category) error {
	if err := ValidateCategory(c); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.ID = NewID()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.PhotoCount = 0
	c.VideoCount = 0
	return nil
}

// PreparePhoto stamps identity and timestamps on a new photo, enforcing
// the home-section invariant first.
func PreparePhoto(p *models.Photo) error {
	section, err := NormalizeHomeSection(p.IsHomeFeatured, p.HomeDisplaySection)
	if err != nil {
		return err
	}
	p.HomeDisplaySection = section
	if err := ValidatePhoto(p); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.ID = NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

// PrepareVideo derives the youtube_id, enforces the home-section
// invariant, and stamps identity and timestamps on a new video.
func PrepareVideo(v *models.Video) error {
	id, ok := models.ExtractYouTubeID(v.YouTubeURL)
	if !ok {
		return Invalid("youtube_url is not a recognizable YouTube link")
	}
	v.YouTubeID = id
	section, err := NormalizeHomeSection(v.IsHomeFeatured, v.HomeDisplaySection)
	if err != nil {
		return err
	}
	v.HomeDisplaySection = section
	if err := ValidateVideo(v); err != nil {
		return err
	}
	now := time.Now().UTC()
	v.ID = NewID()
	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

// CategoryNameFor resolves a category reference to its display name,
// falling back to the Uncategorized label for dangling or nil references.
func CategoryNameFor(cats []models.Category, id *string) string {
	if id != nil {
		for i := range cats {
			if cats[i].ID == *id {
				return cats[i].Name
			}
		}
	}
	return models.UncategorizedLabel
}

// AnnotateCategories fills the virtual photo/video counts on each
// category from the current photo and video collections.
func AnnotateCategories(cats []models.Category, photos []models.Photo, videos []models.Video) {
	for i := range cats {
		cats[i].PhotoCount = 0
		cats[i].VideoCount = 0
		for j := range photos {
			if photos[j].CategoryID != nil && *photos[j].CategoryID == cats[i].ID {
				cats[i].PhotoCount++
			}
		}
		for j := range videos {
			if videos[j].CategoryID != nil && *videos[j].CategoryID == cats[i].ID {
				cats[i].VideoCount++
			}
		}
	}
}

// AnnotatePhotos fills the virtual category_name on each photo.
func AnnotatePhotos(photos []models.Photo, cats []models.Category) {
	for i := range photos {
		photos[i].CategoryName = CategoryNameFor(cats, photos[i].CategoryID)
	}
}

// AnnotateVideos fills the virtual category_name on each video.
func AnnotateVideos(videos []models.Video, cats []models.Category) {
	for i := range videos {
		videos[i].CategoryName = CategoryNameFor(cats, videos[i].CategoryID)
	}
}

// SortCategories orders by display_order ascending, ties in source order.
func SortCategories(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	})
}

// SortPhotos orders by display_order ascending, ties in source order.
func SortPhotos(photos []models.Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].DisplayOrder < photos[j].DisplayOrder
	})
}

// SortVideos orders by display_order ascending, ties in source order.
func SortVideos(videos []models.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].DisplayOrder < videos[j].DisplayOrder
	})
}
