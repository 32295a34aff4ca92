// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"photofolio/internal/models"
)

// Patch structs carry partial updates: nil fields are left untouched.
// For nullable text fields, an explicit empty string clears the value.
// ID and created_at can never change through a patch.

// CategoryPatch is a partial category update.
type CategoryPatch struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// PhotoPatch is a partial photo update.
type PhotoPatch struct {
	CategoryID         *string             `json:"category_id"`
	Title              *string             `json:"title"`
	Description        *string             `json:"description"`
	URL                *string             `json:"url"`
	AltText            *string             `json:"alt_text"`
	DisplayOrder       *int                `json:"display_order"`
	IsFeatured         *bool               `json:"is_featured"`
	IsHomeFeatured     *bool               `json:"is_home_featured"`
	HomeDisplaySection *models.HomeSection `json:"home_display_section"`
	ViewCount          *int                `json:"view_count"`
}

// VideoPatch is a partial video update.
type VideoPatch struct {
	CategoryID         *string             `json:"category_id"`
	Title              *string             `json:"title"`
	Description        *string             `json:"description"`
	YouTubeURL         *string             `json:"youtube_url"`
	CustomThumbnailURL *string             `json:"custom_thumbnail_url"`
	Duration           *string             `json:"duration"`
	DisplayOrder       *int                `json:"display_order"`
	IsFeatured         *bool               `json:"is_featured"`
	IsHomeFeatured     *bool               `json:"is_home_featured"`
	HomeDisplaySection *models.HomeSection `json:"home_display_section"`
	ViewCount          *int                `json:"view_count"`
}

// ContactPatch is a partial contact-info update.
type ContactPatch struct {
	PhotographerName *string `json:"photographer_name"`
	Phone            *string `json:"phone"`
	Location         *string `json:"location"`
	Email            *string `json:"email"`
	InstagramURL     *string `json:"instagram_url"`
	FacebookURL      *string `json:"facebook_url"`
	WhatsappURL      *string `json:"whatsapp_url"`
}

// optText folds an empty-string patch value into nil for nullable columns.
func optText(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// ApplyCategoryPatch merges p into c and refreshes updated_at. The merged
// record is validated before the caller persists it.
func ApplyCategoryPatch(c *models.Category, p CategoryPatch) error {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Description != nil {
		c.Description = optText(*p.Description)
	}
	if p.DisplayOrder != nil {
		c.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if err := ValidateCategory(c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyPhotoPatch merges p into ph, re-normalizes the home-section
// invariant, and refreshes updated_at.
func ApplyPhotoPatch(ph *models.Photo, p PhotoPatch) error {
	if p.CategoryID != nil {
		ph.CategoryID = optText(*p.CategoryID)
	}
	if p.Title != nil {
		ph.Title = *p.Title
	}
	if p.Description != nil {
		ph.Description = optText(*p.Description)
	}
	if p.URL != nil {
		ph.URL = *p.URL
	}
	if p.AltText != nil {
		ph.AltText = optText(*p.AltText)
	}
	if p.DisplayOrder != nil {
		ph.DisplayOrder = *p.DisplayOrder
	}
	if p.IsFeatured != nil {
		ph.IsFeatured = *p.IsFeatured
	}
	if p.IsHomeFeatured != nil {
		ph.IsHomeFeatured = *p.IsHomeFeatured
	}
	if p.HomeDisplaySection != nil {
		ph.HomeDisplaySection = p.HomeDisplaySection
	}
	if p.ViewCount != nil {
		ph.ViewCount = *p.ViewCount
	}
	section, err := NormalizeHomeSection(ph.IsHomeFeatured, ph.HomeDisplaySection)
	if err != nil {
		return err
	}
	ph.HomeDisplaySection = section
	if err := ValidatePhoto(ph); err != nil {
		return err
	}
	ph.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyVideoPatch merges p into v. A changed youtube_url re-derives the
// youtube_id; extraction failure rejects the whole patch.
func ApplyVideoPatch(v *models.Video, p VideoPatch) error {
	if p.CategoryID != nil {
		v.CategoryID = optText(*p.CategoryID)
	}
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = optText(*p.Description)
	}
	if p.YouTubeURL != nil {
		v.YouTubeURL = *p.YouTubeURL
		id, ok := models.ExtractYouTubeID(v.YouTubeURL)
		if !ok {
			return Invalid("youtube_url is not a recognizable YouTube link")
		}
		v.YouTubeID = id
	}
	if p.CustomThumbnailURL != nil {
		v.CustomThumbnailURL = optText(*p.CustomThumbnailURL)
	}
	if p.Duration != nil {
		v.Duration = optText(*p.Duration)
	}
	if p.DisplayOrder != nil {
		v.DisplayOrder = *p.DisplayOrder
	}
	if p.IsFeatured != nil {
		v.IsFeatured = *p.IsFeatured
	}
	if p.IsHomeFeatured != nil {
		v.IsHomeFeatured = *p.IsHomeFeatured
	}
	if p.HomeDisplaySection != nil {
		v.HomeDisplaySection = p.HomeDisplaySection
	}
	if p.ViewCount != nil {
		v.ViewCount = *p.ViewCount
	}
	section, err := NormalizeHomeSection(v.IsHomeFeatured, v.HomeDisplaySection)
	if err != nil {
		return err
	}
	v.HomeDisplaySection = section
	if err := ValidateVideo(v); err != nil {
		return err
	}
	v.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyContactPatch merges p into c and refreshes updated_at.
func ApplyContactPatch(c *models.ContactInfo, p ContactPatch) {
	if p.PhotographerName != nil {
		c.PhotographerName = *p.PhotographerName
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Email != nil {
		c.Email = optText(*p.Email)
	}
	if p.InstagramURL != nil {
		c.InstagramURL = optText(*p.InstagramURL)
	}
	if p.FacebookURL != nil {
		c.FacebookURL = optText(*p.FacebookURL)
	}
	if p.WhatsappURL != nil {
		c.WhatsappURL = optText(*p.WhatsappURL)
	}
	c.UpdatedAt = time.Now().UTC()
}
