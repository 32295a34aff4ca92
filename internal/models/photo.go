// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// HomeSection is the homepage placement of a home-featured photo or video.
type HomeSection string

const (
	HomeSectionHero   HomeSection = "hero"
	HomeSectionTop    HomeSection = "top"
	HomeSectionBottom HomeSection = "bottom"
)

// ValidHomeSection reports whether s is one of the known placements.
func ValidHomeSection(s HomeSection) bool {
	switch s {
	case HomeSectionHero, HomeSectionTop, HomeSectionBottom:
		return true
	}
	return false
}

// Photo represents a gallery photo. URL may be a remote location or an
// inline data URI; no binary is ever stored in the repository itself.
type Photo struct {
	ID             string  `json:"id"`
	CategoryID     *string `json:"category_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	URL            string  `json:"url"`
	AltText        *string `json:"alt_text"`
	DisplayOrder   int     `json:"display_order"`
	IsFeatured     bool    `json:"is_featured"`
	IsHomeFeatured bool    `json:"is_home_featured"`
	// HomeDisplaySection must be nil unless IsHomeFeatured is true.
	HomeDisplaySection *HomeSection `json:"home_display_section"`
	ViewCount          int          `json:"view_count"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	// Virtual field joined against the category collection on every read.
	CategoryName string `json:"category_name"`
}

// IsDataURI reports whether the photo payload is inline-encoded rather
// than hosted at a remote URL.
func (p *Photo) IsDataURI() bool {
	return strings.HasPrefix(p.URL, "data:")
}
