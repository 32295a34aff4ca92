// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures shared by every content
// repository backend and provides the core types used throughout the
// application.
package models

import "time"

// UncategorizedLabel is the category name reported for photos and videos
// whose category no longer exists (or was never set).
const UncategorizedLabel = "Uncategorized"

// Category represents a gallery category (Portraits, Weddings, ...).
// Photos and videos reference a category by id; the reference is not
// enforced — a deleted category orphans its media, which then reads back
// as UncategorizedLabel.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Virtual fields recomputed on every read, never persisted.
	PhotoCount int `json:"photo_count"`
	VideoCount int `json:"video_count"`
}
