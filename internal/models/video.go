// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"regexp"
	"time"
)

// Video represents an externally hosted YouTube video. Only the reference
// is stored — no binary and no transcoding.
type Video struct {
	ID                 string       `json:"id"`
	CategoryID         *string      `json:"category_id"`
	Title              string       `json:"title"`
	Description        *string      `json:"description"`
	YouTubeURL         string       `json:"youtube_url"`
	YouTubeID          string       `json:"youtube_id"`
	CustomThumbnailURL *string      `json:"custom_thumbnail_url"`
	Duration           *string      `json:"duration"`
	DisplayOrder       int          `json:"display_order"`
	IsFeatured         bool         `json:"is_featured"`
	IsHomeFeatured     bool         `json:"is_home_featured"`
	HomeDisplaySection *HomeSection `json:"home_display_section"`
	ViewCount          int          `json:"view_count"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	// Virtual field joined against the category collection on every read.
	CategoryName string `json:"category_name"`
}

// youtubeIDPattern matches the video id in watch, share, embed and legacy
// /v/ URL forms.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([^&\n?#]+)`)

// ExtractYouTubeID pulls the video identifier out of a YouTube URL.
// Returns false when the URL is not a recognizable YouTube link.
func ExtractYouTubeID(url string) (string, bool) {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ThumbnailURL returns the display thumbnail: the custom override when
// set, otherwise the YouTube-derived hqdefault image.
func (v *Video) ThumbnailURL() string {
	if v.CustomThumbnailURL != nil && *v.CustomThumbnailURL != "" {
		return *v.CustomThumbnailURL
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.YouTubeID)
}
