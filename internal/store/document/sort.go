// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package document

import (
	"sort"

	"photofolio/internal/models"
)

// Hash iteration order is arbitrary, so ties on display_order fall back
// to created_at then id, matching the relational backend's ORDER BY.

func sortCategoriesByOrder(cats []models.Category) {
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].DisplayOrder != cats[j].DisplayOrder {
			return cats[i].DisplayOrder < cats[j].DisplayOrder
		}
		if !cats[i].CreatedAt.Equal(cats[j].CreatedAt) {
			return cats[i].CreatedAt.Before(cats[j].CreatedAt)
		}
		return cats[i].ID < cats[j].ID
	})
}

func sortPhotosByOrder(photos []models.Photo) {
	sort.Slice(photos, func(i, j int) bool {
		if photos[i].DisplayOrder != photos[j].DisplayOrder {
			return photos[i].DisplayOrder < photos[j].DisplayOrder
		}
		if !photos[i].CreatedAt.Equal(photos[j].CreatedAt) {
			return photos[i].CreatedAt.Before(photos[j].CreatedAt)
		}
		return photos[i].ID < photos[j].ID
	})
}

func sortVideosByOrder(videos []models.Video) {
	sort.Slice(videos, func(i, j int) bool {
		if videos[i].DisplayOrder != videos[j].DisplayOrder {
			return videos[i].DisplayOrder < videos[j].DisplayOrder
		}
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.Before(videos[j].CreatedAt)
		}
		return videos[i].ID < videos[j].ID
	})
}
