package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"photofolio/internal/fixtures"
)

// Seed populates the database with the default gallery content. It is a
// no-op when any category already exists, so it is safe to run on every
// development startup.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, c := range fixtures.Categories() {
		_, err := db.Exec(`
			INSERT INTO categories (id, name, slug, description, display_order, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, c.ID, c.Name, c.Slug, c.Description, c.DisplayOrder, c.IsActive, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.ID, err)
		}
	}

	for _, p := range fixtures.Photos() {
		_, err := db.Exec(`
			INSERT INTO photos (id, category_id, title, description, url, alt_text, display_order,
				is_featured, is_home_featured, home_display_section, view_count, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, p.ID, p.CategoryID, p.Title, p.Description, p.URL, p.AltText, p.DisplayOrder,
			p.IsFeatured, p.IsHomeFeatured, p.HomeDisplaySection, p.ViewCount, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed insert photo %s: %w", p.ID, err)
		}
	}

	for _, v := range fixtures.Videos() {
		_, err := db.Exec(`
			INSERT INTO videos (id, category_id, title, description, youtube_url, youtube_id,
				custom_thumbnail_url, duration, display_order, is_featured, is_home_featured,
				home_display_section, view_count, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, v.ID, v.CategoryID, v.Title, v.Description, v.YouTubeURL, v.YouTubeID,
			v.CustomThumbnailURL, v.Duration, v.DisplayOrder, v.IsFeatured, v.IsHomeFeatured,
			v.HomeDisplaySection, v.ViewCount, v.CreatedAt, v.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed insert video %s: %w", v.ID, err)
		}
	}

	contact := fixtures.Contact()
	_, err := db.Exec(`
		INSERT INTO contact_info (id, photographer_name, phone, location, email,
			instagram_url, facebook_url, whatsapp_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, contact.ID, contact.PhotographerName, contact.Phone, contact.Location, contact.Email,
		contact.InstagramURL, contact.FacebookURL, contact.WhatsappURL, contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("seed insert contact: %w", err)
	}

	slog.Info("database seeded with default gallery content")
	return nil
}
