// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

type videoStore struct {
	db *sql.DB
}

const videoColumns = `id, category_id, title, description, youtube_url, youtube_id,
	custom_thumbnail_url, duration, display_order, is_featured, is_home_featured,
	home_display_section, view_count, created_at, updated_at`

const videoSelect = `
	SELECT v.id, v.category_id, v.title, v.description, v.youtube_url, v.youtube_id,
	       v.custom_thumbnail_url, v.duration, v.display_order, v.is_featured,
	       v.is_home_featured, v.home_display_section, v.view_count,
	       v.created_at, v.updated_at,
	       COALESCE(c.name, 'Uncategorized') AS category_name
	FROM videos v
	LEFT JOIN categories c ON c.id = v.category_id`

func scanVideo(scanner interface{ Scan(...any) error }) (*models.Video, error) {
	var v models.Video
	err := scanner.Scan(
		&v.ID, &v.CategoryID, &v.Title, &v.Description, &v.YouTubeURL, &v.YouTubeID,
		&v.CustomThumbnailURL, &v.Duration, &v.DisplayOrder, &v.IsFeatured,
		&v.IsHomeFeatured, &v.HomeDisplaySection, &v.ViewCount,
		&v.CreatedAt, &v.UpdatedAt,
		&v.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVideoRow(scanner interface{ Scan(...any) error }) (*models.Video, error) {
	var v models.Video
	err := scanner.Scan(
		&v.ID, &v.CategoryID, &v.Title, &v.Description, &v.YouTubeURL, &v.YouTubeID,
		&v.CustomThumbnailURL, &v.Duration, &v.DisplayOrder, &v.IsFeatured,
		&v.IsHomeFeatured, &v.HomeDisplaySection, &v.ViewCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns videos ordered by display_order, optionally filtered by
// category.
func (s *videoStore) List(ctx context.Context, categoryID string) ([]models.Video, error) {
	query := videoSelect
	var args []any
	if categoryID != "" {
		query += ` WHERE v.category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY v.display_order, v.created_at, v.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list videos", err)
	}
	defer rows.Close()

	var items []models.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, wrapErr("scan video", err)
		}
		items = append(items, *v)
	}
	return items, wrapErr("list videos", rows.Err())
}

// Find retrieves a video by id. Returns nil if not found.
func (s *videoStore) Find(ctx context.Context, id string) (*models.Video, error) {
	row := s.db.QueryRowContext(ctx, videoSelect+` WHERE v.id = $1`, id)
	v, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("find video", err)
	}
	return v, nil
}

// Create derives the youtube_id, inserts the row, and returns it with
// the category name resolved.
func (s *videoStore) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	if err := store.PrepareVideo(v); err != nil {
		return nil, err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO videos (`+videoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, v.ID, v.CategoryID, v.Title, v.Description, v.YouTubeURL, v.YouTubeID,
		v.CustomThumbnailURL, v.Duration, v.DisplayOrder, v.IsFeatured, v.IsHomeFeatured,
		v.HomeDisplaySection, v.ViewCount, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("create video", err)
	}
	return s.Find(ctx, v.ID)
}

// Update merges a partial update in a read-modify-write transaction.
func (s *videoStore) Update(ctx context.Context, id string, patch store.VideoPatch) (*models.Video, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("update video", err)
	}
	defer rollback(tx)

	row := tx.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1 FOR UPDATE`, id)
	v, err := scanVideoRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("update video", err)
	}

	if err := store.ApplyVideoPatch(v, patch); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE videos SET
			category_id = $1, title = $2, description = $3, youtube_url = $4,
			youtube_id = $5, custom_thumbnail_url = $6, duration = $7,
			display_order = $8, is_featured = $9, is_home_featured = $10,
			home_display_section = $11, view_count = $12, updated_at = $13
		WHERE id = $14
	`, v.CategoryID, v.Title, v.Description, v.YouTubeURL,
		v.YouTubeID, v.CustomThumbnailURL, v.Duration,
		v.DisplayOrder, v.IsFeatured, v.IsHomeFeatured,
		v.HomeDisplaySection, v.ViewCount, v.UpdatedAt, v.ID)
	if err != nil {
		return nil, wrapErr("update video", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, wrapErr("update video", err)
	}
	return s.Find(ctx, id)
}

// Delete removes a video by id.
func (s *videoStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete video", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("delete video", err)
	}
	return n > 0, nil
}
