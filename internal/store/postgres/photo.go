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

type photoStore struct {
	db *sql.DB
}

const photoColumns = `id, category_id, title, description, url, alt_text, display_order,
	is_featured, is_home_featured, home_display_section, view_count, created_at, updated_at`

// photoSelect joins the category name so every read resolves it, with
// the Uncategorized fallback for orphaned rows.
const photoSelect = `
	SELECT p.id, p.category_id, p.title, p.description, p.url, p.alt_text,
	       p.display_order, p.is_featured, p.is_home_featured, p.home_display_section,
	       p.view_count, p.created_at, p.updated_at,
	       COALESCE(c.name, 'Uncategorized') AS category_name
	FROM photos p
	LEFT JOIN categories c ON c.id = p.category_id`

// scanPhoto scans a joined photo row including category_name.
func scanPhoto(scanner interface{ Scan(...any) error }) (*models.Photo, error) {
	var p models.Photo
	err := scanner.Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Description, &p.URL, &p.AltText,
		&p.DisplayOrder, &p.IsFeatured, &p.IsHomeFeatured, &p.HomeDisplaySection,
		&p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanPhotoRow scans a bare photo row (INSERT/SELECT without the join).
func scanPhotoRow(scanner interface{ Scan(...any) error }) (*models.Photo, error) {
	var p models.Photo
	err := scanner.Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Description, &p.URL, &p.AltText,
		&p.DisplayOrder, &p.IsFeatured, &p.IsHomeFeatured, &p.HomeDisplaySection,
		&p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns photos ordered by display_order, optionally filtered by
// category.
func (s *photoStore) List(ctx context.Context, categoryID string) ([]models.Photo, error) {
	query := photoSelect
	var args []any
	if categoryID != "" {
		query += ` WHERE p.category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY p.display_order, p.created_at, p.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list photos", err)
	}
	defer rows.Close()

	var items []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, wrapErr("scan photo", err)
		}
		items = append(items, *p)
	}
	return items, wrapErr("list photos", rows.Err())
}

// Find retrieves a photo by id. Returns nil if not found.
func (s *photoStore) Find(ctx context.Context, id string) (*models.Photo, error) {
	row := s.db.QueryRowContext(ctx, photoSelect+` WHERE p.id = $1`, id)
	p, err := scanPhoto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("find photo", err)
	}
	return p, nil
}

// Create inserts a new photo and returns it with the category name
// resolved.
func (s *photoStore) Create(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	if err := store.PreparePhoto(p); err != nil {
		return nil, err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (`+photoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, p.ID, p.CategoryID, p.Title, p.Description, p.URL, p.AltText, p.DisplayOrder,
		p.IsFeatured, p.IsHomeFeatured, p.HomeDisplaySection, p.ViewCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("create photo", err)
	}
	return s.Find(ctx, p.ID)
}

// Update merges a partial update in a read-modify-write transaction.
func (s *photoStore) Update(ctx context.Context, id string, patch store.PhotoPatch) (*models.Photo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("update photo", err)
	}
	defer rollback(tx)

	row := tx.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1 FOR UPDATE`, id)
	p, err := scanPhotoRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("update photo", err)
	}

	if err := store.ApplyPhotoPatch(p, patch); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE photos SET
			category_id = $1, title = $2, description = $3, url = $4, alt_text = $5,
			display_order = $6, is_featured = $7, is_home_featured = $8,
			home_display_section = $9, view_count = $10, updated_at = $11
		WHERE id = $12
	`, p.CategoryID, p.Title, p.Description, p.URL, p.AltText,
		p.DisplayOrder, p.IsFeatured, p.IsHomeFeatured,
		p.HomeDisplaySection, p.ViewCount, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, wrapErr("update photo", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, wrapErr("update photo", err)
	}
	return s.Find(ctx, id)
}

// Delete removes a photo by id. Idempotent: returns false when the row
// was already gone.
func (s *photoStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete photo", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("delete photo", err)
	}
	return n > 0, nil
}
