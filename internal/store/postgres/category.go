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

type categoryStore struct {
	db *sql.DB
}

const categoryColumns = `id, name, slug, description, display_order, is_active, created_at, updated_at`

// scanCategory scans a plain category row (no derived counts).
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by display_order, with photo and
// video counts computed by joining the media tables.
func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.slug, c.description, c.display_order, c.is_active,
		       c.created_at, c.updated_at,
		       COUNT(DISTINCT p.id) AS photo_count,
		       COUNT(DISTINCT v.id) AS video_count
		FROM categories c
		LEFT JOIN photos p ON p.category_id = c.id
		LEFT JOIN videos v ON v.category_id = c.id
		GROUP BY c.id
		ORDER BY c.display_order, c.created_at, c.id
	`)
	if err != nil {
		return nil, wrapErr("list categories", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt,
			&c.PhotoCount, &c.VideoCount,
		)
		if err != nil {
			return nil, wrapErr("scan category", err)
		}
		items = append(items, c)
	}
	return items, wrapErr("list categories", rows.Err())
}

// Find retrieves a category by id with its media counts. Returns nil if
// not found.
func (s *categoryStore) Find(ctx context.Context, id string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.name, c.slug, c.description, c.display_order, c.is_active,
		       c.created_at, c.updated_at,
		       COUNT(DISTINCT p.id) AS photo_count,
		       COUNT(DISTINCT v.id) AS video_count
		FROM categories c
		LEFT JOIN photos p ON p.category_id = c.id
		LEFT JOIN videos v ON v.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`, id)

	var c models.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
		&c.PhotoCount, &c.VideoCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("find category", err)
	}
	return &c, nil
}

// Create inserts a new category and returns it.
func (s *categoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if err := store.PrepareCategory(c); err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, name, slug, description, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+categoryColumns,
		c.ID, c.Name, c.Slug, c.Description, c.DisplayOrder, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, wrapErr("create category", err)
	}
	return result, nil
}

// Update reads the current row, merges the patch in the shared merge
// logic, and writes the result back in one transaction.
func (s *categoryStore) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("update category", err)
	}
	defer rollback(tx)

	row := tx.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1 FOR UPDATE`, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("update category", err)
	}

	if err := store.ApplyCategoryPatch(c, p); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE categories SET
			name = $1, slug = $2, description = $3, display_order = $4,
			is_active = $5, updated_at = $6
		WHERE id = $7
	`, c.Name, c.Slug, c.Description, c.DisplayOrder, c.IsActive, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, wrapErr("update category", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, wrapErr("update category", err)
	}
	return c, nil
}

// Delete removes a category. Media rows are re-parented to NULL
// (ON DELETE SET NULL) and read back as Uncategorized.
func (s *categoryStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, wrapErr("delete category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("delete category", err)
	}
	return n > 0, nil
}
