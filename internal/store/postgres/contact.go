// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"photofolio/internal/fixtures"
	"photofolio/internal/models"
	"photofolio/internal/store"
)

type contactStore struct {
	db *sql.DB
}

const contactColumns = `id, photographer_name, phone, location, email,
	instagram_url, facebook_url, whatsapp_url, updated_at`

func scanContact(scanner interface{ Scan(...any) error }) (*models.ContactInfo, error) {
	var c models.ContactInfo
	err := scanner.Scan(
		&c.ID, &c.PhotographerName, &c.Phone, &c.Location, &c.Email,
		&c.InstagramURL, &c.FacebookURL, &c.WhatsappURL, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the singleton contact record, falling back to the built-in
// default when the table is empty. Never reports not-found.
func (s *contactStore) Get(ctx context.Context) (*models.ContactInfo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_info LIMIT 1`)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		def := fixtures.Contact()
		return &def, nil
	}
	if err != nil {
		return nil, wrapErr("get contact", err)
	}
	return c, nil
}

// Update merges the patch into the stored record, creating it from the
// default if absent.
func (s *contactStore) Update(ctx context.Context, p store.ContactPatch) (*models.ContactInfo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("update contact", err)
	}
	defer rollback(tx)

	row := tx.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_info LIMIT 1 FOR UPDATE`)
	c, err := scanContact(row)
	insert := false
	if errors.Is(err, sql.ErrNoRows) {
		def := fixtures.Contact()
		def.ID = store.NewID()
		c = &def
		insert = true
	} else if err != nil {
		return nil, wrapErr("update contact", err)
	}

	store.ApplyContactPatch(c, p)

	if insert {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO contact_info (`+contactColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, c.ID, c.PhotographerName, c.Phone, c.Location, c.Email,
			c.InstagramURL, c.FacebookURL, c.WhatsappURL, c.UpdatedAt)
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE contact_info SET
				photographer_name = $1, phone = $2, location = $3, email = $4,
				instagram_url = $5, facebook_url = $6, whatsapp_url = $7, updated_at = $8
			WHERE id = $9
		`, c.PhotographerName, c.Phone, c.Location, c.Email,
			c.InstagramURL, c.FacebookURL, c.WhatsappURL, c.UpdatedAt, c.ID)
	}
	if err != nil {
		return nil, wrapErr("update contact", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, wrapErr("update contact", err)
	}
	return c, nil
}
