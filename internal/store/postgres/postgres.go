// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package postgres implements the content repository on PostgreSQL.
// Derived fields are computed with joins so they are consistent with the
// other backends: category_name via LEFT JOIN with a COALESCE fallback,
// photo/video counts via grouped LEFT JOINs.
//
// Any driver error other than sql.ErrNoRows is surfaced as a
// backend-unavailable failure so callers can distinguish connectivity
// problems from absent data.
package postgres

import (
	"database/sql"
	"errors"

	"photofolio/internal/store"
)

// Store implements store.Repository on a *sql.DB pool (pgx stdlib driver).
type Store struct {
	db *sql.DB
}

// New returns a Store backed by the given connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Categories() store.CategoryStore { return &categoryStore{db: s.db} }
func (s *Store) Photos() store.PhotoStore        { return &photoStore{db: s.db} }
func (s *Store) Videos() store.VideoStore        { return &videoStore{db: s.db} }
func (s *Store) Contact() store.ContactStore     { return &contactStore{db: s.db} }

// wrapErr maps driver failures to the shared error taxonomy. ErrNoRows
// is handled at call sites; everything else means the backend could not
// serve the request.
func wrapErr(op string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return store.Unavailable(op, err)
}

// rollback is a deferred-tx helper; errors after commit are expected and
// ignored.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
