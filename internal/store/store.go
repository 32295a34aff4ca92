// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store defines the content repository interface implemented by
// every persistence backend (memory, localfile, postgres, document), the
// shared error taxonomy, and the merge/validation logic that keeps the
// backends behaviorally identical.
//
// Operations that reference a missing record return (nil, nil) — absence
// is not an error at this layer. Connectivity failures from remote-backed
// variants wrap ErrUnavailable so callers can tell "no data" from "could
// not reach the data".
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"photofolio/internal/models"
)

var (
	// ErrUnavailable marks transient connectivity failures to a remote
	// backend. Eligible for retry by the cache layer.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrValidation marks malformed input rejected before any
	// persistence attempt. Never retried.
	ErrValidation = errors.New("validation failed")
)

// Unavailable wraps a driver error as a backend-unavailable failure.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// Invalid builds a validation failure with a caller-facing message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// CategoryStore is the CRUD surface for categories. List results carry
// the virtual PhotoCount/VideoCount fields and are ordered by
// display_order ascending, ties in insertion order.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Find(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, id string, p CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PhotoStore is the CRUD surface for photos. categoryID filters List
// when non-empty. Results carry the virtual CategoryName field.
type PhotoStore interface {
	List(ctx context.Context, categoryID string) ([]models.Photo, error)
	Find(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, p *models.Photo) (*models.Photo, error)
	Update(ctx context.Context, id string, patch PhotoPatch) (*models.Photo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// VideoStore is the CRUD surface for videos. Creation fails with
// ErrValidation when the YouTube id cannot be extracted from the URL.
type VideoStore interface {
	List(ctx context.Context, categoryID string) ([]models.Video, error)
	Find(ctx context.Context, id string) (*models.Video, error)
	Create(ctx context.Context, v *models.Video) (*models.Video, error)
	Update(ctx context.Context, id string, patch VideoPatch) (*models.Video, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactStore manages the singleton contact record. Get never reports
// not-found — backends fall back to the built-in default.
type ContactStore interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Update(ctx context.Context, p ContactPatch) (*models.ContactInfo, error)
}

// Repository is the capability set the rest of the application programs
// against. Exactly one implementation is selected at process start;
// callers never branch on which backend is active.
type Repository interface {
	Categories() CategoryStore
	Photos() PhotoStore
	Videos() VideoStore
	Contact() ContactStore
}
