// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package localfile

import (
	"context"
	"testing"

	"photofolio/internal/fixtures"
	"photofolio/internal/models"
	"photofolio/internal/store"
	"photofolio/internal/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Repository {
		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return s
	})
}

func TestSeededOnFirstOpen(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	cats, err := s.Categories().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != len(fixtures.Categories()) {
		t.Errorf("seeded categories: got %d, want %d", len(cats), len(fixtures.Categories()))
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	created, err := s.Categories().Create(ctx, &models.Category{
		Name:     "Persisted",
		Slug:     "persisted",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Photos().Delete(ctx, "seed-p1"); err != nil {
		t.Fatalf("Delete seed photo: %v", err)
	}

	// A fresh handle over the same directory sees the same state — and
	// must not re-seed over it.
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	found, err := reopened.Categories().Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found == nil {
		t.Fatal("created category lost across reopen")
	}

	photo, err := reopened.Photos().Find(ctx, "seed-p1")
	if err != nil {
		t.Fatalf("Find photo: %v", err)
	}
	if photo != nil {
		t.Error("deleted seed photo came back after reopen")
	}
}

func TestAdminSecretRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := s.AdminSecret(); ok {
		t.Fatal("fresh store should carry no admin secret")
	}
	if err := s.SetAdminSecret("hunter2"); err != nil {
		t.Fatalf("SetAdminSecret: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	secret, ok := reopened.AdminSecret()
	if !ok || secret != "hunter2" {
		t.Errorf("admin secret: got (%q, %v), want (%q, true)", secret, ok, "hunter2")
	}
}
