// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storetest is a conformance suite run against every content
// repository backend. The backends differ in persistence but must be
// behaviorally identical; each backend's tests call Run with a factory
// for its own repository.
//
// Tests create their own records and remove them afterwards, so the
// suite is safe against a shared seeded database. Assertions about list
// contents are relative (ordering, membership) rather than exact.
package storetest

import (
	"context"
	"errors"
	"sort"
	"testing"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

func ptr[T any](v T) *T { return &v }

// Run executes the conformance suite. open must return a ready
// repository; it is called once per subtest.
func Run(t *testing.T, open func(t *testing.T) store.Repository) {
	t.Run("CategoryLifecycle", func(t *testing.T) { testCategoryLifecycle(t, open(t)) })
	t.Run("CategoryValidation", func(t *testing.T) { testCategoryValidation(t, open(t)) })
	t.Run("CategoryOrdering", func(t *testing.T) { testCategoryOrdering(t, open(t)) })
	t.Run("CategoryCounts", func(t *testing.T) { testCategoryCounts(t, open(t)) })
	t.Run("PhotoLifecycle", func(t *testing.T) { testPhotoLifecycle(t, open(t)) })
	t.Run("PhotoHomeSection", func(t *testing.T) { testPhotoHomeSection(t, open(t)) })
	t.Run("PhotoCategoryFilter", func(t *testing.T) { testPhotoCategoryFilter(t, open(t)) })
	t.Run("OrphanedMedia", func(t *testing.T) { testOrphanedMedia(t, open(t)) })
	t.Run("VideoLifecycle", func(t *testing.T) { testVideoLifecycle(t, open(t)) })
	t.Run("ContactSingleton", func(t *testing.T) { testContactSingleton(t, open(t)) })
	t.Run("FindMissing", func(t *testing.T) { testFindMissing(t, open(t)) })
}

// mustCategory creates a category and registers cleanup.
func mustCategory(t *testing.T, repo store.Repository, c models.Category) *models.Category {
	t.Helper()
	created, err := repo.Categories().Create(context.Background(), &c)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	t.Cleanup(func() { repo.Categories().Delete(context.Background(), created.ID) })
	return created
}

// mustPhoto creates a photo and registers cleanup.
func mustPhoto(t *testing.T, repo store.Repository, p models.Photo) *models.Photo {
	t.Helper()
	created, err := repo.Photos().Create(context.Background(), &p)
	if err != nil {
		t.Fatalf("create photo: %v", err)
	}
	t.Cleanup(func() { repo.Photos().Delete(context.Background(), created.ID) })
	return created
}

// mustVideo creates a video and registers cleanup.
func mustVideo(t *testing.T, repo store.Repository, v models.Video) *models.Video {
	t.Helper()
	created, err := repo.Videos().Create(context.Background(), &v)
	if err != nil {
		t.Fatalf("create video: %v", err)
	}
	t.Cleanup(func() { repo.Videos().Delete(context.Background(), created.ID) })
	return created
}

func testCategoryLifecycle(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	created := mustCategory(t, repo, models.Category{
		Name:         "Test Landscapes",
		Slug:         "test-landscapes-" + store.NewID()[:8],
		Description:  ptr("Wide open spaces"),
		DisplayOrder: 42,
		IsActive:     true,
	})

	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}

	found, err := repo.Categories().Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found == nil {
		t.Fatal("expected to find the created category")
	}
	if found.Name != "Test Landscapes" {
		t.Errorf("name: got %q, want %q", found.Name, "Test Landscapes")
	}
	if found.Description == nil || *found.Description != "Wide open spaces" {
		t.Errorf("description not round-tripped: %v", found.Description)
	}

	// Partial update: only the name changes, description is cleared via
	// explicit empty string, everything else stays.
	updated, err := repo.Categories().Update(ctx, created.ID, store.CategoryPatch{
		Name:        ptr("Test Landscapes II"),
		Description: ptr(""),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Test Landscapes II" {
		t.Errorf("name after update: got %q", updated.Name)
	}
	if updated.Description != nil {
		t.Errorf("expected description cleared, got %v", *updated.Description)
	}
	if updated.Slug != created.Slug {
		t.Errorf("slug changed unexpectedly: %q -> %q", created.Slug, updated.Slug)
	}
	if updated.DisplayOrder != 42 {
		t.Errorf("display_order changed unexpectedly: %d", updated.DisplayOrder)
	}
	if updated.ID != created.ID {
		t.Error("id must never change through an update")
	}

	deleted, err := repo.Categories().Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	found, err = repo.Categories().Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find after delete: %v", err)
	}
	if found != nil {
		t.Error("expected category gone after delete")
	}

	// Deleting again reports false, not an error.
	deleted, err = repo.Categories().Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("re-Delete: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func testCategoryValidation(t *testing.T, repo store.Repository) {
	_, err := repo.Categories().Create(context.Background(), &models.Category{Slug: "no-name"})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing name, got %v", err)
	}
}

func testCategoryOrdering(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	mustCategory(t, repo, models.Category{Name: "Order B", Slug: "order-b-" + store.NewID()[:8], DisplayOrder: 220, IsActive: true})
	mustCategory(t, repo, models.Category{Name: "Order A", Slug: "order-a-" + store.NewID()[:8], DisplayOrder: 210, IsActive: true})

	cats, err := repo.Categories().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !sort.SliceIsSorted(cats, func(i, j int) bool {
		return cats[i].DisplayOrder < cats[j].DisplayOrder
	}) {
		t.Error("categories are not ordered by display_order")
	}
}

func testCategoryCounts(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	cat := mustCategory(t, repo, models.Category{Name: "Count Me", Slug: "count-me-" + store.NewID()[:8], IsActive: true})
	mustPhoto(t, repo, models.Photo{CategoryID: &cat.ID, Title: "Counted 1", URL: "https://example.com/c1.jpg"})
	mustPhoto(t, repo, models.Photo{CategoryID: &cat.ID, Title: "Counted 2", URL: "https://example.com/c2.jpg"})
	mustVideo(t, repo, models.Video{CategoryID: &cat.ID, Title: "Counted V", YouTubeURL: "https://youtu.be/cnt123XYZ00"})

	found, err := repo.Categories().Find(ctx, cat.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.PhotoCount != 2 {
		t.Errorf("photo_count: got %d, want 2", found.PhotoCount)
	}
	if found.VideoCount != 1 {
		t.Errorf("video_count: got %d, want 1", found.VideoCount)
	}
}

func testPhotoLifecycle(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	cat := mustCategory(t, repo, models.Category{Name: "Photo Home", Slug: "photo-home-" + store.NewID()[:8], IsActive: true})

	created := mustPhoto(t, repo, models.Photo{
		CategoryID: &cat.ID,
		Title:      "Golden Hour",
		URL:        "https://example.com/golden.jpg",
		AltText:    ptr("Golden hour over the hills"),
	})
	if created.CategoryName != "Photo Home" {
		t.Errorf("category_name: got %q, want %q", created.CategoryName, "Photo Home")
	}

	updated, err := repo.Photos().Update(ctx, created.ID, store.PhotoPatch{
		Title:      ptr("Golden Hour (edit)"),
		CategoryID: ptr(""),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Golden Hour (edit)" {
		t.Errorf("title after update: got %q", updated.Title)
	}
	if updated.CategoryID != nil {
		t.Error("expected category reference cleared")
	}
	if updated.CategoryName != models.UncategorizedLabel {
		t.Errorf("category_name after clear: got %q", updated.CategoryName)
	}
	if updated.URL != created.URL {
		t.Error("url changed unexpectedly")
	}

	// Validation failure on update leaves the record untouched.
	_, err = repo.Photos().Update(ctx, created.ID, store.PhotoPatch{Title: ptr("")})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
	found, err := repo.Photos().Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.Title != "Golden Hour (edit)" {
		t.Errorf("rejected update must not change the record, title: %q", found.Title)
	}
}

func testPhotoHomeSection(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	// Home-featured requires a section.
	_, err := repo.Photos().Create(ctx, &models.Photo{
		Title:          "Featured Missing Section",
		URL:            "https://example.com/f.jpg",
		IsHomeFeatured: true,
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing section, got %v", err)
	}

	// The section must be a known placement.
	bad := models.HomeSection("sidebar")
	_, err = repo.Photos().Create(ctx, &models.Photo{
		Title:              "Featured Bad Section",
		URL:                "https://example.com/f.jpg",
		IsHomeFeatured:     true,
		HomeDisplaySection: &bad,
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown section, got %v", err)
	}

	// A non-featured photo never carries a section, even if one was sent.
	hero := models.HomeSectionHero
	plain := mustPhoto(t, repo, models.Photo{
		Title:              "Not Featured",
		URL:                "https://example.com/p.jpg",
		HomeDisplaySection: &hero,
	})
	if plain.HomeDisplaySection != nil {
		t.Error("expected section dropped on non-featured photo")
	}

	// Un-featuring through a patch clears the section.
	featured := mustPhoto(t, repo, models.Photo{
		Title:              "Featured",
		URL:                "https://example.com/h.jpg",
		IsHomeFeatured:     true,
		HomeDisplaySection: &hero,
	})
	updated, err := repo.Photos().Update(ctx, featured.ID, store.PhotoPatch{
		IsHomeFeatured: ptr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.HomeDisplaySection != nil {
		t.Error("expected section cleared when un-featured")
	}
}

func testPhotoCategoryFilter(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	cat := mustCategory(t, repo, models.Category{Name: "Filter Cat", Slug: "filter-cat-" + store.NewID()[:8], IsActive: true})
	inside := mustPhoto(t, repo, models.Photo{CategoryID: &cat.ID, Title: "Inside", URL: "https://example.com/in.jpg"})
	mustPhoto(t, repo, models.Photo{Title: "Outside", URL: "https://example.com/out.jpg"})

	photos, err := repo.Photos().List(ctx, cat.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("filtered list: got %d photos, want 1", len(photos))
	}
	if photos[0].ID != inside.ID {
		t.Errorf("filtered list returned wrong photo: %q", photos[0].Title)
	}
}

func testOrphanedMedia(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	cat := mustCategory(t, repo, models.Category{Name: "Doomed", Slug: "doomed-" + store.NewID()[:8], IsActive: true})
	photo := mustPhoto(t, repo, models.Photo{CategoryID: &cat.ID, Title: "Survivor", URL: "https://example.com/s.jpg"})

	if _, err := repo.Categories().Delete(ctx, cat.ID); err != nil {
		t.Fatalf("Delete category: %v", err)
	}

	found, err := repo.Photos().Find(ctx, photo.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found == nil {
		t.Fatal("photo must survive its category's deletion")
	}
	if found.CategoryName != models.UncategorizedLabel {
		t.Errorf("category_name: got %q, want %q", found.CategoryName, models.UncategorizedLabel)
	}
}

func testVideoLifecycle(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	created := mustVideo(t, repo, models.Video{
		Title:      "Highlight Reel",
		YouTubeURL: "https://www.youtube.com/watch?v=abc123XYZ_-",
	})
	if created.YouTubeID != "abc123XYZ_-" {
		t.Errorf("youtube_id: got %q, want %q", created.YouTubeID, "abc123XYZ_-")
	}

	// An unrecognizable URL is rejected up front.
	_, err := repo.Videos().Create(ctx, &models.Video{
		Title:      "Not YouTube",
		YouTubeURL: "https://vimeo.com/12345",
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-YouTube URL, got %v", err)
	}

	// Changing the URL re-derives the id.
	updated, err := repo.Videos().Update(ctx, created.ID, store.VideoPatch{
		YouTubeURL: ptr("https://youtu.be/newID9876ab"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.YouTubeID != "newID9876ab" {
		t.Errorf("youtube_id after URL change: got %q", updated.YouTubeID)
	}

	// A bad replacement URL rejects the whole patch.
	_, err = repo.Videos().Update(ctx, created.ID, store.VideoPatch{
		YouTubeURL: ptr("https://example.com/clip.mp4"),
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func testContactSingleton(t *testing.T, repo store.Repository) {
	ctx := context.Background()

	contact, err := repo.Contact().Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if contact == nil {
		t.Fatal("contact Get must never return nil")
	}

	updated, err := repo.Contact().Update(ctx, store.ContactPatch{
		Phone:        ptr("+40 700 000 001"),
		InstagramURL: ptr("https://instagram.com/updated"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != "+40 700 000 001" {
		t.Errorf("phone: got %q", updated.Phone)
	}
	if updated.PhotographerName != contact.PhotographerName {
		t.Error("untouched field changed through partial update")
	}

	again, err := repo.Contact().Get(ctx)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if again.Phone != "+40 700 000 001" {
		t.Errorf("update not visible on re-read, phone: %q", again.Phone)
	}
	if again.InstagramURL == nil || *again.InstagramURL != "https://instagram.com/updated" {
		t.Errorf("instagram_url not round-tripped: %v", again.InstagramURL)
	}

	// Clearing a nullable field with an explicit empty string.
	cleared, err := repo.Contact().Update(ctx, store.ContactPatch{InstagramURL: ptr("")})
	if err != nil {
		t.Fatalf("Update (clear): %v", err)
	}
	if cleared.InstagramURL != nil {
		t.Error("expected instagram_url cleared")
	}
}

func testFindMissing(t *testing.T, repo store.Repository) {
	ctx := context.Background()
	id := store.NewID()

	if got, err := repo.Categories().Find(ctx, id); err != nil || got != nil {
		t.Errorf("missing category: got (%v, %v), want (nil, nil)", got, err)
	}
	if got, err := repo.Photos().Find(ctx, id); err != nil || got != nil {
		t.Errorf("missing photo: got (%v, %v), want (nil, nil)", got, err)
	}
	if got, err := repo.Videos().Find(ctx, id); err != nil || got != nil {
		t.Errorf("missing video: got (%v, %v), want (nil, nil)", got, err)
	}

	if updated, err := repo.Photos().Update(ctx, id, store.PhotoPatch{Title: ptr("x")}); err != nil || updated != nil {
		t.Errorf("update of missing photo: got (%v, %v), want (nil, nil)", updated, err)
	}
}
