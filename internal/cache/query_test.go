// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"photofolio/internal/models"
	"photofolio/internal/store"
	"photofolio/internal/store/memory"
)

// countingRepo wraps the memory backend and counts reads reaching it, so
// tests can tell cache hits from misses. failures, when positive, makes
// the next reads fail as backend-unavailable.
type countingRepo struct {
	inner    store.Repository
	reads    atomic.Int64
	failures atomic.Int64
}

func (c *countingRepo) Categories() store.CategoryStore { return &countingCategories{c} }
func (c *countingRepo) Photos() store.PhotoStore        { return c.inner.Photos() }
func (c *countingRepo) Videos() store.VideoStore        { return c.inner.Videos() }
func (c *countingRepo) Contact() store.ContactStore     { return c.inner.Contact() }

type countingCategories struct{ c *countingRepo }

func (s *countingCategories) List(ctx context.Context) ([]models.Category, error) {
	s.c.reads.Add(1)
	if s.c.failures.Load() > 0 {
		s.c.failures.Add(-1)
		return nil, store.Unavailable("list categories", errors.New("connection refused"))
	}
	return s.c.inner.Categories().List(ctx)
}

func (s *countingCategories) Find(ctx context.Context, id string) (*models.Category, error) {
	s.c.reads.Add(1)
	return s.c.inner.Categories().Find(ctx, id)
}

func (s *countingCategories) Create(ctx context.Context, cat *models.Category) (*models.Category, error) {
	if s.c.failures.Load() > 0 {
		s.c.failures.Add(-1)
		return nil, store.Unavailable("create category", errors.New("connection refused"))
	}
	return s.c.inner.Categories().Create(ctx, cat)
}

func (s *countingCategories) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	return s.c.inner.Categories().Update(ctx, id, p)
}

func (s *countingCategories) Delete(ctx context.Context, id string) (bool, error) {
	return s.c.inner.Categories().Delete(ctx, id)
}

func TestRepeatedReadHitsCache(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Categories().List(ctx); err != nil {
			t.Fatalf("List: %v", err)
		}
	}
	if got := counting.reads.Load(); got != 1 {
		t.Errorf("backend reads: got %d, want 1", got)
	}
}

func TestDistinctKeysAreDistinctEntries(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)
	ctx := context.Background()

	repo.Categories().List(ctx)
	repo.Categories().Find(ctx, "seed-1")
	repo.Categories().Find(ctx, "seed-2")
	repo.Categories().Find(ctx, "seed-1")

	if got := counting.reads.Load(); got != 3 {
		t.Errorf("backend reads: got %d, want 3 (list + two distinct finds)", got)
	}
}

func TestTTLExpiry(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, 10*time.Millisecond)
	ctx := context.Background()

	repo.Categories().List(ctx)
	time.Sleep(25 * time.Millisecond)
	repo.Categories().List(ctx)

	if got := counting.reads.Load(); got != 2 {
		t.Errorf("backend reads: got %d, want 2 (entry must expire)", got)
	}
}

func TestConcurrentReadsDeduplicated(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			repo.Categories().List(context.Background())
		}()
	}
	close(start)
	wg.Wait()

	// singleflight guarantees one in-flight fetch per key; allow a bit of
	// slack for goroutines arriving after the first flight completed.
	if got := counting.reads.Load(); got > 3 {
		t.Errorf("backend reads: got %d, want deduplicated (<=3)", got)
	}
}

func TestMutationInvalidatesReads(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)
	ctx := context.Background()

	before, err := repo.Categories().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	created, err := repo.Categories().Create(ctx, &models.Category{
		Name: "Fresh", Slug: "fresh", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	after, err := repo.Categories().List(ctx)
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("list after create: got %d entries, want %d (stale cache?)", len(after), len(before)+1)
	}
	found := false
	for _, c := range after {
		if c.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("created category missing from re-read list")
	}
}

func TestCrossEntityInvalidation(t *testing.T) {
	repo := NewRepository(memory.New(), time.Minute)
	ctx := context.Background()

	photos, err := repo.Photos().List(ctx, "")
	if err != nil || len(photos) == 0 {
		t.Fatalf("List photos: %v (%d)", err, len(photos))
	}
	target := photos[0]
	oldName := target.CategoryName

	// Renaming the category must be visible through the cached photo list:
	// category mutations invalidate photo entries too.
	if target.CategoryID == nil {
		t.Fatal("seed photo expected to carry a category")
	}
	newName := oldName + " Renamed"
	if _, err := repo.Categories().Update(ctx, *target.CategoryID, store.CategoryPatch{Name: &newName}); err != nil {
		t.Fatalf("Update category: %v", err)
	}

	photos, err = repo.Photos().List(ctx, "")
	if err != nil {
		t.Fatalf("List photos after rename: %v", err)
	}
	for _, p := range photos {
		if p.ID == target.ID && p.CategoryName != newName {
			t.Errorf("photo category_name: got %q, want %q", p.CategoryName, newName)
		}
	}
}

func TestRetryOnUnavailable(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)
	ctx := context.Background()

	// Two transient failures, then success: caller sees no error.
	counting.failures.Store(2)
	if _, err := repo.Categories().List(ctx); err != nil {
		t.Fatalf("List should succeed after retries: %v", err)
	}
	if got := counting.reads.Load(); got != 3 {
		t.Errorf("backend reads: got %d, want 3 (two failures + success)", got)
	}
}

func TestRetryExhaustionSurfacesError(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)

	counting.failures.Store(10)
	_, err := repo.Categories().List(context.Background())
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable after exhausted retries, got %v", err)
	}
	if got := counting.reads.Load(); got != 3 {
		t.Errorf("backend reads: got %d, want exactly %d attempts", got, 3)
	}
}

func TestValidationFailureNotRetried(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)

	// failures is zero: the only error here is a validation failure from
	// the backend itself, which must pass through on the first attempt.
	_, err := repo.Categories().Create(context.Background(), &models.Category{Slug: "nameless"})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMutationRetriesOnUnavailable(t *testing.T) {
	counting := &countingRepo{inner: memory.New()}
	repo := NewRepository(counting, time.Minute)

	counting.failures.Store(2)
	created, err := repo.Categories().Create(context.Background(), &models.Category{
		Name: "Eventually", Slug: "eventually", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create should succeed after retries: %v", err)
	}
	if created.ID == "" {
		t.Error("expected created category with id")
	}
}
