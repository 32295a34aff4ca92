// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// query.go implements the query/mutation cache: a store.Repository
// decorator that keys every read by operation name plus arguments,
// deduplicates concurrent identical reads, keeps results fresh for a
// short TTL, and invalidates affected keys after every successful
// mutation. Reads and mutations that fail with store.ErrUnavailable are
// retried a bounded number of times before the failure surfaces;
// validation failures are never retried.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

const (
	// DefaultQueryTTL is how long a read result stays fresh.
	DefaultQueryTTL = 30 * time.Second

	// maxAttempts bounds retries of backend-unavailable failures.
	maxAttempts = 3

	// retryBackoff is the base delay between attempts.
	retryBackoff = 100 * time.Millisecond
)

type entry struct {
	value   any
	expires time.Time
}

// Repo is the caching decorator. It satisfies store.Repository so it can
// be injected wherever the raw backend would be.
type Repo struct {
	inner store.Repository
	ttl   time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]entry
}

// NewRepository wraps inner with the query/mutation cache.
func NewRepository(inner store.Repository, ttl time.Duration) *Repo {
	if ttl == 0 {
		ttl = DefaultQueryTTL
	}
	return &Repo{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (r *Repo) Categories() store.CategoryStore { return &cachedCategories{r} }
func (r *Repo) Photos() store.PhotoStore        { return &cachedPhotos{r} }
func (r *Repo) Videos() store.VideoStore        { return &cachedVideos{r} }
func (r *Repo) Contact() store.ContactStore     { return &cachedContact{r} }

// Invalidate drops every cached entry whose key starts with one of the
// given entity prefixes. Exposed so bulk operations (clear-defaults) can
// flush after bypassing the usual mutation path.
func (r *Repo) Invalidate(prefixes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p+":") {
				delete(r.entries, key)
				break
			}
		}
	}
}

func (r *Repo) lookup(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (r *Repo) put(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = entry{value: value, expires: time.Now().Add(r.ttl)}
}

// retry runs fn up to maxAttempts times, backing off between attempts.
// Only backend-unavailable failures are retried.
func retry[T any](ctx context.Context, op string, fn func() (T, error)) (T, error) {
	var result T
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = fn()
		if err == nil || !errors.Is(err, store.ErrUnavailable) {
			return result, err
		}
		if attempt < maxAttempts {
			slog.Warn("backend unavailable, retrying", "op", op, "attempt", attempt)
			select {
			case <-time.After(retryBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return result, err
			}
		}
	}
	return result, err
}

// cached serves a read through the cache: fresh hit, or one deduplicated
// fetch shared by all concurrent callers of the same key.
func cached[T any](r *Repo, ctx context.Context, key string, fetch func() (T, error)) (T, error) {
	if v, ok := r.lookup(key); ok {
		return v.(T), nil
	}
	v, err, _ := r.group.Do(key, func() (any, error) {
		result, err := retry(ctx, key, fetch)
		if err != nil {
			return nil, err
		}
		r.put(key, result)
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// mutate runs a write with bounded retry and invalidates the affected
// entity prefixes on success.
func mutate[T any](r *Repo, ctx context.Context, op string, prefixes []string, fn func() (T, error)) (T, error) {
	result, err := retry(ctx, op, fn)
	if err == nil {
		r.Invalidate(prefixes...)
	}
	return result, err
}

// Category mutations also invalidate photos and videos: their virtual
// category_name embeds category state. Photo/video mutations invalidate
// categories, whose counts embed media state.

type cachedCategories struct{ r *Repo }

func (c *cachedCategories) List(ctx context.Context) ([]models.Category, error) {
	return cached(c.r, ctx, "categories:list", func() ([]models.Category, error) {
		return c.r.inner.Categories().List(ctx)
	})
}

func (c *cachedCategories) Find(ctx context.Context, id string) (*models.Category, error) {
	return cached(c.r, ctx, "categories:find:"+id, func() (*models.Category, error) {
		return c.r.inner.Categories().Find(ctx, id)
	})
}

func (c *cachedCategories) Create(ctx context.Context, cat *models.Category) (*models.Category, error) {
	return mutate(c.r, ctx, "categories:create", []string{"categories", "photos", "videos"}, func() (*models.Category, error) {
		return c.r.inner.Categories().Create(ctx, cat)
	})
}

func (c *cachedCategories) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	return mutate(c.r, ctx, "categories:update", []string{"categories", "photos", "videos"}, func() (*models.Category, error) {
		return c.r.inner.Categories().Update(ctx, id, p)
	})
}

func (c *cachedCategories) Delete(ctx context.Context, id string) (bool, error) {
	return mutate(c.r, ctx, "categories:delete", []string{"categories", "photos", "videos"}, func() (bool, error) {
		return c.r.inner.Categories().Delete(ctx, id)
	})
}

type cachedPhotos struct{ r *Repo }

func (c *cachedPhotos) List(ctx context.Context, categoryID string) ([]models.Photo, error) {
	return cached(c.r, ctx, "photos:list:"+categoryID, func() ([]models.Photo, error) {
		return c.r.inner.Photos().List(ctx, categoryID)
	})
}

func (c *cachedPhotos) Find(ctx context.Context, id string) (*models.Photo, error) {
	return cached(c.r, ctx, "photos:find:"+id, func() (*models.Photo, error) {
		return c.r.inner.Photos().Find(ctx, id)
	})
}

func (c *cachedPhotos) Create(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	return mutate(c.r, ctx, "photos:create", []string{"photos", "categories"}, func() (*models.Photo, error) {
		return c.r.inner.Photos().Create(ctx, p)
	})
}

func (c *cachedPhotos) Update(ctx context.Context, id string, patch store.PhotoPatch) (*models.Photo, error) {
	return mutate(c.r, ctx, "photos:update", []string{"photos", "categories"}, func() (*models.Photo, error) {
		return c.r.inner.Photos().Update(ctx, id, patch)
	})
}

func (c *cachedPhotos) Delete(ctx context.Context, id string) (bool, error) {
	return mutate(c.r, ctx, "photos:delete", []string{"photos", "categories"}, func() (bool, error) {
		return c.r.inner.Photos().Delete(ctx, id)
	})
}

type cachedVideos struct{ r *Repo }

func (c *cachedVideos) List(ctx context.Context, categoryID string) ([]models.Video, error) {
	return cached(c.r, ctx, "videos:list:"+categoryID, func() ([]models.Video, error) {
		return c.r.inner.Videos().List(ctx, categoryID)
	})
}

func (c *cachedVideos) Find(ctx context.Context, id string) (*models.Video, error) {
	return cached(c.r, ctx, "videos:find:"+id, func() (*models.Video, error) {
		return c.r.inner.Videos().Find(ctx, id)
	})
}

func (c *cachedVideos) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	return mutate(c.r, ctx, "videos:create", []string{"videos", "categories"}, func() (*models.Video, error) {
		return c.r.inner.Videos().Create(ctx, v)
	})
}

func (c *cachedVideos) Update(ctx context.Context, id string, patch store.VideoPatch) (*models.Video, error) {
	return mutate(c.r, ctx, "videos:update", []string{"videos", "categories"}, func() (*models.Video, error) {
		return c.r.inner.Videos().Update(ctx, id, patch)
	})
}

func (c *cachedVideos) Delete(ctx context.Context, id string) (bool, error) {
	return mutate(c.r, ctx, "videos:delete", []string{"videos", "categories"}, func() (bool, error) {
		return c.r.inner.Videos().Delete(ctx, id)
	})
}

type cachedContact struct{ r *Repo }

func (c *cachedContact) Get(ctx context.Context) (*models.ContactInfo, error) {
	return cached(c.r, ctx, "contact:get", func() (*models.ContactInfo, error) {
		return c.r.inner.Contact().Get(ctx)
	})
}

func (c *cachedContact) Update(ctx context.Context, p store.ContactPatch) (*models.ContactInfo, error) {
	return mutate(c.r, ctx, "contact:update", []string{"contact"}, func() (*models.ContactInfo, error) {
		return c.r.inner.Contact().Update(ctx, p)
	})
}
