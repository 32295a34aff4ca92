// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package document implements the content repository on a Redis-protocol
// document database (Valkey). Each collection is a hash keyed by record
// id with JSON document values; the contact singleton is a plain key.
// All four entity types get full, symmetric coverage.
//
// There is no cross-record transaction: each create/update/delete is a
// single-document write, and concurrent updates to the same record are
// last-write-wins.
package document

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"photofolio/internal/fixtures"
	"photofolio/internal/models"
	"photofolio/internal/store"
)

const (
	keyCategories = "photofolio:categories"
	keyPhotos     = "photofolio:photos"
	keyVideos     = "photofolio:videos"
	keyContact    = "photofolio:contact"
	keySeeded     = "photofolio:seeded"
)

// Store implements store.Repository on a Redis client.
type Store struct {
	rdb *redis.Client
}

// New returns a Store backed by the given client, seeding the default
// fixture records on first use.
func New(ctx context.Context, rdb *redis.Client) (*Store, error) {
	s := &Store{rdb: rdb}
	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// seed populates the collections once per database. SetNX on the marker
// key keeps concurrent instances from double-seeding.
func (s *Store) seed(ctx context.Context) error {
	ok, err := s.rdb.SetNX(ctx, keySeeded, "1", 0).Result()
	if err != nil {
		return store.Unavailable("seed", err)
	}
	if !ok {
		return nil
	}

	pipe := s.rdb.Pipeline()
	for _, c := range fixtures.Categories() {
		raw, _ := json.Marshal(c)
		pipe.HSet(ctx, keyCategories, c.ID, raw)
	}
	for _, p := range fixtures.Photos() {
		raw, _ := json.Marshal(p)
		pipe.HSet(ctx, keyPhotos, p.ID, raw)
	}
	for _, v := range fixtures.Videos() {
		raw, _ := json.Marshal(v)
		pipe.HSet(ctx, keyVideos, v.ID, raw)
	}
	contact := fixtures.Contact()
	raw, _ := json.Marshal(contact)
	pipe.Set(ctx, keyContact, raw, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return store.Unavailable("seed", err)
	}
	return nil
}

func (s *Store) Categories() store.CategoryStore { return &categoryStore{s} }
func (s *Store) Photos() store.PhotoStore        { return &photoStore{s} }
func (s *Store) Videos() store.VideoStore        { return &videoStore{s} }
func (s *Store) Contact() store.ContactStore     { return &contactStore{s} }

// loadAll reads every document in a collection hash into out, which must
// be a pointer to a slice.
func loadAll[T any](ctx context.Context, rdb *redis.Client, key, op string) ([]T, error) {
	vals, err := rdb.HVals(ctx, key).Result()
	if err != nil {
		return nil, store.Unavailable(op, err)
	}
	out := make([]T, 0, len(vals))
	for _, raw := range vals {
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, store.Unavailable(op, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// loadOne reads a single document by id. Returns (zero, false, nil) when
// the document does not exist.
func loadOne[T any](ctx context.Context, rdb *redis.Client, key, id, op string) (T, bool, error) {
	var item T
	raw, err := rdb.HGet(ctx, key, id).Result()
	if errors.Is(err, redis.Nil) {
		return item, false, nil
	}
	if err != nil {
		return item, false, store.Unavailable(op, err)
	}
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return item, false, store.Unavailable(op, err)
	}
	return item, true, nil
}

// saveOne writes a single document.
func saveOne(ctx context.Context, rdb *redis.Client, key, id string, doc any, op string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return store.Unavailable(op, err)
	}
	if err := rdb.HSet(ctx, key, id, raw).Err(); err != nil {
		return store.Unavailable(op, err)
	}
	return nil
}

// --- categories ---

type categoryStore struct{ s *Store }

func (cs *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	cats, err := loadAll[models.Category](ctx, cs.s.rdb, keyCategories, "list categories")
	if err != nil {
		return nil, err
	}
	photos, err := loadAll[models.Photo](ctx, cs.s.rdb, keyPhotos, "list categories")
	if err != nil {
		return nil, err
	}
	videos, err := loadAll[models.Video](ctx, cs.s.rdb, keyVideos, "list categories")
	if err != nil {
		return nil, err
	}
	store.AnnotateCategories(cats, photos, videos)
	// Hash field order is arbitrary; created_at stands in for insertion
	// order before the display_order sort.
	sortCategoriesByOrder(cats)
	return cats, nil
}

func (cs *categoryStore) Find(ctx context.Context, id string) (*models.Category, error) {
	c, found, err := loadOne[models.Category](ctx, cs.s.rdb, keyCategories, id, "find category")
	if err != nil || !found {
		return nil, err
	}
	photos, err := loadAll[models.Photo](ctx, cs.s.rdb, keyPhotos, "find category")
	if err != nil {
		return nil, err
	}
	videos, err := loadAll[models.Video](ctx, cs.s.rdb, keyVideos, "find category")
	if err != nil {
		return nil, err
	}
	tmp := []models.Category{c}
	store.AnnotateCategories(tmp, photos, videos)
	return &tmp[0], nil
}

func (cs *categoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if err := store.PrepareCategory(c); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, cs.s.rdb, keyCategories, c.ID, c, "create category"); err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

func (cs *categoryStore) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	c, found, err := loadOne[models.Category](ctx, cs.s.rdb, keyCategories, id, "update category")
	if err != nil || !found {
		return nil, err
	}
	if err := store.ApplyCategoryPatch(&c, p); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, cs.s.rdb, keyCategories, id, &c, "update category"); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cs *categoryStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := cs.s.rdb.HDel(ctx, keyCategories, id).Result()
	if err != nil {
		return false, store.Unavailable("delete category", err)
	}
	return n > 0, nil
}

// --- photos ---

type photoStore struct{ s *Store }

func (ps *photoStore) List(ctx context.Context, categoryID string) ([]models.Photo, error) {
	photos, err := loadAll[models.Photo](ctx, ps.s.rdb, keyPhotos, "list photos")
	if err != nil {
		return nil, err
	}
	if categoryID != "" {
		filtered := photos[:0]
		for _, p := range photos {
			if p.CategoryID != nil && *p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}
		photos = filtered
	}
	cats, err := loadAll[models.Category](ctx, ps.s.rdb, keyCategories, "list photos")
	if err != nil {
		return nil, err
	}
	store.AnnotatePhotos(photos, cats)
	sortPhotosByOrder(photos)
	return photos, nil
}

func (ps *photoStore) Find(ctx context.Context, id string) (*models.Photo, error) {
	p, found, err := loadOne[models.Photo](ctx, ps.s.rdb, keyPhotos, id, "find photo")
	if err != nil || !found {
		return nil, err
	}
	cats, err := loadAll[models.Category](ctx, ps.s.rdb, keyCategories, "find photo")
	if err != nil {
		return nil, err
	}
	p.CategoryName = store.CategoryNameFor(cats, p.CategoryID)
	return &p, nil
}

func (ps *photoStore) Create(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	if err := store.PreparePhoto(p); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, ps.s.rdb, keyPhotos, p.ID, p, "create photo"); err != nil {
		return nil, err
	}
	return ps.Find(ctx, p.ID)
}

func (ps *photoStore) Update(ctx context.Context, id string, patch store.PhotoPatch) (*models.Photo, error) {
	p, found, err := loadOne[models.Photo](ctx, ps.s.rdb, keyPhotos, id, "update photo")
	if err != nil || !found {
		return nil, err
	}
	if err := store.ApplyPhotoPatch(&p, patch); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, ps.s.rdb, keyPhotos, id, &p, "update photo"); err != nil {
		return nil, err
	}
	return ps.Find(ctx, id)
}

func (ps *photoStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := ps.s.rdb.HDel(ctx, keyPhotos, id).Result()
	if err != nil {
		return false, store.Unavailable("delete photo", err)
	}
	return n > 0, nil
}

// --- videos ---

type videoStore struct{ s *Store }

func (vs *videoStore) List(ctx context.Context, categoryID string) ([]models.Video, error) {
	videos, err := loadAll[models.Video](ctx, vs.s.rdb, keyVideos, "list videos")
	if err != nil {
		return nil, err
	}
	if categoryID != "" {
		filtered := videos[:0]
		for _, v := range videos {
			if v.CategoryID != nil && *v.CategoryID == categoryID {
				filtered = append(filtered, v)
			}
		}
		videos = filtered
	}
	cats, err := loadAll[models.Category](ctx, vs.s.rdb, keyCategories, "list videos")
	if err != nil {
		return nil, err
	}
	store.AnnotateVideos(videos, cats)
	sortVideosByOrder(videos)
	return videos, nil
}

func (vs *videoStore) Find(ctx context.Context, id string) (*models.Video, error) {
	v, found, err := loadOne[models.Video](ctx, vs.s.rdb, keyVideos, id, "find video")
	if err != nil || !found {
		return nil, err
	}
	cats, err := loadAll[models.Category](ctx, vs.s.rdb, keyCategories, "find video")
	if err != nil {
		return nil, err
	}
	v.CategoryName = store.CategoryNameFor(cats, v.CategoryID)
	return &v, nil
}

func (vs *videoStore) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	if err := store.PrepareVideo(v); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, vs.s.rdb, keyVideos, v.ID, v, "create video"); err != nil {
		return nil, err
	}
	return vs.Find(ctx, v.ID)
}

func (vs *videoStore) Update(ctx context.Context, id string, patch store.VideoPatch) (*models.Video, error) {
	v, found, err := loadOne[models.Video](ctx, vs.s.rdb, keyVideos, id, "update video")
	if err != nil || !found {
		return nil, err
	}
	if err := store.ApplyVideoPatch(&v, patch); err != nil {
		return nil, err
	}
	if err := saveOne(ctx, vs.s.rdb, keyVideos, id, &v, "update video"); err != nil {
		return nil, err
	}
	return vs.Find(ctx, id)
}

func (vs *videoStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := vs.s.rdb.HDel(ctx, keyVideos, id).Result()
	if err != nil {
		return false, store.Unavailable("delete video", err)
	}
	return n > 0, nil
}

// --- contact ---

type contactStore struct{ s *Store }

func (cs *contactStore) Get(ctx context.Context) (*models.ContactInfo, error) {
	raw, err := cs.s.rdb.Get(ctx, keyContact).Result()
	if errors.Is(err, redis.Nil) {
		def := fixtures.Contact()
		return &def, nil
	}
	if err != nil {
		return nil, store.Unavailable("get contact", err)
	}
	var c models.ContactInfo
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, store.Unavailable("get contact", err)
	}
	return &c, nil
}

func (cs *contactStore) Update(ctx context.Context, p store.ContactPatch) (*models.ContactInfo, error) {
	c, err := cs.Get(ctx)
	if err != nil {
		return nil, err
	}
	store.ApplyContactPatch(c, p)
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, store.Unavailable("update contact", err)
	}
	if err := cs.s.rdb.Set(ctx, keyContact, raw, 0).Err(); err != nil {
		return nil, store.Unavailable("update contact", err)
	}
	return c, nil
}
