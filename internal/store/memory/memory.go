// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package memory implements the content repository on in-process
// collections seeded from fixtures. It is the fallback for stateless
// hosting without a real database: writes are lost on process restart
// and are never visible to other instances. The store is a single owned
// object injected at startup, not ambient module state.
package memory

import (
	"context"
	"sync"

	"photofolio/internal/fixtures"
	"photofolio/internal/models"
	"photofolio/internal/store"
)

// Store holds the four collections behind one lock. Operations never
// fail with connectivity errors; only validation errors are possible.
type Store struct {
	mu         sync.RWMutex
	categories []models.Category
	photos     []models.Photo
	videos     []models.Video
	contact    models.ContactInfo
}

// New returns a Store seeded with the default fixture records.
func New() *Store {
	return &Store{
		categories: fixtures.Categories(),
		photos:     fixtures.Photos(),
		videos:     fixtures.Videos(),
		contact:    fixtures.Contact(),
	}
}

// NewEmpty returns a Store with no seeded records. The contact singleton
// still resolves to the built-in default.
func NewEmpty() *Store {
	return &Store{contact: fixtures.Contact()}
}

func (s *Store) Categories() store.CategoryStore { return (*categoryStore)(s) }
func (s *Store) Photos() store.PhotoStore        { return (*photoStore)(s) }
func (s *Store) Videos() store.VideoStore        { return (*videoStore)(s) }
func (s *Store) Contact() store.ContactStore     { return (*contactStore)(s) }

// --- categories ---

type categoryStore Store

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	store.AnnotateCategories(out, s.photos, s.videos)
	store.SortCategories(out)
	return out, nil
}

func (s *categoryStore) Find(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			c := s.categories[i]
			tmp := []models.Category{c}
			store.AnnotateCategories(tmp, s.photos, s.videos)
			return &tmp[0], nil
		}
	}
	return nil, nil
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if err := store.PrepareCategory(c); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, *c)
	out := *c
	return &out, nil
}

func (s *categoryStore) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			merged := s.categories[i]
			if err := store.ApplyCategoryPatch(&merged, p); err != nil {
				return nil, err
			}
			s.categories[i] = merged
			out := merged
			return &out, nil
		}
	}
	return nil, nil
}

func (s *categoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- photos ---

type photoStore Store

func (s *photoStore) List(ctx context.Context, categoryID string) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Photo
	for i := range s.photos {
		if categoryID != "" {
			if s.photos[i].CategoryID == nil || *s.photos[i].CategoryID != categoryID {
				continue
			}
		}
		out = append(out, s.photos[i])
	}
	store.AnnotatePhotos(out, s.categories)
	store.SortPhotos(out)
	return out, nil
}

func (s *photoStore) Find(ctx context.Context, id string) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.photos {
		if s.photos[i].ID == id {
			p := s.photos[i]
			p.CategoryName = store.CategoryNameFor(s.categories, p.CategoryID)
			return &p, nil
		}
	}
	return nil, nil
}

func (s *photoStore) Create(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	if err := store.PreparePhoto(p); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos = append(s.photos, *p)
	out := *p
	out.CategoryName = store.CategoryNameFor(s.categories, out.CategoryID)
	return &out, nil
}

func (s *photoStore) Update(ctx context.Context, id string, patch store.PhotoPatch) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		if s.photos[i].ID == id {
			merged := s.photos[i]
			if err := store.ApplyPhotoPatch(&merged, patch); err != nil {
				return nil, err
			}
			s.photos[i] = merged
			out := merged
			out.CategoryName = store.CategoryNameFor(s.categories, out.CategoryID)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *photoStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- videos ---

type videoStore Store

func (s *videoStore) List(ctx context.Context, categoryID string) ([]models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Video
	for i := range s.videos {
		if categoryID != "" {
			if s.videos[i].CategoryID == nil || *s.videos[i].CategoryID != categoryID {
				continue
			}
		}
		out = append(out, s.videos[i])
	}
	store.AnnotateVideos(out, s.categories)
	store.SortVideos(out)
	return out, nil
}

func (s *videoStore) Find(ctx context.Context, id string) (*models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			v := s.videos[i]
			v.CategoryName = store.CategoryNameFor(s.categories, v.CategoryID)
			return &v, nil
		}
	}
	return nil, nil
}

func (s *videoStore) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	if err := store.PrepareVideo(v); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append(s.videos, *v)
	out := *v
	out.CategoryName = store.CategoryNameFor(s.categories, out.CategoryID)
	return &out, nil
}

func (s *videoStore) Update(ctx context.Context, id string, patch store.VideoPatch) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			merged := s.videos[i]
			if err := store.ApplyVideoPatch(&merged, patch); err != nil {
				return nil, err
			}
			s.videos[i] = merged
			out := merged
			out.CategoryName = store.CategoryNameFor(s.categories, out.CategoryID)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *videoStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == id {
			s.videos = append(s.videos[:i], s.videos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- contact ---

type contactStore Store

func (s *contactStore) Get(ctx context.Context) (*models.ContactInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.contact
	return &c, nil
}

func (s *contactStore) Update(ctx context.Context, p store.ContactPatch) (*models.ContactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store.ApplyContactPatch(&s.contact, p)
	c := s.contact
	return &c, nil
}
