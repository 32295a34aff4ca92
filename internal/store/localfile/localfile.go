// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package localfile implements the content repository on a durable local
// key-value file: four flat collections serialized under fixed keys in a
// single JSON document, seeded with defaults on first use. Suited to
// local development and demos — durable across restarts, scoped to one
// machine.
package localfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"photofolio/internal/fixtures"
	"photofolio/internal/models"
	"photofolio/internal/store"
)

// fileName is the on-disk document holding all buckets.
const fileName = "photofolio.json"

// payload is the serialized document. Bucket keys mirror the storage
// layout of the original client-side store.
type payload struct {
	Categories    []models.Category  `json:"photography_categories"`
	Photos        []models.Photo     `json:"photography_photos"`
	Videos        []models.Video     `json:"photography_videos"`
	Contact       models.ContactInfo `json:"photography_contact"`
	AdminPassword string             `json:"admin_password,omitempty"`
}

// Store keeps the working copy in memory and rewrites the file after
// every mutation. Writes go through a temp file and rename so a crash
// never leaves a half-written document.
type Store struct {
	mu   sync.RWMutex
	path string
	data payload
}

// Open loads the store from dir, seeding it with fixture data when the
// file does not exist yet.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfile mkdir: %w", err)
	}
	s := &Store{path: filepath.Join(dir, fileName)}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = payload{
			Categories: fixtures.Categories(),
			Photos:     fixtures.Photos(),
			Videos:     fixtures.Videos(),
			Contact:    fixtures.Contact(),
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localfile read: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("localfile decode %s: %w", s.path, err)
	}
	if s.data.Contact.ID == "" {
		s.data.Contact = fixtures.Contact()
	}
	return s, nil
}

// persist writes the document atomically. Callers hold the write lock.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localfile encode: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localfile write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localfile rename: %w", err)
	}
	return nil
}

// AdminSecret returns the locally managed admin password, if one was
// stored in the file.
func (s *Store) AdminSecret() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AdminPassword, s.data.AdminPassword != ""
}

// SetAdminSecret stores the admin password in the local file.
func (s *Store) SetAdminSecret(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AdminPassword = secret
	return s.persist()
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
	out := make([]models.Category, len(s.data.Categories))
	copy(out, s.data.Categories)
	store.AnnotateCategories(out, s.data.Photos, s.data.Videos)
	store.SortCategories(out)
	return out, nil
}

func (s *categoryStore) Find(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Categories {
		if s.data.Categories[i].ID == id {
			tmp := []models.Category{s.data.Categories[i]}
			store.AnnotateCategories(tmp, s.data.Photos, s.data.Videos)
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
	s.data.Categories = append(s.data.Categories, *c)
	if err := (*Store)(s).persist(); err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

func (s *categoryStore) Update(ctx context.Context, id string, p store.CategoryPatch) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Categories {
		if s.data.Categories[i].ID == id {
			merged := s.data.Categories[i]
			if err := store.ApplyCategoryPatch(&merged, p); err != nil {
				return nil, err
			}
			s.data.Categories[i] = merged
			if err := (*Store)(s).persist(); err != nil {
				return nil, err
			}
			out := merged
			return &out, nil
		}
	}
	return nil, nil
}

func (s *categoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Categories {
		if s.data.Categories[i].ID == id {
			s.data.Categories = append(s.data.Categories[:i], s.data.Categories[i+1:]...)
			if err := (*Store)(s).persist(); err != nil {
				return false, err
			}
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
	for i := range s.data.Photos {
		if categoryID != "" {
			if s.data.Photos[i].CategoryID == nil || *s.data.Photos[i].CategoryID != categoryID {
				continue
			}
		}
		out = append(out, s.data.Photos[i])
	}
	store.AnnotatePhotos(out, s.data.Categories)
	store.SortPhotos(out)
	return out, nil
}

func (s *photoStore) Find(ctx context.Context, id string) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Photos {
		if s.data.Photos[i].ID == id {
			p := s.data.Photos[i]
			p.CategoryName = store.CategoryNameFor(s.data.Categories, p.CategoryID)
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
	s.data.Photos = append(s.data.Photos, *p)
	if err := (*Store)(s).persist(); err != nil {
		return nil, err
	}
	out := *p
	out.CategoryName = store.CategoryNameFor(s.data.Categories, out.CategoryID)
	return &out, nil
}

func (s *photoStore) Update(ctx context.Context, id string, patch store.PhotoPatch) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Photos {
		if s.data.Photos[i].ID == id {
			merged := s.data.Photos[i]
			if err := store.ApplyPhotoPatch(&merged, patch); err != nil {
				return nil, err
			}
			s.data.Photos[i] = merged
			if err := (*Store)(s).persist(); err != nil {
				return nil, err
			}
			out := merged
			out.CategoryName = store.CategoryNameFor(s.data.Categories, out.CategoryID)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *photoStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Photos {
		if s.data.Photos[i].ID == id {
			s.data.Photos = append(s.data.Photos[:i], s.data.Photos[i+1:]...)
			if err := (*Store)(s).persist(); err != nil {
				return false, err
			}
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
	for i := range s.data.Videos {
		if categoryID != "" {
			if s.data.Videos[i].CategoryID == nil || *s.data.Videos[i].CategoryID != categoryID {
				continue
			}
		}
		out = append(out, s.data.Videos[i])
	}
	store.AnnotateVideos(out, s.data.Categories)
	store.SortVideos(out)
	return out, nil
}

func (s *videoStore) Find(ctx context.Context, id string) (*models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.data.Videos {
		if s.data.Videos[i].ID == id {
			v := s.data.Videos[i]
			v.CategoryName = store.CategoryNameFor(s.data.Categories, v.CategoryID)
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
	s.data.Videos = append(s.data.Videos, *v)
	if err := (*Store)(s).persist(); err != nil {
		return nil, err
	}
	out := *v
	out.CategoryName = store.CategoryNameFor(s.data.Categories, out.CategoryID)
	return &out, nil
}

func (s *videoStore) Update(ctx context.Context, id string, patch store.VideoPatch) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Videos {
		if s.data.Videos[i].ID == id {
			merged := s.data.Videos[i]
			if err := store.ApplyVideoPatch(&merged, patch); err != nil {
				return nil, err
			}
			s.data.Videos[i] = merged
			if err := (*Store)(s).persist(); err != nil {
				return nil, err
			}
			out := merged
			out.CategoryName = store.CategoryNameFor(s.data.Categories, out.CategoryID)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *videoStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Videos {
		if s.data.Videos[i].ID == id {
			s.data.Videos = append(s.data.Videos[:i], s.data.Videos[i+1:]...)
			if err := (*Store)(s).persist(); err != nil {
				return false, err
			}
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
	c := s.data.Contact
	return &c, nil
}

func (s *contactStore) Update(ctx context.Context, p store.ContactPatch) (*models.ContactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store.ApplyContactPatch(&s.data.Contact, p)
	if err := (*Store)(s).persist(); err != nil {
		return nil, err
	}
	c := s.data.Contact
	return &c, nil
}
