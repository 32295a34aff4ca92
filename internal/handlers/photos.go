// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

// ListPhotos returns photos ordered by display_order. An optional
// ?categoryId= (or ?category_id=) query parameter narrows the result to
// one category.
func (a *API) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := a.repo.Photos().List(r.Context(), categoryFilter(r))
	if err != nil {
		writeStoreError(w, "list photos", err)
		return
	}
	if photos == nil {
		photos = []models.Photo{}
	}
	writeJSON(w, http.StatusOK, photos)
}

// GetPhoto returns a single photo by id.
func (a *API) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := a.repo.Photos().Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, "find photo", err)
		return
	}
	if photo == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, photo)
}

// CreatePhoto creates a photo. When object storage is configured and the
// submitted URL is an inline data URI, the payload is uploaded and the
// stored record points at the resulting object URL instead.
func (a *API) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var photo models.Photo
	if !decodeBody(w, r, &photo) {
		return
	}

	if a.storage != nil && photo.IsDataURI() {
		url, err := a.storage.UploadDataURI(r.Context(), photo.URL)
		if err != nil {
			slog.Error("photo upload failed", "error", err)
			writeError(w, http.StatusBadGateway, "Photo upload failed")
			return
		}
		photo.URL = url
	}

	created, err := a.repo.Photos().Create(r.Context(), &photo)
	if err != nil {
		writeStoreError(w, "create photo", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdatePhoto applies a partial update to a photo.
func (a *API) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
		store.PhotoPatch
	}
	if !decodeBody(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		id = req.ID
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}
	updated, err := a.repo.Photos().Update(r.Context(), id, req.PhotoPatch)
	if err != nil {
		writeStoreError(w, "update photo", err)
		return
	}
	if updated == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePhoto removes a photo. When the photo's file lives in our object
// storage the object is removed too, best effort.
func (a *API) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}

	var fileURL string
	if a.storage != nil {
		if photo, err := a.repo.Photos().Find(r.Context(), id); err == nil && photo != nil {
			fileURL = photo.URL
		}
	}

	deleted, err := a.repo.Photos().Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, "delete photo", err)
		return
	}
	if !deleted {
		writeNotFound(w)
		return
	}

	if a.storage != nil && fileURL != "" {
		if key, ok := a.storage.ExtractKey(fileURL); ok {
			if err := a.storage.Delete(r.Context(), key); err != nil {
				slog.Warn("photo object cleanup failed", "key", key, "error", err)
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
