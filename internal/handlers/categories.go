// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"photofolio/internal/models"
	"photofolio/internal/slug"
	"photofolio/internal/store"
)

// ListCategories returns all categories ordered by display_order, each
// annotated with its photo and video counts.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.repo.Categories().List(r.Context())
	if err != nil {
		writeStoreError(w, "list categories", err)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// GetCategory returns a single category by id.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := a.repo.Categories().Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, "find category", err)
		return
	}
	if cat == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// CreateCategory creates a category. When no slug is submitted one is
// generated from the name.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cat models.Category
	if !decodeBody(w, r, &cat) {
		return
	}
	if cat.Slug == "" {
		cat.Slug = slug.Generate(cat.Name)
	}
	created, err := a.repo.Categories().Create(r.Context(), &cat)
	if err != nil {
		writeStoreError(w, "create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategory applies a partial update to a category. Fields absent
// from the body are left untouched. The id comes from the URL or, on the
// flat route, from the body.
func (a *API) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
		store.CategoryPatch
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
	updated, err := a.repo.Categories().Update(r.Context(), id, req.CategoryPatch)
	if err != nil {
		writeStoreError(w, "update category", err)
		return
	}
	if updated == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCategory removes a category. Its photos and videos survive and
// read back as uncategorized. The id comes from the URL or, on the flat
// route, from the ?id= query parameter.
func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}
	deleted, err := a.repo.Categories().Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, "delete category", err)
		return
	}
	if !deleted {
		writeNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
