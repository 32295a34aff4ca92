// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

// videoView decorates a video with its derived thumbnail URL.
type videoView struct {
	models.Video
	ThumbnailURL string `json:"thumbnail_url"`
}

func viewVideo(v models.Video) videoView {
	return videoView{Video: v, ThumbnailURL: v.ThumbnailURL()}
}

// ListVideos returns videos ordered by display_order. An optional
// ?categoryId= (or ?category_id=) query parameter narrows the result to
// one category.
func (a *API) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := a.repo.Videos().List(r.Context(), categoryFilter(r))
	if err != nil {
		writeStoreError(w, "list videos", err)
		return
	}
	views := make([]videoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, viewVideo(v))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetVideo returns a single video by id.
func (a *API) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := a.repo.Videos().Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, "find video", err)
		return
	}
	if video == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, viewVideo(*video))
}

// CreateVideo creates a video. The YouTube id is derived from the
// submitted URL; an unrecognizable URL is rejected.
func (a *API) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	if !decodeBody(w, r, &video) {
		return
	}
	created, err := a.repo.Videos().Create(r.Context(), &video)
	if err != nil {
		writeStoreError(w, "create video", err)
		return
	}
	writeJSON(w, http.StatusCreated, viewVideo(*created))
}

// UpdateVideo applies a partial update to a video. A changed youtube_url
// re-derives the youtube_id.
func (a *API) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
		store.VideoPatch
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
	updated, err := a.repo.Videos().Update(r.Context(), id, req.VideoPatch)
	if err != nil {
		writeStoreError(w, "update video", err)
		return
	}
	if updated == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, viewVideo(*updated))
}

// DeleteVideo removes a video.
func (a *API) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}
	deleted, err := a.repo.Videos().Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, "delete video", err)
		return
	}
	if !deleted {
		writeNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
