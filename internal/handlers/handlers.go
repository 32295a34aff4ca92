// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API over the content repository.
// Every handler maps store-layer outcomes onto the HTTP error taxonomy:
// validation failures → 400, missing records → 404, unreachable
// backends → 503.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"photofolio/internal/auth"
	"photofolio/internal/storage"
	"photofolio/internal/store"
)

// maxBodySize caps request bodies. Generous because photo payloads may
// arrive as inline base64 data URIs.
const maxBodySize = 25 << 20

// API bundles the dependencies of every JSON endpoint.
type API struct {
	repo     store.Repository
	verifier *auth.Verifier
	storage  *storage.Client // nil when object storage is not configured
}

// New creates the API handler set. storageClient may be nil.
func New(repo store.Repository, verifier *auth.Verifier, storageClient *storage.Client) *API {
	return &API{
		repo:     repo,
		verifier: verifier,
		storage:  storageClient,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeNotFound is the shared 404 response for missing records.
func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "Not found")
}

// writeStoreError maps a repository error onto the HTTP taxonomy.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		slog.Error("backend unavailable", "op", op, "error", err)
		writeError(w, http.StatusServiceUnavailable, "Backend unavailable")
	default:
		slog.Error("internal error", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// categoryFilter reads the optional category filter off a list request.
// Both the camelCase and snake_case parameter spellings are accepted.
func categoryFilter(r *http.Request) string {
	if v := r.URL.Query().Get("categoryId"); v != "" {
		return v
	}
	return r.URL.Query().Get("category_id")
}

// decodeBody decodes a JSON request body into dst with a size cap.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
