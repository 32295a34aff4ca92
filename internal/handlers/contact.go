// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"photofolio/internal/store"
)

// GetContact returns the singleton contact record. Backends fall back to
// the built-in default when nothing was ever saved, so this never 404s.
func (a *API) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := a.repo.Contact().Get(r.Context())
	if err != nil {
		writeStoreError(w, "get contact", err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// UpdateContact applies a partial update to the contact record, creating
// it from the default when absent.
func (a *API) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch store.ContactPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	updated, err := a.repo.Contact().Update(r.Context(), patch)
	if err != nil {
		writeStoreError(w, "update contact", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
