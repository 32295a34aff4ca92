// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"photofolio/internal/fixtures"
)

// verifyRequest is the login verification payload. TOTPCode is required
// only when the second factor is configured.
type verifyRequest struct {
	Password string `json:"password"`
	TOTPCode string `json:"totp_code"`
}

// VerifyAdmin checks the admin credential (and TOTP code when enabled)
// and reports validity. The response is 200 either way so callers can
// distinguish "wrong password" from transport failures.
func (a *API) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	valid := a.verifier.VerifyPassword(req.Password)
	if valid && a.verifier.TOTPEnabled() {
		valid = a.verifier.VerifyTOTP(req.TOTPCode)
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"valid":         valid,
		"totp_required": a.verifier.TOTPEnabled(),
	})
}

// TOTPSetup serves the authenticator enrollment QR code as a PNG.
// Available only when a TOTP secret is configured.
func (a *API) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	if !a.verifier.TOTPEnabled() {
		writeNotFound(w)
		return
	}
	png, err := a.verifier.ProvisioningQR("Photofolio", "admin")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "QR generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// clearableTypes are the content-type names accepted by the typed clear
// endpoint; the untyped variant clears all of them.
var clearableTypes = []string{"categories", "photos", "videos"}

// ClearDefaults removes every seeded example record across all content
// types and reports how many were removed per type. Operator-created
// records are untouched.
func (a *API) ClearDefaults(w http.ResponseWriter, r *http.Request) {
	a.clearDefaults(w, r, clearableTypes)
}

// clearTypedRequest selects which content types to clear.
type clearTypedRequest struct {
	Types []string `json:"types"`
}

// ClearDefaultsTyped removes seeded records for the requested content
// types only.
func (a *API) ClearDefaultsTyped(w http.ResponseWriter, r *http.Request) {
	var req clearTypedRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Types) == 0 {
		writeError(w, http.StatusBadRequest, "No content types requested")
		return
	}
	for _, t := range req.Types {
		switch t {
		case "categories", "photos", "videos":
		default:
			writeError(w, http.StatusBadRequest, "Unknown content type: "+t)
			return
		}
	}
	a.clearDefaults(w, r, req.Types)
}

func (a *API) clearDefaults(w http.ResponseWriter, r *http.Request, types []string) {
	ctx := r.Context()
	counts := make(map[string]int, len(types))
	for _, t := range types {
		var (
			n   int
			err error
		)
		switch t {
		case "categories":
			n, err = a.clearSeededCategories(ctx)
		case "photos":
			n, err = a.clearSeededPhotos(ctx)
		case "videos":
			n, err = a.clearSeededVideos(ctx)
		}
		if err != nil {
			writeStoreError(w, "clear defaults", err)
			return
		}
		counts[t] = n
	}
	writeJSON(w, http.StatusOK, map[string]any{"cleared": counts})
}

func (a *API) clearSeededCategories(ctx context.Context) (int, error) {
	cats, err := a.repo.Categories().List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range cats {
		if !fixtures.IsSeedID(c.ID) {
			continue
		}
		deleted, err := a.repo.Categories().Delete(ctx, c.ID)
		if err != nil {
			return n, err
		}
		if deleted {
			n++
		}
	}
	return n, nil
}

func (a *API) clearSeededPhotos(ctx context.Context) (int, error) {
	photos, err := a.repo.Photos().List(ctx, "")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range photos {
		if !fixtures.IsSeedID(p.ID) {
			continue
		}
		deleted, err := a.repo.Photos().Delete(ctx, p.ID)
		if err != nil {
			return n, err
		}
		if deleted {
			n++
		}
	}
	return n, nil
}

func (a *API) clearSeededVideos(ctx context.Context) (int, error) {
	videos, err := a.repo.Videos().List(ctx, "")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range videos {
		if !fixtures.IsSeedID(v.ID) {
			continue
		}
		deleted, err := a.repo.Videos().Delete(ctx, v.ID)
		if err != nil {
			return n, err
		}
		if deleted {
			n++
		}
	}
	return n, nil
}
