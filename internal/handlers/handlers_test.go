// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go exercises the JSON API end to end over the memory
// backend: routing, auth middleware, error mapping, and handler logic.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photofolio/internal/auth"
	"photofolio/internal/handlers"
	"photofolio/internal/models"
	"photofolio/internal/router"
	"photofolio/internal/store"
	"photofolio/internal/store/memory"
)

const testAdminPassword = "test-secret"

// newTestServer wires the API over a seeded memory backend and returns
// the handler plus the raw repository for direct state assertions.
func newTestServer(t *testing.T) (http.Handler, store.Repository) {
	t.Helper()
	repo := memory.New()
	verifier := auth.New(testAdminPassword, "", "")
	api := handlers.New(repo, verifier, nil)
	return router.New(api, verifier, nil), repo
}

// doJSON performs a request with an optional JSON body and admin token.
func doJSON(t *testing.T, h http.Handler, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testAdminPassword)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/health", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestListCategoriesPublic(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/categories", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	cats := decode[[]models.Category](t, rec)
	if len(cats) == 0 {
		t.Fatal("expected seeded categories")
	}
	if cats[0].PhotoCount == 0 && cats[0].VideoCount == 0 {
		t.Error("expected counts annotated on seeded categories")
	}
}

func TestGetMissingRecordIs404(t *testing.T) {
	h, _ := newTestServer(t)
	for _, path := range []string{
		"/api/categories/" + store.NewID(),
		"/api/photos/" + store.NewID(),
		"/api/videos/" + store.NewID(),
	} {
		rec := doJSON(t, h, http.MethodGet, path, nil, false)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: got %d, want 404", path, rec.Code)
		}
	}
}

func TestUnauthorizedWriteHasNoEffect(t *testing.T) {
	h, repo := newTestServer(t)

	before, err := repo.Photos().List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"title": "Sneaky",
		"url":   "https://example.com/sneaky.jpg",
	}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}

	after, err := repo.Photos().List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != len(before) {
		t.Error("rejected request still created a record")
	}
}

func TestWrongTokenRejected(t *testing.T) {
	h, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/photos/seed-p1", nil)
	req.Header.Set("Authorization", "Bearer wrong-secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestCreatePhoto(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"title":       "New Shot",
		"url":         "https://example.com/new.jpg",
		"category_id": "seed-1",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	created := decode[models.Photo](t, rec)
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.CategoryName != "Portraits" {
		t.Errorf("category_name: got %q", created.CategoryName)
	}

	// The new photo shows up in the public list.
	list := doJSON(t, h, http.MethodGet, "/api/photos/"+created.ID, nil, false)
	if list.Code != http.StatusOK {
		t.Errorf("fetch created photo: got %d", list.Code)
	}
}

func TestCreatePhotoValidation(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"url": "https://example.com/untitled.jpg",
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"title":                "Bad Section",
		"url":                  "https://example.com/b.jpg",
		"is_home_featured":     true,
		"home_display_section": "sidebar",
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/categories", map[string]any{
		"name":      "Fine Art Nudes 2026",
		"is_active": true,
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	created := decode[models.Category](t, rec)
	if created.Slug != "fine-art-nudes-2026" {
		t.Errorf("slug: got %q", created.Slug)
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/categories/seed-1", map[string]any{
		"display_order": 99,
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	updated := decode[models.Category](t, rec)
	if updated.DisplayOrder != 99 {
		t.Errorf("display_order: got %d", updated.DisplayOrder)
	}
	if updated.Name != "Portraits" {
		t.Errorf("untouched name changed: %q", updated.Name)
	}
}

func TestFlatRouteUpdateAndDelete(t *testing.T) {
	h, _ := newTestServer(t)

	// Id carried in the body on the flat PUT route.
	rec := doJSON(t, h, http.MethodPut, "/api/categories", map[string]any{
		"id":   "seed-2",
		"name": "Weddings & Elopements",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("flat PUT: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	updated := decode[models.Category](t, rec)
	if updated.Name != "Weddings & Elopements" {
		t.Errorf("name: got %q", updated.Name)
	}

	// Missing id is a 400, not a panic or 404.
	rec = doJSON(t, h, http.MethodPut, "/api/categories", map[string]any{
		"name": "Nameless",
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("flat PUT without id: got %d, want 400", rec.Code)
	}

	// Id carried as a query parameter on the flat DELETE route.
	rec = doJSON(t, h, http.MethodDelete, "/api/photos?id=seed-p3", nil, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("flat DELETE: got %d", rec.Code)
	}
	gone := doJSON(t, h, http.MethodGet, "/api/photos/seed-p3", nil, false)
	if gone.Code != http.StatusNotFound {
		t.Errorf("after flat delete: got %d, want 404", gone.Code)
	}
}

func TestCategoryFilterSpellings(t *testing.T) {
	h, _ := newTestServer(t)

	camel := doJSON(t, h, http.MethodGet, "/api/photos?categoryId=seed-1", nil, false)
	snake := doJSON(t, h, http.MethodGet, "/api/photos?category_id=seed-1", nil, false)
	if camel.Code != http.StatusOK || snake.Code != http.StatusOK {
		t.Fatalf("status: %d / %d", camel.Code, snake.Code)
	}
	a := decode[[]models.Photo](t, camel)
	b := decode[[]models.Photo](t, snake)
	if len(a) == 0 || len(a) != len(b) {
		t.Errorf("filter spellings disagree: %d vs %d", len(a), len(b))
	}
}

func TestCreateVideoDerivesID(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/videos", map[string]any{
		"title":       "BTS",
		"youtube_url": "https://youtu.be/dQw4w9WgXcQ",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	created := decode[struct {
		models.Video
		ThumbnailURL string `json:"thumbnail_url"`
	}](t, rec)
	if created.YouTubeID != "dQw4w9WgXcQ" {
		t.Errorf("youtube_id: got %q", created.YouTubeID)
	}
	if !strings.Contains(created.ThumbnailURL, "dQw4w9WgXcQ") {
		t.Errorf("thumbnail_url: got %q", created.ThumbnailURL)
	}

	bad := doJSON(t, h, http.MethodPost, "/api/videos", map[string]any{
		"title":       "Not YouTube",
		"youtube_url": "https://vimeo.com/123",
	}, true)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("non-YouTube URL: got %d, want 400", bad.Code)
	}
}

func TestDeleteVideo(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/videos/seed-v1", nil, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}

	gone := doJSON(t, h, http.MethodGet, "/api/videos/seed-v1", nil, false)
	if gone.Code != http.StatusNotFound {
		t.Errorf("after delete: got %d, want 404", gone.Code)
	}

	again := doJSON(t, h, http.MethodDelete, "/api/videos/seed-v1", nil, true)
	if again.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", again.Code)
	}
}

func TestContactRoundTrip(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/contact", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET contact: got %d", rec.Code)
	}
	contact := decode[models.ContactInfo](t, rec)
	if contact.PhotographerName == "" {
		t.Error("expected seeded contact")
	}

	upd := doJSON(t, h, http.MethodPut, "/api/contact", map[string]any{
		"phone": "+40 700 123 456",
	}, true)
	if upd.Code != http.StatusOK {
		t.Fatalf("PUT contact: got %d (body: %s)", upd.Code, upd.Body.String())
	}
	updated := decode[models.ContactInfo](t, upd)
	if updated.Phone != "+40 700 123 456" {
		t.Errorf("phone: got %q", updated.Phone)
	}
	if updated.PhotographerName != contact.PhotographerName {
		t.Error("untouched field changed")
	}
}

func TestVerifyAdmin(t *testing.T) {
	h, _ := newTestServer(t)

	ok := doJSON(t, h, http.MethodPost, "/api/admin/verify", map[string]any{
		"password": testAdminPassword,
	}, false)
	if ok.Code != http.StatusOK {
		t.Fatalf("status: got %d", ok.Code)
	}
	res := decode[map[string]bool](t, ok)
	if !res["valid"] {
		t.Error("correct password reported invalid")
	}
	if res["totp_required"] {
		t.Error("totp_required without a configured secret")
	}

	bad := doJSON(t, h, http.MethodPost, "/api/admin/verify", map[string]any{
		"password": "wrong",
	}, false)
	if bad.Code != http.StatusOK {
		t.Fatalf("status: got %d (wrong password is still a 200)", bad.Code)
	}
	res = decode[map[string]bool](t, bad)
	if res["valid"] {
		t.Error("wrong password reported valid")
	}
}

func TestClearDefaults(t *testing.T) {
	h, repo := newTestServer(t)
	ctx := context.Background()

	// An operator-created record must survive the purge.
	kept, err := repo.Photos().Create(ctx, &models.Photo{
		Title: "Keeper", URL: "https://example.com/keep.jpg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := doJSON(t, h, http.MethodDelete, "/api/admin/clear-defaults", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	res := decode[struct {
		Cleared map[string]int `json:"cleared"`
	}](t, rec)
	if res.Cleared["categories"] == 0 || res.Cleared["photos"] == 0 || res.Cleared["videos"] == 0 {
		t.Errorf("expected nonzero counts, got %v", res.Cleared)
	}

	photos, err := repo.Photos().List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 1 || photos[0].ID != kept.ID {
		t.Errorf("purge touched operator content: %d photos left", len(photos))
	}
}

func TestClearDefaultsTyped(t *testing.T) {
	h, repo := newTestServer(t)
	ctx := context.Background()

	rec := doJSON(t, h, http.MethodPost, "/api/admin/clear-defaults", map[string]any{
		"types": []string{"photos"},
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}

	photos, _ := repo.Photos().List(ctx, "")
	if len(photos) != 0 {
		t.Errorf("expected seed photos cleared, %d left", len(photos))
	}
	videos, _ := repo.Videos().List(ctx, "")
	if len(videos) == 0 {
		t.Error("videos should be untouched by a photos-only clear")
	}

	bad := doJSON(t, h, http.MethodPost, "/api/admin/clear-defaults", map[string]any{
		"types": []string{"users"},
	}, true)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("unknown type: got %d, want 400", bad.Code)
	}
}

// unavailableRepo simulates a backend that cannot be reached.
type unavailableRepo struct{}

func (unavailableRepo) Categories() store.CategoryStore { return unavailableCategories{} }
func (unavailableRepo) Photos() store.PhotoStore        { return nil }
func (unavailableRepo) Videos() store.VideoStore        { return nil }
func (unavailableRepo) Contact() store.ContactStore     { return nil }

type unavailableCategories struct{}

func (unavailableCategories) List(context.Context) ([]models.Category, error) {
	return nil, store.Unavailable("list categories", errors.New("connection refused"))
}
func (unavailableCategories) Find(context.Context, string) (*models.Category, error) {
	return nil, store.Unavailable("find category", errors.New("connection refused"))
}
func (unavailableCategories) Create(context.Context, *models.Category) (*models.Category, error) {
	return nil, store.Unavailable("create category", errors.New("connection refused"))
}
func (unavailableCategories) Update(context.Context, string, store.CategoryPatch) (*models.Category, error) {
	return nil, store.Unavailable("update category", errors.New("connection refused"))
}
func (unavailableCategories) Delete(context.Context, string) (bool, error) {
	return false, store.Unavailable("delete category", errors.New("connection refused"))
}

func TestBackendUnavailableIs503(t *testing.T) {
	verifier := auth.New(testAdminPassword, "", "")
	api := handlers.New(unavailableRepo{}, verifier, nil)
	h := router.New(api, verifier, nil)

	rec := doJSON(t, h, http.MethodGet, "/api/categories", nil, false)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rec.Code)
	}
}
