// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fixtures

import (
	"testing"

	"photofolio/internal/models"
	"photofolio/internal/store"
)

func TestSeedIDsAreRecognizable(t *testing.T) {
	for _, c := range Categories() {
		if !IsSeedID(c.ID) {
			t.Errorf("category %q lacks the seed prefix", c.ID)
		}
	}
	for _, p := range Photos() {
		if !IsSeedID(p.ID) {
			t.Errorf("photo %q lacks the seed prefix", p.ID)
		}
	}
	for _, v := range Videos() {
		if !IsSeedID(v.ID) {
			t.Errorf("video %q lacks the seed prefix", v.ID)
		}
	}
	if IsSeedID(store.NewID()) {
		t.Error("a generated id must never look like a seed id")
	}
}

func TestSeedDataIsValid(t *testing.T) {
	cats := Categories()
	for i := range cats {
		if err := store.ValidateCategory(&cats[i]); err != nil {
			t.Errorf("category %q: %v", cats[i].ID, err)
		}
	}
	photos := Photos()
	for i := range photos {
		if err := store.ValidatePhoto(&photos[i]); err != nil {
			t.Errorf("photo %q: %v", photos[i].ID, err)
		}
	}
	videos := Videos()
	for i := range videos {
		if err := store.ValidateVideo(&videos[i]); err != nil {
			t.Errorf("video %q: %v", videos[i].ID, err)
		}
	}
}

func TestSeedPhotosHonorHomeSectionRule(t *testing.T) {
	for _, p := range Photos() {
		if p.IsHomeFeatured && (p.HomeDisplaySection == nil || !models.ValidHomeSection(*p.HomeDisplaySection)) {
			t.Errorf("home-featured photo %q has no valid section", p.ID)
		}
		if !p.IsHomeFeatured && p.HomeDisplaySection != nil {
			t.Errorf("non-featured photo %q carries a section", p.ID)
		}
	}
}

func TestSeedReferencesResolve(t *testing.T) {
	catIDs := make(map[string]bool)
	for _, c := range Categories() {
		catIDs[c.ID] = true
	}
	for _, p := range Photos() {
		if p.CategoryID != nil && !catIDs[*p.CategoryID] {
			t.Errorf("photo %q references unknown category %q", p.ID, *p.CategoryID)
		}
	}
	for _, v := range Videos() {
		if v.CategoryID != nil && !catIDs[*v.CategoryID] {
			t.Errorf("video %q references unknown category %q", v.ID, *v.CategoryID)
		}
	}
}

func TestSeedVideosCarryDerivedIDs(t *testing.T) {
	for _, v := range Videos() {
		id, ok := models.ExtractYouTubeID(v.YouTubeURL)
		if !ok {
			t.Errorf("video %q has unparseable URL %q", v.ID, v.YouTubeURL)
			continue
		}
		if id != v.YouTubeID {
			t.Errorf("video %q: derived id %q != stored %q", v.ID, id, v.YouTubeID)
		}
	}
}

func TestFixturesReturnFreshCopies(t *testing.T) {
	a := Categories()
	a[0].Name = "mutated"
	b := Categories()
	if b[0].Name == "mutated" {
		t.Error("fixtures share backing storage across calls")
	}
}
