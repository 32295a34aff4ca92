// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// document_test.go runs the backend conformance suite against a live
// Redis-protocol server. Tests are skipped if none is reachable. A
// dedicated logical database keeps test data away from development data.
package document

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"photofolio/internal/fixtures"
	"photofolio/internal/store"
	"photofolio/internal/store/storetest"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       9,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		rdb.FlushDB(context.Background())
		rdb.Close()
	})
	return rdb
}

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Repository {
		s, err := New(context.Background(), testClient(t))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return s
	})
}

func TestSeedsOnceOnly(t *testing.T) {
	rdb := testClient(t)
	ctx := context.Background()

	s, err := New(ctx, rdb)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Photos().Delete(ctx, "seed-p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// A second connection over the same database must respect the seed
	// marker rather than restoring the deleted record.
	s2, err := New(ctx, rdb)
	if err != nil {
		t.Fatalf("New (second): %v", err)
	}
	photo, err := s2.Photos().Find(ctx, "seed-p1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if photo != nil {
		t.Error("deleted seed photo came back — seeding ran twice")
	}

	cats, err := s2.Categories().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != len(fixtures.Categories()) {
		t.Errorf("seeded categories: got %d, want %d", len(cats), len(fixtures.Categories()))
	}
}
