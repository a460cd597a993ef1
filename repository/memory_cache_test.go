package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Errorf("expected miss for unknown key")
	}

	if err := cache.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get(ctx, "k")
	if !ok || val != "v" {
		t.Errorf("expected hit with %q, got %q (ok=%v)", "v", val, ok)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	cache.Set(ctx, "k", "v", time.Minute)

	now = now.Add(59 * time.Second)
	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Errorf("expected hit before expiry")
	}

	now = now.Add(time.Second)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected miss at expiry")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired entry to be removed")
	}
}
