package scrape

import (
	"testing"
	"time"
)

func TestPreviewCacheRoundTrip(t *testing.T) {
	cache := NewPreviewCache(10 * time.Minute)
	cards := []Card{{CardID: "SUDA-JP001", Name: "A", Rare: "UR"}}

	token := cache.Put("https://wiki.example/sets/suda", cards)
	if token == "" {
		t.Fatal("empty token")
	}

	got, url, ok := cache.Take(token)
	if !ok {
		t.Fatal("Take failed for fresh token")
	}
	if url != "https://wiki.example/sets/suda" {
		t.Errorf("url = %q", url)
	}
	if len(got) != 1 || got[0].CardID != "SUDA-JP001" {
		t.Errorf("cards = %+v", got)
	}

	// tokens are single use
	if _, _, ok := cache.Take(token); ok {
		t.Error("second Take succeeded")
	}
}

func TestPreviewCacheUnknownToken(t *testing.T) {
	cache := NewPreviewCache(time.Minute)
	if _, _, ok := cache.Take("no-such-token"); ok {
		t.Error("Take succeeded for unknown token")
	}
}

func TestPreviewCacheExpiry(t *testing.T) {
	cache := NewPreviewCache(time.Minute)
	current := time.Unix(1700000000, 0)
	cache.now = func() time.Time { return current }

	token := cache.Put("https://wiki.example/sets/suda", []Card{{CardID: "SUDA-JP001", Name: "A"}})

	current = current.Add(2 * time.Minute)
	if _, _, ok := cache.Take(token); ok {
		t.Error("Take succeeded past expiry")
	}
}

func TestPreviewCachePrunesExpired(t *testing.T) {
	cache := NewPreviewCache(time.Minute)
	current := time.Unix(1700000000, 0)
	cache.now = func() time.Time { return current }

	stale := cache.Put("https://wiki.example/old", nil)
	current = current.Add(2 * time.Minute)
	cache.Put("https://wiki.example/new", nil)

	cache.mu.Lock()
	_, staleAlive := cache.entries[stale]
	size := len(cache.entries)
	cache.mu.Unlock()
	if staleAlive {
		t.Error("expired entry not pruned on Put")
	}
	if size != 1 {
		t.Errorf("entries = %d, want 1", size)
	}
}
