package snipe

import (
	"fmt"
	"testing"
	"time"
)

func TestGetDoesNotEvict(t *testing.T) {
	cache := NewCache(10)
	record := Record{Content: "hello", AuthorTag: "kai#0001", DeletedAt: time.Now()}
	cache.Store("c1", record)

	first, ok := cache.Get("c1")
	if !ok {
		t.Fatal("expected record")
	}
	second, ok := cache.Get("c1")
	if !ok {
		t.Fatal("expected record on second read")
	}
	if first != second {
		t.Fatalf("expected identical snapshots, got %+v vs %+v", first, second)
	}
}

func TestNewestOverwrites(t *testing.T) {
	cache := NewCache(10)
	cache.Store("c1", Record{Content: "old", DeletedAt: time.Unix(100, 0)})
	cache.Store("c1", Record{Content: "new", DeletedAt: time.Unix(200, 0)})

	got, ok := cache.Get("c1")
	if !ok {
		t.Fatal("expected record")
	}
	if got.Content != "new" {
		t.Fatalf("expected new, got %q", got.Content)
	}
}

func TestEmptyDeleteIgnored(t *testing.T) {
	cache := NewCache(10)
	cache.Store("c1", Record{DeletedAt: time.Now()})

	if _, ok := cache.Get("c1"); ok {
		t.Fatal("expected no record for contentless delete")
	}

	// An attachment-only delete qualifies.
	cache.Store("c1", Record{ImageURL: "https://cdn/img.png", DeletedAt: time.Now()})
	if _, ok := cache.Get("c1"); !ok {
		t.Fatal("expected record for attachment-only delete")
	}
}

func TestChannelCapEvictsOldest(t *testing.T) {
	cache := NewCache(3)
	for i := 0; i < 3; i++ {
		cache.Store(fmt.Sprintf("c%d", i), Record{Content: "x", DeletedAt: time.Unix(int64(i), 0)})
	}
	cache.Store("c9", Record{Content: "x", DeletedAt: time.Unix(100, 0)})

	if cache.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", cache.Len())
	}
	if _, ok := cache.Get("c0"); ok {
		t.Fatal("expected oldest channel evicted")
	}
	if _, ok := cache.Get("c9"); !ok {
		t.Fatal("expected newest channel retained")
	}

	// Overwriting an existing channel must not evict anything.
	cache.Store("c1", Record{Content: "y", DeletedAt: time.Unix(200, 0)})
	if cache.Len() != 3 {
		t.Fatalf("expected 3 records after overwrite, got %d", cache.Len())
	}
}
