package repository

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "user:1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := store.Get(ctx, "user:1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("Get returned %q", data)
	}

	missing, err := store.Get(ctx, "user:2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing key, got %q", missing)
	}

	if err := store.Delete(ctx, "user:1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	data, _ = store.Get(ctx, "user:1")
	if data != nil {
		t.Errorf("expected key deleted, got %q", data)
	}
}

func TestMemoryStoreGetByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	keys := map[string]string{
		"notes:13800000000:1": "a",
		"notes:13800000000:2": "b",
		"notes:13900000000:1": "c",
		"user:13800000000":    "d",
	}
	for key, value := range keys {
		if err := store.Set(ctx, key, []byte(value)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	values, err := store.GetByPrefix(ctx, "notes:13800000000:")
	if err != nil {
		t.Fatalf("GetByPrefix failed: %v", err)
	}
	if len(values) != 2 {
		t.Errorf("expected 2 values, got %d", len(values))
	}
}
