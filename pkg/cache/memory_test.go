package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_SetGetDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(value) != "v" {
		t.Errorf("unexpected value %q", value)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted key must be gone")
	}
}

func TestMemory_MissingKey(t *testing.T) {
	c := NewMemory()

	value, ok, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != nil {
		t.Errorf("expected miss, got ok=%v value=%v", ok, value)
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry must be a miss")
	}
}

func TestMemory_ValueIsolation(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	original := []byte("abc")
	_ = c.Set(ctx, "k", original, 0)
	original[0] = 'x'

	value, _, _ := c.Get(ctx, "k")
	if string(value) != "abc" {
		t.Errorf("stored value must not alias the caller's slice, got %q", value)
	}

	value[0] = 'y'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned value must not alias the store, got %q", again)
	}
}

func TestMemory_Closed(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("expected ErrCacheClosed from Set, got %v", err)
	}
	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("expected ErrCacheClosed from Get, got %v", err)
	}
	if err := c.Delete(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("expected ErrCacheClosed from Delete, got %v", err)
	}
}
