package cache

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemorySetGetRoundTrip(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want hit before expiry")
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get() = %q, want %q", got, "v")
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: now}
	m := NewMemoryWithClock(0, clock.Now)
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 30*time.Second)

	clock.Advance(29 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	clock.Advance(2 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("entry still readable after its TTL")
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	m := NewMemoryWithClock(0, clock.Now)
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 0)
	clock.Advance(1000 * time.Hour)

	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("zero-TTL entry should never expire")
	}
}

func TestMemorySweepRemovesExpired(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	m := NewMemoryWithClock(0, clock.Now)
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "short", []byte("a"), time.Second)
	m.Set(ctx, "long", []byte("b"), time.Hour)

	clock.Advance(2 * time.Second)
	m.removeExpired()

	if m.Len() != 1 {
		t.Errorf("Len() = %d after sweep, want 1", m.Len())
	}
	if _, ok, _ := m.Get(ctx, "long"); !ok {
		t.Error("unexpired entry was swept")
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 0)
	m.Delete(ctx, "k")

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("Get() hit after Delete()")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory(time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := MatchKey("NA1_100")
			for j := 0; j < 200; j++ {
				m.Set(ctx, key, []byte{byte(n)}, time.Millisecond)
				m.Get(ctx, key)
				m.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
