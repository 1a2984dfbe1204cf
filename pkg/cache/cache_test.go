package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss with nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "scene:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "scene:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if string(data) != "payload" {
		t.Errorf("got %q, want %q", data, "payload")
	}

	if err := c.Delete(ctx, "scene:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "scene:abc"); hit {
		t.Error("entry should be gone after Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fc := c.(*FileCache)
	_ = fc.Set(ctx, "a", []byte("1"), 0)
	_ = fc.Set(ctx, "b", []byte("2"), 0)

	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("Clear should remove every entry")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("andromeda"))
	h2 := Hash([]byte("andromeda"))
	if h1 != h2 {
		t.Error("Hash must be deterministic")
	}
	if h1 == Hash([]byte("triangulum")) {
		t.Error("different inputs should hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64 hex chars, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	tk1 := k.TreeKey(TreeKeyOpts{Source: "a.json"})
	tk2 := k.TreeKey(TreeKeyOpts{Source: "b.json"})
	if tk1 == tk2 {
		t.Error("different sources should produce different tree keys")
	}

	sk1 := k.SceneKey("h1", SceneKeyOpts{GalaxySpacing: 50})
	sk2 := k.SceneKey("h1", SceneKeyOpts{GalaxySpacing: 60})
	if sk1 == sk2 {
		t.Error("different scene options should produce different keys")
	}
	if sk1 != k.SceneKey("h1", SceneKeyOpts{GalaxySpacing: 50}) {
		t.Error("scene keys must be stable")
	}

	ak1 := k.ArtifactKey("h1", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("h1", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("different formats should produce different artifact keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "tenant-a:")
	key := scoped.SceneKey("h", SceneKeyOpts{})
	if key[:9] != "tenant-a:" {
		t.Errorf("scoped key missing prefix: %s", key)
	}
}

func TestRetryWithBackoffNonRetryable(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("want boom, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable errors must not retry, got %d calls", calls)
	}
}

func TestRetryWithBackoffEventualSuccess(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		if calls < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Errorf("want success after retry, got %v", err)
	}
	if calls != 2 {
		t.Errorf("want 2 calls, got %d", calls)
	}
}
