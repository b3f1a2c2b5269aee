package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type countingSource struct {
	calls int
	src   Source
}

func (c *countingSource) Load(ctx context.Context) ([]string, []string, error) {
	c.calls++
	return c.src.Load(ctx)
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "data", "words.db"))
	if err != nil {
		t.Fatalf("OpenCache error = %v", err)
	}
	defer cache.Close()

	answers, allowed, err := cache.Load(ctx)
	if err != nil || len(answers) != 0 || len(allowed) != 0 {
		t.Fatalf("empty cache Load = %v, %v, %v", answers, allowed, err)
	}

	if key, err := cache.SourceKey(ctx); err != nil || key != "" {
		t.Fatalf("empty cache SourceKey = %q, %v", key, err)
	}

	if err := cache.Store(ctx, "test", []string{"crane", "apple"}, []string{"slate", "crane"}); err != nil {
		t.Fatalf("Store error = %v", err)
	}
	if key, err := cache.SourceKey(ctx); err != nil || key != "test" {
		t.Errorf("SourceKey = %q, %v; want test", key, err)
	}
	answers, allowed, err = cache.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(answers, []string{"apple", "crane"}) {
		t.Errorf("answers = %v", answers)
	}
	if !reflect.DeepEqual(allowed, []string{"apple", "crane", "slate"}) {
		t.Errorf("allowed = %v", allowed)
	}
}

func TestCacheMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.db")
	for i := 0; i < 2; i++ {
		cache, err := OpenCache(path)
		if err != nil {
			t.Fatalf("OpenCache #%d error = %v", i+1, err)
		}
		_ = cache.Close()
	}
}

func TestCachedSource(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")

	inner := &countingSource{src: staticSource{answers: []string{"crane"}, allowed: []string{"slate"}}}
	for i := 0; i < 2; i++ {
		cache, err := OpenCache(path)
		if err != nil {
			t.Fatal(err)
		}
		d, err := Load(ctx, CachedSource{Cache: cache, Source: inner})
		_ = cache.Close()
		if err != nil {
			t.Fatalf("Load #%d error = %v", i+1, err)
		}
		if ok, _ := d.IsWordValid("slate"); !ok || !d.IsAnswer("crane") {
			t.Fatalf("Load #%d returned wrong dictionary", i+1)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner source called %d times, want 1", inner.calls)
	}
}

func TestCachedSourcePropagatesErrors(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	boom := errors.New("boom")
	_, _, err = CachedSource{Cache: cache, Source: staticSource{err: boom}}.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Load error = %v, want %v", err, boom)
	}
}

func TestOpenWithCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "words.db")
	first := writeLines(t, dir, "a.txt", "crane", "slate")

	d, err := Open(ctx, Options{AllowedFile: first, CacheDSN: dsn})
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	if a, g := d.Stats(); a != 2 || g != 2 {
		t.Errorf("Stats() = (%d, %d), want (2, 2)", a, g)
	}

	// Same source: served by the cache even after the file is gone.
	if err := os.Remove(first); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(ctx, Options{AllowedFile: first, CacheDSN: dsn}); err != nil {
		t.Errorf("cached Open error = %v", err)
	}
}

func TestOpenWithCacheRefillsOnSourceChange(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "words.db")
	first := writeLines(t, dir, "a.txt", "crane", "slate")
	second := writeLines(t, dir, "b.txt", "ghost", "mound", "brick")

	if _, err := Open(ctx, Options{AllowedFile: first, CacheDSN: dsn}); err != nil {
		t.Fatalf("Open(a.txt) error = %v", err)
	}
	d, err := Open(ctx, Options{AllowedFile: second, CacheDSN: dsn})
	if err != nil {
		t.Fatalf("Open(b.txt) error = %v", err)
	}
	if got := d.Answers(); !reflect.DeepEqual(got, []string{"brick", "ghost", "mound"}) && !reflect.DeepEqual(got, []string{"ghost", "mound", "brick"}) {
		t.Errorf("Answers() = %v, want the b.txt words", got)
	}
	if ok, _ := d.IsWordValid("ghost"); !ok {
		t.Error("ghost should be valid after the source changed")
	}
	if ok, _ := d.IsWordValid("crane"); ok {
		t.Error("crane from the old source is still valid")
	}
}

func TestSourceKeys(t *testing.T) {
	dir := t.TempDir()
	a := FileSource{AllowedPath: filepath.Join(dir, "a.txt")}
	b := FileSource{AllowedPath: filepath.Join(dir, "b.txt")}
	if a.SourceKey() == b.SourceKey() {
		t.Errorf("different files share key %q", a.SourceKey())
	}
	if sourceKey(EmbeddedSource{}) == sourceKey(&RemoteSource{URL: "http://x"}) {
		t.Error("embedded and remote sources share a key")
	}
	if sourceKey(staticSource{}) != "" {
		t.Error("unkeyed source should have an empty key")
	}
}
