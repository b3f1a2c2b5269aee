package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/gabble/internal/game"
)

func newSession(t *testing.T, id string) *game.Session {
	t.Helper()
	dict := game.DictionaryFunc(func(string) (bool, error) { return true, nil })
	s, err := game.New("crane", dict, game.WithID(id))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}

	s := newSession(t, "abc")
	saved, err := st.Save(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID != "abc" || saved.Session != s {
		t.Errorf("Save returned %+v", saved)
	}
	got, err := st.Get(ctx, "abc")
	if err != nil || got != saved {
		t.Fatalf("Get(abc) = %v, %v", got, err)
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}

	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("second Delete error = %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}
	if _, err := st.Save(ctx, nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}

func TestMemoryStoreConcurrentTurns(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	if _, err := st.Save(ctx, newSession(t, "shared")); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := st.Get(ctx, "shared")
			if err != nil {
				t.Error(err)
				return
			}
			e.Lock()
			defer e.Unlock()
			_, _ = e.Session.TakeTurn("apple")
		}()
	}
	wg.Wait()

	e, _ := st.Get(ctx, "shared")
	if e.Session.TurnsRemaining() != 0 {
		t.Errorf("TurnsRemaining() = %d, want 0", e.Session.TurnsRemaining())
	}
	if len(e.Session.Board()) != game.MaxTurns-1 {
		t.Errorf("board rows = %d, want %d", len(e.Session.Board()), game.MaxTurns-1)
	}
}
