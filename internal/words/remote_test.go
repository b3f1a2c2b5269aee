package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"word":"Aside"},{"word":"crane"},{"word":"toolong"}]`))
	}))
	defer srv.Close()

	d, err := Load(context.Background(), &RemoteSource{URL: srv.URL, Client: srv.Client()})
	if err != nil {
		t.Fatalf("Load(RemoteSource) error = %v", err)
	}
	if ok, _ := d.IsWordValid("aside"); !ok {
		t.Error("expected aside to be valid")
	}
	if !d.IsAnswer("crane") {
		t.Error("remote words should also be answers")
	}
	if a, _ := d.Stats(); a != 2 {
		t.Errorf("answers = %d, want 2", a)
	}
}

func TestRemoteSourceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad-json":
			_, _ = w.Write([]byte(`{not json`))
		default:
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	for _, path := range []string{"/down", "/bad-json"} {
		src := &RemoteSource{URL: srv.URL + path, Client: srv.Client()}
		if _, _, err := src.Load(context.Background()); err == nil {
			t.Errorf("Load(%s) expected error", path)
		}
	}
}
