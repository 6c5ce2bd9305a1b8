package python

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/depvis/pkg/deps"
	"github.com/matzehuels/depvis/pkg/integrations"
)

func newIndex(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/requests/2.31.0/json":
			w.Write([]byte(`{"info":{"name":"requests","version":"2.31.0","requires_dist":["idna<4,>=2.5","urllib3<3,>=1.21.1","PySocks!=1.5.7,>=1.5.6; extra == \"socks\""]}}`))
		case "/idna/json":
			w.Write([]byte(`{"info":{"name":"idna","version":"3.6","requires_dist":null}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server, &paths
}

func TestSource_FetchDirect(t *testing.T) {
	server, paths := newIndex(t)
	src := NewSource(Options{
		BaseURL: server.URL,
		Timeout: time.Second,
		Pins:    map[string]string{"requests": "2.31.0"},
	})

	got, err := src.FetchDirect(context.Background(), "requests")
	if err != nil {
		t.Fatalf("FetchDirect() error: %v", err)
	}
	if want := []string{"idna", "urllib3"}; !slices.Equal(got, want) {
		t.Errorf("FetchDirect() = %v, want %v", got, want)
	}

	got, err = src.FetchDirect(context.Background(), "idna")
	if err != nil {
		t.Fatalf("FetchDirect(idna) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FetchDirect(idna) = %v, want no dependencies", got)
	}

	if want := []string{"/requests/2.31.0/json", "/idna/json"}; !slices.Equal(*paths, want) {
		t.Errorf("requested paths = %v, want %v (pin applies to requests only)", *paths, want)
	}
}

func TestSource_FetchDirect_NotFound(t *testing.T) {
	server, _ := newIndex(t)
	src := NewSource(Options{BaseURL: server.URL, Timeout: time.Second})

	_, err := src.FetchDirect(context.Background(), "no-such-package")
	if err == nil {
		t.Fatal("FetchDirect() expected error for unknown package")
	}

	var se *deps.SourceError
	if !errors.As(err, &se) || se.Source != "pypi" {
		t.Errorf("error = %v, want pypi SourceError", err)
	}
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound in chain", err)
	}
}
