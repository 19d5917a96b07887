package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

type staticLoader struct {
	library *models.Library
	loads   int
}

func (s *staticLoader) Load() *models.Library {
	s.loads++
	return s.library
}

func newLoader() *staticLoader {
	lib := models.NewLibrary()
	lib.Append(
		models.Volume{ISBN: models.NewISBN("9780134190440"), Title: "The Go Programming Language", Authors: []string{"Alan Donovan"}},
		models.Volume{ISBN: models.NewISBN("1111111111"), Title: "Other", Authors: []string{}},
	)
	return &staticLoader{library: lib}
}

func TestReadRouter(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("applies middleware in order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewReadRouter(mark("first"))
		router.Use(mark("second"))
		router.Get("/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		if strings.Join(order, ",") != "first,second,handler" {
			t.Errorf("unexpected order: %v", order)
		}
	})

	t.Run("Use does not rewrap earlier routes", func(t *testing.T) {
		calls := 0
		count := func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				next.ServeHTTP(w, r)
			})
		}

		router := NewReadRouter()
		router.Get("/before", noop)
		router.Use(count)
		router.Get("/after", noop)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/before", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/after", nil))

		if calls != 1 {
			t.Errorf("expected middleware on /after only, got %d calls", calls)
		}
	})

	t.Run("filters methods before middleware", func(t *testing.T) {
		reached := 0
		router := NewReadRouter(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached++
				next.ServeHTTP(w, r)
			})
		})
		router.Get("/ping", noop)

		tests := []struct {
			method string
			want   int
		}{
			{http.MethodGet, http.StatusOK},
			{http.MethodHead, http.StatusOK},
			{http.MethodPost, http.StatusMethodNotAllowed},
			{http.MethodPut, http.StatusMethodNotAllowed},
		}
		for _, tt := range tests {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/ping", nil))
			if rec.Code != tt.want {
				t.Errorf("%s: expected %d, got %d", tt.method, tt.want, rec.Code)
			}
			if tt.want == http.StatusMethodNotAllowed && rec.Header().Get("Allow") != "GET, HEAD" {
				t.Errorf("%s: unexpected Allow header %q", tt.method, rec.Header().Get("Allow"))
			}
		}
		if reached != 2 {
			t.Errorf("expected middleware to see GET and HEAD only, got %d", reached)
		}
	})

	t.Run("mounts every handler route", func(t *testing.T) {
		router := NewReadRouter()
		router.Mount(NewLibraryHandler(newLoader()))

		for _, path := range []string{"/volumes", "/volumes/1111111111"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, rec.Code)
			}
		}
	})
}

func TestLibraryRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewLibraryRouter(newLoader()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status": "ok"`) {
			t.Errorf("unexpected response: %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("lists volumes", func(t *testing.T) {
		loader := newLoader()
		router := NewLibraryRouter(loader)

		for _, path := range []string{"/volumes", "/volumes/"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("%s: unexpected content type %q", path, ct)
			}

			var lib models.Library
			if err := json.Unmarshal(rec.Body.Bytes(), &lib); err != nil {
				t.Fatalf("%s: invalid JSON: %v", path, err)
			}
			if lib.Len() != 2 {
				t.Errorf("%s: expected 2 volumes, got %d", path, lib.Len())
			}
		}
		if loader.loads != 2 {
			t.Errorf("expected library to be loaded per request, got %d loads", loader.loads)
		}
	})

	t.Run("gets a volume by hyphenated ISBN", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewLibraryRouter(newLoader()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/volumes/978-0-13-419044-0", nil))

		var v models.Volume
		if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if rec.Code != http.StatusOK || v.Title != "The Go Programming Language" {
			t.Errorf("unexpected response: %d %+v", rec.Code, v)
		}
	})

	t.Run("unknown volume", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewLibraryRouter(newLoader()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/volumes/0000", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("rejects writes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewLibraryRouter(newLoader()).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/volumes/1111111111", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
		if rec.Header().Get("Allow") != "GET, HEAD" {
			t.Errorf("unexpected Allow header %q", rec.Header().Get("Allow"))
		}
	})

	t.Run("logs requests", func(t *testing.T) {
		var buf bytes.Buffer
		logger := shared.NewLogger(&buf)
		router := NewLibraryRouter(newLoader(), LogRequests(logger))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/volumes/0000", nil))

		out := buf.String()
		if !strings.Contains(out, "/volumes/0000") || !strings.Contains(out, "404") {
			t.Errorf("expected request log line, got %q", out)
		}
	})
}
