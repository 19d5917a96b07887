package server

import (
	"net/http"
	"strings"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
)

// LibraryLoader loads the current library snapshot.
type LibraryLoader interface {
	Load() *models.Library
}

// LibraryHandler serves library volumes as JSON.
type LibraryHandler struct {
	loader LibraryLoader
}

// NewLibraryHandler creates a handler reading from loader on every request.
func NewLibraryHandler(loader LibraryLoader) *LibraryHandler {
	return &LibraryHandler{loader: loader}
}

// Routes implements [Handler].
func (h *LibraryHandler) Routes() []string {
	return []string{"/volumes", "/volumes/"}
}

func (h *LibraryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	library := h.loader.Load()

	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/volumes"), "/")
	if raw == "" {
		writeJSON(w, http.StatusOK, library)
		return
	}

	isbn := models.NewISBN(raw)
	for _, v := range library.Volumes {
		if v.ISBN == isbn {
			writeJSON(w, http.StatusOK, v)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "volume not found", "isbn": isbn.String()})
}

// Health reports that the server is up.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewLibraryRouter wires the library API with the given middleware.
func NewLibraryRouter(loader LibraryLoader, middleware ...Middleware) *ReadRouter {
	router := NewReadRouter(middleware...)
	router.Get("/health", http.HandlerFunc(Health))
	router.Mount(NewLibraryHandler(loader))
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := shared.MarshalJSON(v, true)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}
