// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/shelf/internal/models"
)

// MockResolver is a test double for [services.Resolver] backed by a fixed catalog.
//
// ISBNs missing from Volumes fail to resolve.
type MockResolver struct {
	Volumes map[string]models.Volume

	mu    sync.Mutex
	calls []models.ISBN
}

// NewMockResolver creates a resolver that knows the given volumes, keyed by their ISBN.
func NewMockResolver(volumes ...models.Volume) *MockResolver {
	m := &MockResolver{Volumes: map[string]models.Volume{}}
	for _, v := range volumes {
		m.Volumes[v.ISBN.String()] = v
	}
	return m
}

func (m *MockResolver) ResolveOne(ctx context.Context, isbn models.ISBN) (*models.Volume, bool) {
	m.mu.Lock()
	m.calls = append(m.calls, isbn)
	m.mu.Unlock()

	v, ok := m.Volumes[isbn.String()]
	if !ok {
		return nil, false
	}
	v.ISBN = isbn
	return &v, true
}

func (m *MockResolver) ResolveMany(ctx context.Context, isbns []models.ISBN) []models.Volume {
	out := []models.Volume{}
	for _, isbn := range isbns {
		if v, ok := m.ResolveOne(ctx, isbn); ok {
			out = append(out, *v)
		}
	}
	return out
}

func (m *MockResolver) Name() string { return "mock" }

// Calls returns every ISBN passed to ResolveOne, in call order.
func (m *MockResolver) Calls() []models.ISBN {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ISBN(nil), m.calls...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
