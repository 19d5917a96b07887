// package services defines interface Resolver for turning ISBNs into volumes through remote book APIs
//
// Google Books
package services

import (
	"context"

	"github.com/desertthunder/shelf/internal/models"
)

// Resolver defines a book metadata provider able to turn ISBNs into [models.Volume] values.
//
// Resolution is best effort: failures are reported as a missing result, never as an error.
type Resolver interface {
	// ResolveOne looks up a single ISBN. The returned volume carries the requested ISBN.
	ResolveOne(ctx context.Context, isbn models.ISBN) (*models.Volume, bool)

	// ResolveMany looks up every ISBN concurrently and returns the volumes that resolved.
	// Output order is not related to input order and len(out) <= len(isbns).
	ResolveMany(ctx context.Context, isbns []models.ISBN) []models.Volume

	// Name returns the name of the provider (e.g., "Google Books")
	Name() string
}
