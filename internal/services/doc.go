// Package services defines the [Resolver] interface for book metadata providers and implements it for Google Books.
//
// # Resolver Interface
//
// A provider turns ISBNs into [models.Volume] values. Resolution is best effort:
// a provider never returns an error for a single ISBN, it reports "no result".
//
// # Google Books Implementation
//
// [GoogleBooksService] resolves an ISBN in two sequential requests:
//   - GET {base}volumes/?projection=full&key={key}&q=isbn:{isbn} : id of the first item
//   - GET {base}volumes/{id}?key={key} : volume detail, parsed by [ParseVolume]
//
// Any non-200 status, transport error or non-object body ends resolution for that ISBN.
// The resolved volume's ISBN is overwritten with the requested one.
//
// # Bulk Resolution
//
// [GoogleBooksService.ResolveMany] fans out over a bounded [errgroup.Group] and
// shares one [rate.Limiter] across workers. Results are collected in completion order.
//
// # Transport
//
// [APIService] performs raw GET requests and decodes JSON bodies when possible.
// Status codes are reported, never turned into errors.
package services
