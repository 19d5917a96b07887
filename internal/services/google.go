// Google Books API [Resolver] implementation
//
// Resolution is a two step protocol: a search by ISBN yields the volume id of
// the first match, then the volume detail is fetched by id.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultWorkers   int     = 5
	maxWorkers       int     = 20
	defaultRateLimit float64 = 10.0
	userAgent        string  = "shelf"
)

// GoogleBooksOpts contains configuration for [GoogleBooksService].
type GoogleBooksOpts struct {
	BaseURL    string       // API root, e.g. https://www.googleapis.com/books/v1/
	APIKey     string       // API key sent as the "key" query parameter
	HTTPClient *http.Client // Defaults to [http.DefaultClient]
	Workers    int          // Concurrent resolutions (default: 5, max: 20)
	RateLimit  float64      // Requests per second across all workers (default: 10)
	Logger     *log.Logger  // Defaults to a discarding logger
}

// GoogleBooksService implements [Resolver] against the Google Books volumes API.
//
// The service holds no per-request state and is safe for concurrent use.
type GoogleBooksService struct {
	baseURL string
	apiKey  string
	api     *APIService
	workers int
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewGoogleBooksService creates a new Google Books service. BaseURL and APIKey are expected to be validated by the caller.
func NewGoogleBooksService(opts GoogleBooksOpts) *GoogleBooksService {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Workers > maxWorkers {
		opts.Workers = maxWorkers
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &GoogleBooksService{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		api:     NewAPIService(opts.HTTPClient, userAgent),
		workers: opts.Workers,
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Workers),
		logger:  opts.Logger.With("service", "google"),
	}
}

// Name returns the service name.
func (g *GoogleBooksService) Name() string {
	return "Google Books"
}

func (g *GoogleBooksService) searchURL(isbn string) string {
	return fmt.Sprintf("%svolumes/?projection=full&key=%s&q=isbn:%s",
		g.baseURL, url.QueryEscape(g.apiKey), url.QueryEscape(isbn))
}

func (g *GoogleBooksService) volumeURL(id string) string {
	return fmt.Sprintf("%svolumes/%s?key=%s", g.baseURL, url.PathEscape(id), url.QueryEscape(g.apiKey))
}

// getObject fetches a JSON object, treating every failure as "no result".
func (g *GoogleBooksService) getObject(ctx context.Context, step, rawURL string) (map[string]any, bool) {
	if err := g.limiter.Wait(ctx); err != nil {
		g.logger.Debug("rate limiter aborted", "step", step, "error", err)
		return nil, false
	}

	resp, err := g.api.Get(ctx, rawURL)
	if err != nil {
		g.logger.Warn("request failed", "step", step, "error", err)
		return nil, false
	}

	g.logger.Debug("response", "step", step, "status", resp.StatusCode)
	if !resp.OK() {
		return nil, false
	}

	obj, ok := resp.Object()
	if !ok {
		g.logger.Warn("unexpected payload", "step", step)
		return nil, false
	}
	return obj, true
}

// SearchISBN returns the volume id of the first search result for isbn.
//
// Calls GET {base}volumes/?projection=full&key={key}&q=isbn:{isbn}.
func (g *GoogleBooksService) SearchISBN(ctx context.Context, isbn string) (string, bool) {
	data, ok := g.getObject(ctx, "search", g.searchURL(isbn))
	if !ok {
		return "", false
	}

	id, ok := firstItemID(data)
	// A first item without an id ends the lookup here instead of fetching "volumes/".
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetVolume fetches and parses the volume detail for id.
//
// Calls GET {base}volumes/{id}?key={key}.
func (g *GoogleBooksService) GetVolume(ctx context.Context, id string) (*models.Volume, bool) {
	data, ok := g.getObject(ctx, "volume", g.volumeURL(id))
	if !ok {
		return nil, false
	}
	return ParseVolume(data), true
}

// ResolveOne searches isbn then fetches its volume, back-filling the requested ISBN.
func (g *GoogleBooksService) ResolveOne(ctx context.Context, isbn models.ISBN) (*models.Volume, bool) {
	id, ok := g.SearchISBN(ctx, isbn.String())
	if !ok {
		g.logger.Debug("no search result", "isbn", isbn)
		return nil, false
	}

	volume, ok := g.GetVolume(ctx, id)
	if !ok {
		g.logger.Debug("volume not fetched", "isbn", isbn, "id", id)
		return nil, false
	}

	volume.ISBN = isbn
	return volume, true
}

// ResolveMany resolves isbns with at most Workers resolutions in flight.
//
// Failed resolutions are dropped without retry. The call returns once every
// dispatched resolution has concluded.
func (g *GoogleBooksService) ResolveMany(ctx context.Context, isbns []models.ISBN) []models.Volume {
	var (
		mu      sync.Mutex
		volumes = make([]models.Volume, 0, len(isbns))
		grp     errgroup.Group
	)
	grp.SetLimit(g.workers)

	for _, isbn := range isbns {
		grp.Go(func() error {
			volume, ok := g.ResolveOne(ctx, isbn)
			if !ok {
				return nil
			}

			mu.Lock()
			volumes = append(volumes, *volume)
			mu.Unlock()
			return nil
		})
	}

	_ = grp.Wait()
	return volumes
}
