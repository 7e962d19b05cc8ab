// Package fetch provides the page-fetch transports used by the crawler.
// A transport is scoped to a single crawl run and must be closed when the
// run finishes, on success or failure.
package fetch

import (
	"context"
	"errors"
)

// Transport errors.
var (
	ErrEmptyDocument   = errors.New("empty page source")
	ErrBrowserNotFound = errors.New("chrome browser not found")
)

// Fetcher retrieves the rendered HTML source of a URL.
type Fetcher interface {
	// Fetch navigates to url and returns the page source. An empty source
	// is reported as an error.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases the transport's resources.
	Close() error
}
