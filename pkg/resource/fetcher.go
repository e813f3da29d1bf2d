package resource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"waterlayout/pkg/images"
)

var (
	// ErrStatus wraps non-2xx HTTP responses.
	ErrStatus = errors.New("unexpected status")
	// ErrContentType is returned when a script URL serves something that
	// is not text.
	ErrContentType = errors.New("unexpected content type")
)

// Fetcher retrieves resources by URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (body []byte, contentType string, err error)
}

// DefaultFetcher reads network URLs over HTTP and everything else from
// disk. Relative references resolve against the base, which may itself be
// a URL or a directory.
type DefaultFetcher struct {
	base string
}

// NewFetcher creates a DefaultFetcher resolving relative URIs against base.
func NewFetcher(base string) *DefaultFetcher {
	return &DefaultFetcher{base: base}
}

// Resolve returns the absolute form of uri.
func (f *DefaultFetcher) Resolve(uri string) string {
	switch {
	case IsNetworkURL(uri) || images.IsDataURI(uri) || f.base == "":
		return uri
	case IsNetworkURL(f.base):
		return ResolveURL(f.base, uri)
	case filepath.IsAbs(uri):
		return uri
	}
	return filepath.Join(f.base, uri)
}

func (f *DefaultFetcher) Fetch(ctx context.Context, uri string) ([]byte, string, error) {
	resolved := f.Resolve(uri)
	if IsNetworkURL(resolved) {
		return fetchURL(ctx, resolved)
	}
	body, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", resolved, err)
	}
	return body, "", nil
}

// FetchScript returns the text of the script at uri. Served content must
// be text or JavaScript.
func (f *DefaultFetcher) FetchScript(ctx context.Context, uri string) (string, error) {
	body, contentType, err := f.Fetch(ctx, uri)
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(contentType)
	if ct != "" && !strings.HasPrefix(ct, "text/") && !strings.Contains(ct, "javascript") {
		return "", fmt.Errorf("%w for script: %s", ErrContentType, contentType)
	}
	return string(body), nil
}

// ImageFetcher adapts f to the image loader. Data URIs never reach it.
func (f *DefaultFetcher) ImageFetcher(ctx context.Context) images.ImageFetcher {
	return func(src string) ([]byte, error) {
		body, _, err := f.Fetch(ctx, src)
		return body, err
	}
}
