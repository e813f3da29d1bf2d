package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"
)

// ImageCache caches decoded images by source string.
type ImageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

// ImageFetcher resolves a source that is not a local path or data URI,
// such as an http URL.
type ImageFetcher func(src string) ([]byte, error)

var globalCache = &ImageCache{
	cache: make(map[string]image.Image),
}

var errNotDataURI = errors.New("not a data URI")

// IsDataURI reports whether src is a data: URI.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// LoadImageFromDataURI decodes a base64 data URI such as
// "data:image/png;base64,...".
func LoadImageFromDataURI(uri string) (image.Image, error) {
	if !IsDataURI(uri) {
		return nil, errNotDataURI
	}
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("data URI has no payload")
	}
	if !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("unsupported data URI encoding %q", header)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// LoadImage loads an image from a data URI or the filesystem.
func LoadImage(src string) (image.Image, error) {
	return LoadImageWithFetcher(src, nil)
}

// LoadImageWithFetcher is LoadImage with a fetcher for remote sources.
// When fetcher is nil every non data URI source is read from disk.
func LoadImageWithFetcher(src string, fetcher ImageFetcher) (image.Image, error) {
	globalCache.mu.RLock()
	if img, ok := globalCache.cache[src]; ok {
		globalCache.mu.RUnlock()
		return img, nil
	}
	globalCache.mu.RUnlock()

	var (
		img image.Image
		err error
	)
	switch {
	case IsDataURI(src):
		img, err = LoadImageFromDataURI(src)
	case fetcher != nil:
		img, err = decodeFetched(src, fetcher)
	default:
		img, err = decodeFile(src)
	}
	if err != nil {
		return nil, err
	}

	globalCache.mu.Lock()
	globalCache.cache[src] = img
	globalCache.mu.Unlock()

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func decodeFetched(src string, fetcher ImageFetcher) (image.Image, error) {
	data, err := fetcher(src)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src, err)
	}
	return img, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(src string) (width, height int, err error) {
	img, err := LoadImage(src)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
