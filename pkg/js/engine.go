// Package js builds layout view trees from JavaScript.
//
// Scripts call global builders such as VStack, HStack, Text and Spacer and
// hand the root to render(view). Every builder returns a view object that
// also carries chainable modifiers (padding, frame, priority, stretch,
// ignoreSafeArea, overlay).
package js

import (
	"errors"
	"fmt"
	"net/url"

	"waterlayout/pkg/images"
	"waterlayout/pkg/layout"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// ErrNoRoot is returned when a script finishes without rendering a view.
var ErrNoRoot = errors.New("script did not render a view")

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes console output to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithGridDefaultWidth sets the width grids use when their parent proposes
// none.
func WithGridDefaultWidth(width float64) Option {
	return func(e *Engine) { e.gridDefaultWidth = width }
}

// WithImageFetcher lets Image() load remote sources.
func WithImageFetcher(fetcher images.ImageFetcher) Option {
	return func(e *Engine) { e.fetcher = fetcher }
}

// WithBaseDir resolves relative Image() paths against dir.
func WithBaseDir(dir string) Option {
	return func(e *Engine) { e.baseDir = dir }
}

// WithBaseURL resolves relative Image() sources against the URL of a
// remote script. An unparsable base is ignored.
func WithBaseURL(base string) Option {
	return func(e *Engine) {
		if u, err := url.Parse(base); err == nil {
			e.baseURL = u
		}
	}
}

// Engine evaluates layout scripts in a goja runtime.
type Engine struct {
	vm               *goja.Runtime
	logger           *zap.Logger
	gridDefaultWidth float64
	fetcher          images.ImageFetcher
	baseDir          string
	baseURL          *url.URL
	root             layout.View
}

// New creates a new JS engine with a fresh goja runtime.
func New(opts ...Option) *Engine {
	e := &Engine{vm: goja.New(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	c := &consoleAPI{logger: e.logger}
	c.register(e.vm)
	registerBuilders(e)

	return e
}

// Execute runs script and returns the view passed to render. A script that
// evaluates to a view without calling render returns that view.
func (e *Engine) Execute(name, script string) (layout.View, error) {
	e.root = nil
	result, err := e.vm.RunScript(name, script)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	if e.root != nil {
		return e.root, nil
	}
	if v, ok := e.unwrap(result); ok {
		return v, nil
	}
	return nil, fmt.Errorf("script %s: %w", name, ErrNoRoot)
}
