package resource

import (
	"context"
	"fmt"
	"image"
	"io"
	"path"
	"path/filepath"

	"waterlayout/pkg/config"
	"waterlayout/pkg/js"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/render"

	"go.uber.org/zap"
)

// Renderer draws a layout script onto an image.
type Renderer interface {
	Render(ctx context.Context, script string, target *image.RGBA) error
}

// Result is one laid out script.
type Result struct {
	Name      string
	Viewport  layout.Size
	SafeArea  layout.EdgeInsets
	Placement layout.Placement
}

// Script is a layout script and the location relative image sources
// resolve against. An empty Base leaves them to the fetcher.
type Script struct {
	Name string
	Text string
	Base string
}

// Pipeline runs scripts through the JS builders and the layout engine and
// hands the placements to the renderers.
type Pipeline struct {
	fetcher *DefaultFetcher
	cfg     config.Config
	logger  *zap.Logger
}

// NewPipeline creates a pipeline. A nil fetcher reads paths as given and
// a nil logger discards output.
func NewPipeline(fetcher *DefaultFetcher, cfg config.Config, logger *zap.Logger) *Pipeline {
	if fetcher == nil {
		fetcher = NewFetcher("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{fetcher: fetcher, cfg: cfg, logger: logger}
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() config.Config { return p.cfg }

func (p *Pipeline) engine(ctx context.Context, base string) *js.Engine {
	opts := []js.Option{
		js.WithLogger(p.logger.Named("console")),
		js.WithGridDefaultWidth(p.cfg.Grid.DefaultWidth),
		js.WithImageFetcher(p.fetcher.ImageFetcher(ctx)),
	}
	switch {
	case base == "":
	case IsNetworkURL(base):
		opts = append(opts, js.WithBaseURL(base))
	default:
		opts = append(opts, js.WithBaseDir(base))
	}
	return js.New(opts...)
}

// Load fetches the script at uri. Its base is the script's URL, or the
// absolute directory holding it.
func (p *Pipeline) Load(ctx context.Context, uri string) (Script, error) {
	text, err := p.fetcher.FetchScript(ctx, uri)
	if err != nil {
		return Script{}, err
	}
	base := p.fetcher.Resolve(uri)
	if !IsNetworkURL(base) {
		if base, err = filepath.Abs(filepath.Dir(base)); err != nil {
			return Script{}, fmt.Errorf("script directory: %w", err)
		}
	}
	return Script{Name: path.Base(uri), Text: text, Base: base}, nil
}

// Layout evaluates script and lays out its root in the configured
// viewport.
func (p *Pipeline) Layout(ctx context.Context, name, script string) (Result, error) {
	return p.LayoutScript(ctx, Script{Name: name, Text: script})
}

// LayoutScript is Layout for a loaded script.
func (p *Pipeline) LayoutScript(ctx context.Context, s Script) (Result, error) {
	return p.layoutIn(ctx, s, layout.NewSize(p.cfg.Viewport.Width, p.cfg.Viewport.Height))
}

func (p *Pipeline) layoutIn(ctx context.Context, s Script, viewport layout.Size) (Result, error) {
	root, err := p.engine(ctx, s.Base).Execute(s.Name, s.Text)
	if err != nil {
		return Result{}, err
	}

	le := layout.NewLayoutEngine(viewport.Width, viewport.Height)
	le.SetSafeArea(p.cfg.Insets())
	placement := le.Layout(root)
	p.logger.Debug("laid out script",
		zap.String("script", s.Name),
		zap.Stringer("viewport", viewport),
		zap.Stringer("root", placement.Frame),
	)
	return Result{
		Name:      s.Name,
		Viewport:  viewport,
		SafeArea:  le.SafeArea(),
		Placement: placement,
	}, nil
}

// LayoutURI fetches the script at uri and lays it out.
func (p *Pipeline) LayoutURI(ctx context.Context, uri string) (Result, error) {
	s, err := p.Load(ctx, uri)
	if err != nil {
		return Result{}, err
	}
	return p.LayoutScript(ctx, s)
}

func (p *Pipeline) options() render.Options {
	return render.Options{
		Scale:    p.cfg.Render.Scale,
		Labels:   p.cfg.Render.Labels,
		SafeArea: p.cfg.Insets(),
	}
}

// Write encodes res in the configured format.
func (p *Pipeline) Write(w io.Writer, res Result) error {
	switch p.cfg.Render.Format {
	case config.FormatSVG:
		return render.WriteSVG(w, res.Placement, res.Viewport, p.options())
	case config.FormatPNG:
		r := render.NewRenderer(res.Viewport.Width, res.Viewport.Height, p.options())
		r.Render(res.Placement)
		if err := r.EncodePNG(w); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", config.ErrInvalidFormat, p.cfg.Render.Format)
}

// Render lays out script in a viewport matching target and draws it there.
func (p *Pipeline) Render(ctx context.Context, script string, target *image.RGBA) error {
	return p.RenderScript(ctx, Script{Name: "script", Text: script}, target)
}

// RenderScript is Render for a loaded script.
func (p *Pipeline) RenderScript(ctx context.Context, s Script, target *image.RGBA) error {
	scale := p.options().Scale
	if scale <= 0 {
		scale = 1
	}
	b := target.Bounds()
	viewport := layout.NewSize(float64(b.Dx())/scale, float64(b.Dy())/scale)
	res, err := p.layoutIn(ctx, s, viewport)
	if err != nil {
		return err
	}
	render.NewRendererForImage(target, p.options()).Render(res.Placement)
	return nil
}
