// Command waterlayout lays out layout scripts and writes PNG or SVG
// renderings of the result.
//
//	waterlayout [flags] script.js [more.js | https://host/script.js ...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"waterlayout/pkg/config"
	"waterlayout/pkg/inspect"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/resource"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

type options struct {
	configPath string
	outDir     string
	format     string
	width      float64
	height     float64
	scale      float64
	safeArea   string
	noLabels   bool
	print      bool
	watch      bool
	jobs       int
	verbose    bool
	scripts    []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("waterlayout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.outDir, "o", "", "Output directory (default: next to each script)")
	fs.StringVar(&o.format, "format", "", "Output format: png or svg")
	fs.Float64Var(&o.width, "width", 0, "Viewport width")
	fs.Float64Var(&o.height, "height", 0, "Viewport height")
	fs.Float64Var(&o.scale, "scale", 0, "Pixels per logical unit")
	fs.StringVar(&o.safeArea, "safe", "", "Safe area insets: top=44,bottom=34,leading=0,trailing=0")
	fs.BoolVar(&o.noLabels, "no-labels", false, "Do not draw container names")
	fs.BoolVar(&o.print, "print", false, "Print the placement tree")
	fs.BoolVar(&o.watch, "watch", false, "Re-render local scripts when they change")
	fs.IntVar(&o.jobs, "j", 4, "Scripts rendered in parallel")
	fs.BoolVar(&o.verbose, "v", false, "Log layout passes")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: waterlayout [flags] <script.js>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.scripts = fs.Args()
	if len(o.scripts) == 0 {
		fs.Usage()
		return o, errors.New("no scripts given")
	}
	return o, nil
}

// applyTo overrides cfg with the flags that were set.
func (o options) applyTo(cfg config.Config) (config.Config, error) {
	if o.format != "" {
		cfg.Render.Format = strings.ToLower(o.format)
	}
	if o.width > 0 {
		cfg.Viewport.Width = o.width
	}
	if o.height > 0 {
		cfg.Viewport.Height = o.height
	}
	if o.scale > 0 {
		cfg.Render.Scale = o.scale
	}
	if o.noLabels {
		cfg.Render.Labels = false
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if o.safeArea != "" {
		safe, err := parseSafeArea(o.safeArea, cfg.SafeArea)
		if err != nil {
			return cfg, err
		}
		cfg.SafeArea = safe
	}
	return cfg, cfg.Validate()
}

// parseSafeArea reads "edge=value" pairs on top of base.
func parseSafeArea(s string, base config.SafeArea) (config.SafeArea, error) {
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return base, fmt.Errorf("safe area %q: want edge=value", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return base, fmt.Errorf("safe area %s: %w", key, err)
		}
		switch key {
		case "top":
			base.Top = v
		case "bottom":
			base.Bottom = v
		case "leading":
			base.Leading = v
		case "trailing":
			base.Trailing = v
		default:
			return base, fmt.Errorf("safe area: unknown edge %q", key)
		}
	}
	return base, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	if cfg, err = o.applyTo(cfg); err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	layout.SetLogger(logger.Named("layout"))

	cli := &cli{
		opts:     o,
		pipeline: resource.NewPipeline(nil, cfg, logger),
		logger:   logger,
		stdout:   stdout,
		printer:  inspect.NewPrinter(isTerminal(stdout)),
	}
	err = cli.renderAll(ctx, o.scripts)
	if !o.watch {
		return err
	}
	if err != nil {
		logger.Error("render failed", zap.Error(err))
	}
	return cli.watch(ctx, o.scripts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type cli struct {
	opts     options
	pipeline *resource.Pipeline
	logger   *zap.Logger
	stdout   io.Writer
	printer  *inspect.Printer
}

// renderAll renders every script, at most opts.jobs at a time. Trees are
// printed in argument order once all scripts are done.
func (c *cli) renderAll(ctx context.Context, scripts []string) error {
	trees := make([]string, len(scripts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.opts.jobs, 1))
	for i, script := range scripts {
		g.Go(func() error {
			tree, err := c.renderOne(ctx, script)
			trees[i] = tree
			return err
		})
	}
	err := g.Wait()
	for _, tree := range trees {
		if tree != "" {
			fmt.Fprintln(c.stdout, tree)
		}
	}
	return err
}

func (c *cli) renderOne(ctx context.Context, script string) (string, error) {
	res, err := c.pipeline.LayoutURI(ctx, script)
	if err != nil {
		return "", err
	}

	out := c.outputPath(script)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create output: %w", err)
	}
	if err := c.pipeline.Write(f, res); err != nil {
		f.Close()
		return "", fmt.Errorf("%s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", out, err)
	}
	c.logger.Info("rendered", zap.String("script", script), zap.String("output", out))

	if !c.opts.print {
		return "", nil
	}
	return c.printer.Render(res.Placement), nil
}

// outputPath places the rendering next to a local script, or in the
// output directory when one is given. Remote scripts without -o land in
// the working directory.
func (c *cli) outputPath(script string) string {
	base := path.Base(script)
	dir := filepath.Dir(script)
	if resource.IsNetworkURL(script) {
		dir = "."
	}
	if c.opts.outDir != "" {
		dir = c.opts.outDir
	}
	name := strings.TrimSuffix(base, path.Ext(base)) + "." + c.pipeline.Config().Render.Format
	return filepath.Join(dir, name)
}
