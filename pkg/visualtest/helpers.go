// Package visualtest renders layout scripts to PNG and compares the
// results against reference images.
package visualtest

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"waterlayout/pkg/config"
	"waterlayout/pkg/render"
	"waterlayout/pkg/resource"
)

// Config returns the fixed settings reference images are drawn with.
func Config(width, height float64) config.Config {
	cfg := config.Default()
	cfg.Viewport = config.Viewport{Width: width, Height: height}
	cfg.Render.Labels = false
	return cfg
}

// RenderScript lays out script and draws it. Relative image paths resolve
// against baseDir.
func RenderScript(script, baseDir string, cfg config.Config) (image.Image, error) {
	p := resource.NewPipeline(resource.NewFetcher(baseDir), cfg, nil)
	res, err := p.Layout(context.Background(), "script", script)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(res.Viewport.Width, res.Viewport.Height, render.Options{
		Scale:    cfg.Render.Scale,
		Labels:   cfg.Render.Labels,
		SafeArea: res.SafeArea,
	})
	r.Render(res.Placement)
	return r.Image(), nil
}

// RenderScriptFile renders the script at scriptPath to a PNG file.
func RenderScriptFile(scriptPath, outputPath string, cfg config.Config) error {
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	img, err := RenderScript(string(script), filepath.Dir(scriptPath), cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := savePNG(img, outputPath); err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	return nil
}

// UpdateReferenceImage regenerates a reference image. Use it when
// rendering changed on purpose.
func UpdateReferenceImage(scriptPath, referencePath string, cfg config.Config) error {
	fmt.Printf("Updating reference image: %s\n", referencePath)
	return RenderScriptFile(scriptPath, referencePath, cfg)
}
