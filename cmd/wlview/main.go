// Command wlview shows a layout script in a window and lays it out again
// whenever the window is resized or the script is reloaded.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"waterlayout/pkg/config"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/resource"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	layout.SetLogger(logger.Named("layout"))

	pipeline := resource.NewPipeline(nil, cfg, logger)
	preview := resource.NewPreview(pipeline, logger)

	a := app.New()
	w := a.NewWindow("waterlayout")
	w.Resize(fyne.NewSize(float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)))

	raster := canvas.NewRaster(preview.Draw)
	status := widget.NewLabel("Enter a script path or URL and press Enter")
	entry := widget.NewEntry()
	entry.SetPlaceHolder("examples/card.js")

	load := func(src string) {
		if src == "" {
			return
		}
		status.SetText("Loading " + src + "...")
		go func() {
			ctx := context.Background()
			script, err := pipeline.Load(ctx, src)
			if err == nil {
				_, err = pipeline.LayoutScript(ctx, script)
			}
			fyne.Do(func() {
				if err != nil {
					status.SetText("Error: " + err.Error())
					return
				}
				preview.Set(script)
				raster.Refresh()
				w.SetTitle("waterlayout: " + src)
				status.SetText(src)
			})
		}()
	}
	entry.OnSubmitted = load
	reload := widget.NewButton("Reload", func() { load(entry.Text) })

	top := container.NewBorder(nil, nil, nil, reload, entry)
	w.SetContent(container.NewBorder(top, status, nil, nil, raster))
	w.Canvas().Focus(entry)

	if flag.NArg() > 0 {
		entry.SetText(flag.Arg(0))
		load(flag.Arg(0))
	}
	w.ShowAndRun()
}
