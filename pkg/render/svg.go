package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"waterlayout/pkg/images"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/text"

	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error so svgo, which ignores
// errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func px(v float64) int {
	return int(math.Round(v))
}

// WriteSVG writes p as an SVG document covering viewport. Each container
// becomes a group titled with its layout so the tree survives in the
// output.
func WriteSVG(w io.Writer, p layout.Placement, viewport layout.Size, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	s := opts.scale()
	canvas.Startview(px(viewport.Width*s), px(viewport.Height*s), 0, 0, px(viewport.Width), px(viewport.Height))
	canvas.Rect(0, 0, px(viewport.Width), px(viewport.Height), "fill:#ffffff")

	writeSVGPlacement(canvas, p, 0, opts)

	if !opts.SafeArea.IsZero() {
		for _, band := range unsafeBands(viewport, opts.SafeArea) {
			canvas.Rect(px(band.MinX()), px(band.MinY()), px(band.Width()), px(band.Height()),
				fmt.Sprintf("fill:%s;fill-opacity:0.25", hex(unsafeColor)))
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeSVGPlacement(canvas *svg.SVG, p layout.Placement, depth int, opts Options) {
	f := p.Frame
	x, y, w, h := px(f.MinX()), px(f.MinY()), px(f.Width()), px(f.Height())

	switch v := p.View.(type) {
	case *text.Text:
		lines := v.Lines(layout.NewProposal(layout.Bounded(f.Width()), layout.Unspecified()))
		_, lineHeight := text.MeasureText("M", v.Style)
		for i, line := range lines {
			canvas.Text(x, y+px(float64(i+1)*lineHeight), line,
				fmt.Sprintf("font-family:monospace;font-size:%dpx;fill:%s", px(lineHeight), hex(textColor)))
		}
		return
	case *images.Image:
		if v.Source != "" {
			canvas.Image(x, y, w, h, v.Source)
		} else {
			canvas.Rect(x, y, w, h, "fill:#e5e5e5")
		}
		return
	case layout.Fill:
		canvas.Rect(x, y, w, h, "fill:"+hex(fillColor))
		return
	}

	if p.Layout == nil {
		canvas.Rect(x, y, w, h, "fill:none;stroke:"+hex(outline(depth)))
		return
	}
	canvas.Group()
	canvas.Title(fmt.Sprint(p.Layout))
	canvas.Rect(x, y, w, h, "fill:none;stroke:"+hex(outline(depth)))
	if opts.Labels {
		canvas.Text(x+2, y+11, fmt.Sprint(p.Layout),
			fmt.Sprintf("font-family:monospace;font-size:10px;fill:%s", hex(labelColor)))
	}
	for _, child := range p.Children {
		writeSVGPlacement(canvas, child, depth+1, opts)
	}
	canvas.Gend()
}
