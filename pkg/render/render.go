// Package render draws computed placements for inspection: PNG through gg
// and SVG through svgo. Containers are outlined, leaves are painted.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"waterlayout/pkg/images"
	"waterlayout/pkg/layout"
	"waterlayout/pkg/text"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Options control what the renderers draw on top of the frames.
type Options struct {
	// Scale maps logical units to output pixels. Zero means 1.
	Scale float64
	// Labels draws each container's name in its top-left corner.
	Labels bool
	// SafeArea is shaded along the viewport edges when non-zero.
	SafeArea layout.EdgeInsets
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

var (
	background  = color.White
	fillColor   = color.RGBA{0x8b, 0xe9, 0xfd, 0xff}
	textColor   = color.RGBA{0x28, 0x2a, 0x36, 0xff}
	labelColor  = color.RGBA{0x62, 0x72, 0xa4, 0xff}
	unsafeColor = color.RGBA{0xff, 0x55, 0x55, 0x40}

	// outlines cycle by depth so nested containers stay distinguishable.
	outlines = []color.RGBA{
		{0xbd, 0x93, 0xf9, 0xff},
		{0x50, 0xfa, 0x7b, 0xff},
		{0xff, 0xb8, 0x6c, 0xff},
		{0xff, 0x79, 0xc6, 0xff},
		{0x62, 0x72, 0xa4, 0xff},
	}
)

func outline(depth int) color.RGBA {
	return outlines[depth%len(outlines)]
}

// Renderer paints placements onto an in-memory image.
type Renderer struct {
	context *gg.Context
	opts    Options
}

// NewRenderer creates a renderer for a viewport of width by height
// logical units.
func NewRenderer(width, height float64, opts Options) *Renderer {
	s := opts.scale()
	dc := gg.NewContext(int(math.Ceil(width*s)), int(math.Ceil(height*s)))
	return &Renderer{context: dc, opts: opts}
}

// NewRendererForImage draws onto an existing image, one pixel per unit
// times the scale.
func NewRendererForImage(img *image.RGBA, opts Options) *Renderer {
	return &Renderer{context: gg.NewContextForRGBA(img), opts: opts}
}

// Render clears the canvas and draws p with its descendants.
func (r *Renderer) Render(p layout.Placement) {
	dc := r.context
	dc.SetColor(background)
	dc.Clear()

	dc.Push()
	dc.Scale(r.opts.scale(), r.opts.scale())
	p.Walk(func(p layout.Placement, depth int) bool {
		r.drawPlacement(p, depth)
		return true
	})
	if !r.opts.SafeArea.IsZero() {
		w, h := float64(dc.Width())/r.opts.scale(), float64(dc.Height())/r.opts.scale()
		r.DrawSafeArea(layout.NewSize(w, h), r.opts.SafeArea)
	}
	dc.Pop()
}

func (r *Renderer) drawPlacement(p layout.Placement, depth int) {
	f := p.Frame
	switch v := p.View.(type) {
	case *text.Text:
		r.drawText(v, f)
		return
	case *images.Image:
		r.drawImage(v, f)
		return
	case layout.Fill:
		r.context.SetColor(fillColor)
		r.context.DrawRectangle(f.MinX(), f.MinY(), f.Width(), f.Height())
		r.context.Fill()
		return
	}

	r.context.SetColor(outline(depth))
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(f.MinX()+0.5, f.MinY()+0.5, math.Max(f.Width()-1, 0), math.Max(f.Height()-1, 0))
	r.context.Stroke()
	if r.opts.Labels && p.Layout != nil {
		r.context.SetFontFace(basicfont.Face7x13)
		r.context.SetColor(labelColor)
		r.context.DrawStringAnchored(fmt.Sprint(p.Layout), f.MinX()+2, f.MinY()+2, 0, 1)
	}
}

func (r *Renderer) drawText(t *text.Text, f layout.Rect) {
	dc := r.context
	face := t.Style.Face
	if face == nil {
		face = text.DefaultFace
	}
	dc.SetFontFace(face)
	dc.SetColor(textColor)

	lines := t.Lines(layout.NewProposal(layout.Bounded(f.Width()), layout.Unspecified()))
	spacing := t.Style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	lineHeight := dc.FontHeight()
	dc.Push()
	dc.DrawRectangle(f.MinX(), f.MinY(), f.Width(), f.Height())
	dc.Clip()
	for i, line := range lines {
		dc.DrawStringAnchored(line, f.MinX(), f.MinY()+float64(i)*lineHeight*spacing, 0, 1)
	}
	dc.Pop()
}

func (r *Renderer) drawImage(img *images.Image, f layout.Rect) {
	dc := r.context
	if img.Img == nil || f.Width() == 0 || f.Height() == 0 {
		// Broken or empty image: gray box with a cross.
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.DrawRectangle(f.MinX(), f.MinY(), f.Width(), f.Height())
		dc.Fill()
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.SetLineWidth(2)
		dc.DrawLine(f.MinX(), f.MinY(), f.MaxX(), f.MaxY())
		dc.DrawLine(f.MaxX(), f.MinY(), f.MinX(), f.MaxY())
		dc.Stroke()
		return
	}

	b := img.Img.Bounds()
	dc.Push()
	dc.Translate(f.MinX(), f.MinY())
	dc.Scale(f.Width()/float64(b.Dx()), f.Height()/float64(b.Dy()))
	dc.DrawImage(img.Img, -b.Min.X, -b.Min.Y)
	dc.Pop()
}

// DrawSafeArea shades the inset bands of a viewport.
func (r *Renderer) DrawSafeArea(viewport layout.Size, insets layout.EdgeInsets) {
	dc := r.context
	dc.SetColor(unsafeColor)
	for _, band := range unsafeBands(viewport, insets) {
		dc.DrawRectangle(band.MinX(), band.MinY(), band.Width(), band.Height())
		dc.Fill()
	}
}

func unsafeBands(viewport layout.Size, insets layout.EdgeInsets) []layout.Rect {
	w, h := viewport.Width, viewport.Height
	bands := []layout.Rect{
		layout.NewRect(0, 0, w, insets.Top),
		layout.NewRect(0, h-insets.Bottom, w, insets.Bottom),
		layout.NewRect(0, insets.Top, insets.Leading, h-insets.Vertical()),
		layout.NewRect(w-insets.Trailing, insets.Top, insets.Trailing, h-insets.Vertical()),
	}
	out := bands[:0]
	for _, b := range bands {
		if b.Width() > 0 && b.Height() > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the canvas to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.context.Image())
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
