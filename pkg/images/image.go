package images

import (
	"fmt"
	"image"
	"math"

	"waterlayout/pkg/layout"
)

// Image is a leaf whose intrinsic size is the pixel size of a decoded
// image, one logical unit per pixel.
type Image struct {
	Source string
	Img    image.Image
	// Resizable scales the image to fit the proposal, keeping its aspect
	// ratio. Otherwise the intrinsic size is only clamped to the proposal.
	Resizable bool
	Priority  float64
}

// NewImage wraps a decoded image.
func NewImage(img image.Image) *Image {
	return &Image{Img: img}
}

// Load decodes src through the shared cache. fetcher may be nil.
func Load(src string, fetcher ImageFetcher) (*Image, error) {
	img, err := LoadImageWithFetcher(src, fetcher)
	if err != nil {
		return nil, err
	}
	return &Image{Source: src, Img: img}, nil
}

// IntrinsicSize returns the image's pixel size.
func (i *Image) IntrinsicSize() layout.Size {
	if i.Img == nil {
		return layout.Size{}
	}
	b := i.Img.Bounds()
	return layout.NewSize(float64(b.Dx()), float64(b.Dy()))
}

func (i *Image) Measure(p layout.ProposalSize) layout.Size {
	size := i.IntrinsicSize()
	if !i.Resizable || size.Width == 0 || size.Height == 0 {
		return p.Clamp(size)
	}

	scale := math.Inf(1)
	if p.Width.IsFinite() {
		scale = p.Width.Cap() / size.Width
	}
	if p.Height.IsFinite() {
		scale = math.Min(scale, p.Height.Cap()/size.Height)
	}
	if math.IsInf(scale, 1) {
		return size
	}
	return p.Clamp(layout.NewSize(size.Width*scale, size.Height*scale))
}

func (i *Image) StretchAxis() layout.StretchAxis { return layout.StretchNone }
func (i *Image) LayoutPriority() float64         { return i.Priority }

func (i *Image) String() string {
	s := i.IntrinsicSize()
	return fmt.Sprintf("Image(%gx%g)", s.Width, s.Height)
}
