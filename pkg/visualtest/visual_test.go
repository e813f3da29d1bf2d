package visualtest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCompareImages_Identical(t *testing.T) {
	img := solid(10, 10, color.RGBA{255, 0, 0, 255})

	tmpDir := t.TempDir()
	path1 := filepath.Join(tmpDir, "img1.png")
	path2 := filepath.Join(tmpDir, "img2.png")
	saveTestImage(t, img, path1)
	saveTestImage(t, img, path2)

	result, err := CompareImages(path1, path2, DefaultOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("expected images to match")
	}
	if result.DifferentPixels != 0 {
		t.Errorf("expected 0 different pixels, got %d", result.DifferentPixels)
	}
}

func TestCompareImages_Different(t *testing.T) {
	tmpDir := t.TempDir()
	path1 := filepath.Join(tmpDir, "img1.png")
	path2 := filepath.Join(tmpDir, "img2.png")
	saveTestImage(t, solid(10, 10, color.RGBA{255, 0, 0, 255}), path1)
	saveTestImage(t, solid(10, 10, color.RGBA{0, 0, 255, 255}), path2)

	opts := DefaultOptions()
	opts.DiffImagePath = filepath.Join(tmpDir, "diff.png")

	result, err := CompareImages(path1, path2, opts)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if result.Match {
		t.Errorf("expected images to not match")
	}
	if result.DifferentPixels != 100 {
		t.Errorf("expected 100 different pixels, got %d", result.DifferentPixels)
	}
	if result.MaxDifference != 255 {
		t.Errorf("expected max difference 255, got %d", result.MaxDifference)
	}
	if _, err := os.Stat(opts.DiffImagePath); os.IsNotExist(err) {
		t.Errorf("diff image was not created")
	}
}

func TestCompareImageData(t *testing.T) {
	gray := solid(10, 10, color.RGBA{100, 100, 100, 255})
	light := solid(10, 10, color.RGBA{102, 102, 102, 255})

	shifted := solid(10, 10, color.White)
	shifted.Set(5, 5, color.Black)
	dotted := solid(10, 10, color.White)
	dotted.Set(6, 5, color.Black)

	tests := map[string]struct {
		actual, expected image.Image
		opts             CompareOptions
		match            bool
	}{
		"within tolerance":  {actual: gray, expected: light, opts: CompareOptions{Tolerance: 2}, match: true},
		"exact":             {actual: gray, expected: light, opts: CompareOptions{}, match: false},
		"shifted pixel":     {actual: shifted, expected: dotted, opts: CompareOptions{}, match: false},
		"fuzzy shift":       {actual: shifted, expected: dotted, opts: CompareOptions{FuzzyRadius: 1}, match: true},
		"percent threshold": {actual: shifted, expected: dotted, opts: CompareOptions{MaxDifferentPercent: 2}, match: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := CompareImageData(tt.actual, tt.expected, tt.opts)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if result.Match != tt.match {
				t.Errorf("expected match=%v, got %v (%d different)", tt.match, result.Match, result.DifferentPixels)
			}
		})
	}
}

func TestCompareImages_DifferentDimensions(t *testing.T) {
	tmpDir := t.TempDir()
	path1 := filepath.Join(tmpDir, "img1.png")
	path2 := filepath.Join(tmpDir, "img2.png")
	saveTestImage(t, image.NewRGBA(image.Rect(0, 0, 10, 10)), path1)
	saveTestImage(t, image.NewRGBA(image.Rect(0, 0, 20, 20)), path2)

	result, err := CompareImages(path1, path2, DefaultOptions())
	if err == nil {
		t.Errorf("expected error for different dimensions")
	}
	if result != nil && result.Match {
		t.Errorf("expected images with different dimensions to not match")
	}
}

func saveTestImage(t *testing.T, img image.Image, path string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}
