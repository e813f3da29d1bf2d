package resource

import (
	"context"
	"image"
	"sync"

	"go.uber.org/zap"
)

// Preview holds the script a viewer shows and draws it at whatever size
// the host asks for. It is safe for concurrent use.
type Preview struct {
	pipeline *Pipeline
	logger   *zap.Logger

	mu     sync.Mutex
	script Script
}

// NewPreview creates an empty preview. A nil logger discards render
// errors.
func NewPreview(pipeline *Pipeline, logger *zap.Logger) *Preview {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Preview{pipeline: pipeline, logger: logger}
}

// Set replaces the script drawn by later calls to Draw.
func (v *Preview) Set(script Script) {
	v.mu.Lock()
	v.script = script
	v.mu.Unlock()
}

// Draw lays the script out in a w x h pixel image. Render errors are
// logged and leave the image blank.
func (v *Preview) Draw(w, h int) image.Image {
	target := image.NewRGBA(image.Rect(0, 0, w, h))
	v.mu.Lock()
	script := v.script
	v.mu.Unlock()
	if script.Text == "" {
		return target
	}
	if err := v.pipeline.RenderScript(context.Background(), script, target); err != nil {
		v.logger.Error("render failed",
			zap.String("script", script.Name),
			zap.Int("width", w),
			zap.Int("height", h),
			zap.Error(err),
		)
	}
	return target
}
