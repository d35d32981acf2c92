// render/renderer.go
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/menukit/menukit/menu"
)

// Dirs holds the four logical asset roots the engine reads from. Empty roots
// are valid: every lookup against them degrades to "asset missing".
type Dirs struct {
	Fonts       string
	Backgrounds string
	Icons       string
	Widgets     string
}

// Renderer turns a menu configuration into a raster image. It holds no
// mutable state between calls, so a single instance is safe to share across
// concurrent renders.
type Renderer struct {
	dirs Dirs
}

func NewRenderer(dirs Dirs) *Renderer {
	return &Renderer{dirs: dirs}
}

// RenderMenu computes the layout and composites the final image. Recoverable
// problems (missing assets, malformed colors, invalid geometry) degrade
// silently; the only error path is a canvas the imaging backend should not
// be asked to allocate.
func (r *Renderer) RenderMenu(cfg *menu.Config) (image.Image, error) {
	if cfg == nil {
		return nil, fmt.Errorf("render menu: nil config")
	}
	plan := r.ComputeLayout(cfg)
	if plan.CanvasW <= 0 || plan.CanvasH <= 0 || plan.CanvasW > maxCanvasDim || plan.CanvasH > maxCanvasDim {
		return nil, fmt.Errorf("render menu: canvas %dx%d out of range", plan.CanvasW, plan.CanvasH)
	}
	return r.compose(cfg, plan), nil
}

// RenderPNG renders the menu and encodes it as PNG bytes. Persistence and
// delivery of the bytes belong to the caller.
func (r *Renderer) RenderPNG(cfg *menu.Config) ([]byte, error) {
	img, err := r.RenderMenu(cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
