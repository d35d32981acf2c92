// menu/reader.go

package menu

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadConfig decodes a single menu configuration. Unknown fields are ignored
// and structural invariants are clamped afterwards, so a hand-edited or
// partially filled document still decodes into something renderable.
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode menu config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// ReadLibrary decodes the root config store document.
func ReadLibrary(r io.Reader) (*Library, error) {
	var lib Library
	if err := json.NewDecoder(r).Decode(&lib); err != nil {
		return nil, fmt.Errorf("decode menu library: %w", err)
	}
	lib.Normalize()
	return &lib, nil
}

// Normalize clamps every menu in the library.
func (l *Library) Normalize() {
	for i := range l.Menus {
		l.Menus[i].Normalize()
	}
}

// Normalize applies structural defaults and clamps invalid values to the
// nearest valid ones. Invalid input is never fatal: a column count below 1
// inherits, negative geometry is zeroed, unknown mode strings fall back to
// the default mode.
func (c *Config) Normalize() {
	if c.Sizing != SizingFixed {
		c.Sizing = SizingAuto
	}
	switch c.TitleAlign {
	case "left", "right", "center":
	default:
		c.TitleAlign = "center"
	}
	if c.BgFit != BgFitCustom {
		c.BgFit = BgFitCover
	}
	if c.CanvasWidth < 0 {
		c.CanvasWidth = 0
	}
	if c.CanvasHeight < 0 {
		c.CanvasHeight = 0
	}
	c.LayoutColumns = clampMin(c.LayoutColumns, 1)
	c.CanvasPadding = clampMin(c.CanvasPadding, 0)
	c.GroupBgAlpha = clampAlpha(c.GroupBgAlpha)
	c.ItemBgAlpha = clampAlpha(c.ItemBgAlpha)
	c.GroupBlurRadius = clampMin(c.GroupBlurRadius, 0)
	c.ItemBlurRadius = clampMin(c.ItemBlurRadius, 0)

	for gi := range c.Groups {
		g := &c.Groups[gi]
		if g.Layout != LayoutFree {
			g.Layout = LayoutGrid
		}
		if g.Columns < 0 {
			g.Columns = 0
		}
		if g.MinHeight < 0 {
			g.MinHeight = 0
		}
		g.BgAlpha = clampAlpha(g.BgAlpha)
		g.BlurRadius = clampMin(g.BlurRadius, 0)
		for ii := range g.Items {
			it := &g.Items[ii]
			it.BgAlpha = clampAlpha(it.BgAlpha)
			it.BlurRadius = clampMin(it.BlurRadius, 0)
			it.IconSize = clampMin(it.IconSize, 1)
			if g.Layout == LayoutFree {
				// Free-mode boxes need real extents to lay out against.
				if it.W <= 0 {
					it.W = 100
				}
				if it.H <= 0 {
					it.H = 100
				}
			}
		}
	}

	for wi := range c.Widgets {
		w := &c.Widgets[wi]
		if w.Type != WidgetImage {
			w.Type = WidgetText
		}
		if w.Width < 0 {
			w.Width = 0
		}
		if w.Height < 0 {
			w.Height = 0
		}
		if w.Size <= 0 {
			w.Size = 40
		}
	}
}

func clampMin(p *int, min int) *int {
	if p != nil && *p < min {
		v := min
		return &v
	}
	return p
}

func clampAlpha(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return &v
}
