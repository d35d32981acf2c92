// render/layout.go
package render

import (
	"image"

	"github.com/menukit/menukit/menu"
)

// ComputeLayout resolves the absolute geometry of every visual element of the
// menu: the title block, each group's title row, panel and item boxes, and the
// final canvas size. The configuration is never mutated; everything here is
// recomputed from scratch on every call.
func (r *Renderer) ComputeLayout(cfg *menu.Config) Plan {
	ms := resolveMenuStyle(cfg)

	width := DefaultWidth
	if cfg.Sizing == menu.SizingFixed && cfg.CanvasWidth > 0 {
		width = cfg.CanvasWidth
	}

	// Title block: top margin, title, gap, optional subtitle, bottom gap.
	headerH := topMargin + ms.title.size + titleGap
	if cfg.SubTitle != "" {
		headerH += ms.subtitle.size
	}
	headerH += headerBottomGap

	plan := Plan{
		TitleOrigin: image.Pt(0, topMargin),
		CanvasW:     width,
		Groups:      make([]GroupPlan, 0, len(cfg.Groups)),
	}

	cursor := headerH
	for gi := range cfg.Groups {
		g := &cfg.Groups[gi]
		cols := effectiveColumns(cfg, g)
		panelTop := cursor + titleRowH

		var contentH int
		switch g.Layout {
		case menu.LayoutFree:
			if len(g.Items) == 0 {
				contentH = g.MinHeight
			} else {
				maxBottom := 0
				for ii := range g.Items {
					if b := g.Items[ii].Y + g.Items[ii].H; b > maxBottom {
						maxBottom = b
					}
				}
				contentH = maxInt(g.MinHeight, maxBottom+freeBottomPad)
			}
		default: // grid
			if len(g.Items) == 0 {
				contentH = emptyPanelH
			} else {
				rows := (len(g.Items) + cols - 1) / cols
				contentH = rows*itemRowH + (rows-1)*itemGapY + 2*panelPad
			}
		}

		panel := Rect{X: paddingX, Y: panelTop, W: width - 2*paddingX, H: contentH}
		gp := GroupPlan{
			TitleOrigin: image.Pt(panel.X+10, cursor+10),
			Panel:       panel,
			Columns:     cols,
			Items:       make([]Rect, len(g.Items)),
		}

		for ii := range g.Items {
			it := &g.Items[ii]
			if g.Layout == menu.LayoutFree {
				gp.Items[ii] = Rect{X: panel.X + it.X, Y: panel.Y + it.Y, W: it.W, H: it.H}
			} else {
				cellW := (panel.W - 2*panelPad - (cols-1)*itemGapX) / cols
				row, col := ii/cols, ii%cols
				gp.Items[ii] = Rect{
					X: panel.X + panelPad + col*(cellW+itemGapX),
					Y: panel.Y + panelPad + row*(itemRowH+itemGapY),
					W: cellW,
					H: itemRowH,
				}
			}
		}

		plan.Groups = append(plan.Groups, gp)
		cursor = panelTop + contentH + groupGap
	}

	contentBottom := cursor + contentTail
	for wi := range cfg.Widgets {
		w := &cfg.Widgets[wi]
		h := w.Size
		if w.Type == menu.WidgetImage {
			h = w.Height
		}
		if b := w.Y + h; b > contentBottom {
			contentBottom = b
		}
	}
	plan.ContentBottom = contentBottom

	if cfg.Sizing == menu.SizingFixed && cfg.CanvasHeight > 0 {
		plan.CanvasH = cfg.CanvasHeight
		return plan
	}

	pad := defaultCanvasPadding
	if cfg.CanvasPadding != nil {
		pad = *cfg.CanvasPadding
	}
	height := contentBottom + pad

	// A decorative background is never cropped at the bottom: raise the canvas
	// to the image's width-scaled natural height when that exceeds the content.
	if bg := r.loadImageAsset(assetBackground, cfg.Background); bg != nil && cfg.BgFit != menu.BgFitCustom {
		bw := bg.Bounds().Dx()
		if bw > 0 {
			if scaledH := bg.Bounds().Dy() * width / bw; scaledH > height {
				height = scaledH
			}
		}
	}
	plan.CanvasH = height
	return plan
}
