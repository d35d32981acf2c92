// render/compositor.go
package render

import (
	"image"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/menukit/menukit/menu"
)

// compose paints the menu in strict layer order: opaque base fill, background
// image, glass panels (mutating the base in painter's order), then the whole
// foreground accumulated on a transparent overlay and alpha-composited onto
// the base exactly once — so text is never blurred by the glass pass.
func (r *Renderer) compose(cfg *menu.Config, plan Plan) *image.RGBA {
	ms := resolveMenuStyle(cfg)

	base := image.NewRGBA(image.Rect(0, 0, plan.CanvasW, plan.CanvasH))
	draw.Draw(base, base.Bounds(), image.NewUniform(ms.canvas), image.Point{}, draw.Src)

	r.paintBackground(base, cfg)

	bdc := gg.NewContextForRGBA(base)
	overlay := gg.NewContext(plan.CanvasW, plan.CanvasH)

	r.paintTitle(overlay, cfg, ms, plan)

	for gi := range cfg.Groups {
		g := &cfg.Groups[gi]
		gp := plan.Groups[gi]
		gs := resolveGroupStyle(cfg, g)

		// Each group's panel goes down before its items' panels, so item glass
		// picks up the already-frosted group beneath it.
		glassRect(base, bdc, gp.Panel, gs.panel, cornerRadiusGroup)
		for ii := range g.Items {
			is := resolveItemStyle(cfg, &g.Items[ii])
			glassRect(base, bdc, gp.Items[ii], is.panel, cornerRadiusItem)
		}

		r.paintGroupTitle(overlay, gs, gp, g)
		for ii := range g.Items {
			r.paintItem(overlay, cfg, &g.Items[ii], gp.Items[ii])
		}
	}

	r.paintWidgets(overlay, cfg, ms)

	draw.Draw(base, base.Bounds(), overlay.Image(), image.Point{}, draw.Over)
	return base
}

func (r *Renderer) paintBackground(base *image.RGBA, cfg *menu.Config) {
	img := r.loadImageAsset(assetBackground, cfg.Background)
	if img == nil {
		return
	}
	cw := base.Bounds().Dx()
	var tw, th int
	if cfg.BgFit == menu.BgFitCustom && cfg.BgWidth > 0 && cfg.BgHeight > 0 {
		tw, th = cfg.BgWidth, cfg.BgHeight
	} else {
		bw := img.Bounds().Dx()
		if bw <= 0 {
			return
		}
		tw = cw
		th = img.Bounds().Dy() * cw / bw
	}
	if tw <= 0 || th <= 0 {
		return
	}
	scaled := scaleImage(img, tw, th)
	x := (cw - tw) / 2
	draw.Draw(base, image.Rect(x, 0, x+tw, th), scaled, image.Point{}, draw.Over)
}

// glassRect captures the canvas region under rect, blurs it in place, then
// alpha-composites a rounded translucent fill on top. Blur is skipped
// entirely at radius 0.
func glassRect(base *image.RGBA, bdc *gg.Context, rect Rect, st panelStyle, corner int) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	clipped := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H).Intersect(base.Bounds())
	if clipped.Empty() {
		return
	}
	if st.blur > 0 {
		blurRegion(base, clipped, st.blur)
	}
	c := st.color
	c.A = uint8(clampInt(st.alpha, 0, 255))
	bdc.SetColor(c)
	bdc.DrawRoundedRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), float64(corner))
	bdc.Fill()
}

func (r *Renderer) paintTitle(dc *gg.Context, cfg *menu.Config, ms menuStyle, plan Plan) {
	titleFace := r.loadFont(ms.title.font, ms.title.size)
	dc.SetFontFace(titleFace)
	dc.SetColor(ms.title.color)
	y := plan.TitleOrigin.Y
	drawAligned(dc, titleFace, cfg.Title, cfg.TitleAlign, plan.CanvasW, y)

	if cfg.SubTitle == "" {
		return
	}
	subFace := r.loadFont(ms.subtitle.font, ms.subtitle.size)
	dc.SetFontFace(subFace)
	dc.SetColor(ms.subtitle.color)
	drawAligned(dc, subFace, cfg.SubTitle, cfg.TitleAlign, plan.CanvasW, y+ms.title.size+titleGap/2)
}

// drawAligned places a single line by its top edge, horizontally anchored per
// the configured alignment with a fixed side margin.
func drawAligned(dc *gg.Context, face font.Face, text, align string, canvasW, yTop int) {
	if text == "" {
		return
	}
	w, _ := dc.MeasureString(text)
	var x float64
	switch align {
	case "left":
		x = 50
	case "right":
		x = float64(canvasW) - 50 - w
	default:
		x = (float64(canvasW) - w) / 2
	}
	drawTextTop(dc, face, text, x, float64(yTop))
}

// drawTextTop draws text whose top edge sits at yTop, converting to the
// baseline the drawer expects via the face's own ascent.
func drawTextTop(dc *gg.Context, face font.Face, text string, x, yTop float64) {
	asc := float64(face.Metrics().Ascent.Ceil())
	dc.DrawString(text, x, yTop+asc)
}

func (r *Renderer) paintGroupTitle(dc *gg.Context, gs groupStyle, gp GroupPlan, g *menu.Group) {
	if g.Title != "" {
		face := r.loadFont(gs.title.font, gs.title.size)
		dc.SetFontFace(face)
		dc.SetColor(gs.title.color)
		drawTextTop(dc, face, g.Title, float64(gp.TitleOrigin.X), float64(gp.TitleOrigin.Y))
	}
	if g.SubTitle != "" {
		// Inline after the title, sharing its row.
		offset := 0.0
		if g.Title != "" {
			w, _ := dc.MeasureString(g.Title)
			offset = w + 12
		}
		face := r.loadFont(gs.sub.font, gs.sub.size)
		dc.SetFontFace(face)
		dc.SetColor(gs.sub.color)
		subTop := float64(gp.TitleOrigin.Y + gs.title.size - gs.sub.size)
		drawTextTop(dc, face, g.SubTitle, float64(gp.TitleOrigin.X)+offset, subTop)
	}
}

// paintItem draws an item's icon and its name/description block. The text
// block is vertically centered inside the box; when an icon is present the
// text start shifts right past it, otherwise it sits at the plain left inset.
func (r *Renderer) paintItem(dc *gg.Context, cfg *menu.Config, it *menu.Item, box Rect) {
	is := resolveItemStyle(cfg, it)
	textX := box.X + textInset

	if icon := r.loadImageAsset(assetIcon, it.Icon); icon != nil {
		ih := box.H * 60 / 100
		if it.IconSize != nil {
			ih = *it.IconSize
		}
		ih = clampInt(ih, 1, maxInt(1, box.H))
		srcW, srcH := icon.Bounds().Dx(), icon.Bounds().Dy()
		if srcW > 0 && srcH > 0 {
			iw := maxInt(1, srcW*ih/srcH)
			dc.DrawImage(scaleImage(icon, iw, ih), box.X+iconMargin, box.Y+(box.H-ih)/2)
			textX = box.X + iconMargin + iw + iconTextGap
		}
	}

	var descLines []string
	if it.Desc != "" {
		descLines = strings.Split(it.Desc, "\n")
	}

	blockH := is.name.size
	if n := len(descLines); n > 0 {
		blockH += nameDescGap + n*is.desc.size + (n-1)*descLineGap
	}
	y := box.Y + (box.H-blockH)/2

	if it.Name != "" {
		face := r.loadFont(is.name.font, is.name.size)
		dc.SetFontFace(face)
		dc.SetColor(is.name.color)
		drawTextTop(dc, face, it.Name, float64(textX), float64(y))
	}
	if len(descLines) > 0 {
		face := r.loadFont(is.desc.font, is.desc.size)
		dc.SetFontFace(face)
		dc.SetColor(is.desc.color)
		ly := y + is.name.size + nameDescGap
		for _, line := range descLines {
			drawTextTop(dc, face, line, float64(textX), float64(ly))
			ly += is.desc.size + descLineGap
		}
	}
}

func (r *Renderer) paintWidgets(dc *gg.Context, cfg *menu.Config, ms menuStyle) {
	for wi := range cfg.Widgets {
		w := &cfg.Widgets[wi]
		switch w.Type {
		case menu.WidgetImage:
			img := r.loadImageAsset(assetWidget, w.Content)
			if img == nil {
				continue
			}
			tw, th := w.Width, w.Height
			if tw <= 0 {
				tw = widgetDefaultSize
			}
			if th <= 0 {
				th = widgetDefaultSize
			}
			dc.DrawImage(scaleImage(img, tw, th), w.X, w.Y)
		default:
			if w.Text == "" {
				continue
			}
			face := r.loadFont(ms.title.font, w.Size)
			dc.SetFontFace(face)
			dc.SetColor(ParseHexColor(resolveString(w.Color, "", "#FFFFFF")))
			drawTextTop(dc, face, w.Text, float64(w.X), float64(w.Y))
		}
	}
}
