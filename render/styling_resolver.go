// render/styling_resolver.go
package render

import (
	"image/color"
	"strconv"

	"github.com/menukit/menukit/menu"
)

// Hard defaults, applied when neither the entity nor the menu sets a value.
const (
	defaultTitleSize      = 60
	defaultGroupTitleSize = 30
	defaultGroupSubSize   = 18
	defaultItemNameSize   = 26
	defaultItemDescSize   = 16
	defaultGroupBgAlpha   = 50
	defaultItemBgAlpha    = 20
	defaultColumns        = 3

	defaultTitleFont = "title.ttf"
	defaultTextFont  = "text.ttf"
)

// fallbackColor is the neutral dark gray every unparseable color token
// degrades to, so rendering always completes.
var fallbackColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

// resolveString returns the entity override if set, else the menu default,
// else the hard default.
func resolveString(override, menuDefault, hard string) string {
	if override != "" {
		return override
	}
	if menuDefault != "" {
		return menuDefault
	}
	return hard
}

// resolveInt is the numeric counterpart: nil means "not set".
func resolveInt(override, menuDefault *int, hard int) int {
	if override != nil {
		return *override
	}
	if menuDefault != nil {
		return *menuDefault
	}
	return hard
}

// ParseHexColor decodes a #RRGGBB token. It never fails: missing or malformed
// tokens yield the neutral dark gray fallback.
func ParseHexColor(s string) color.NRGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// textStyle is a fully resolved drawable text style.
type textStyle struct {
	font  string
	size  int
	color color.NRGBA
}

// panelStyle is a fully resolved glass panel style.
type panelStyle struct {
	color color.NRGBA
	alpha int
	blur  int
}

// menuStyle carries every menu-level resolved style plus the effective
// defaults groups and items cascade onto.
type menuStyle struct {
	title    textStyle
	subtitle textStyle
	canvas   color.NRGBA
	columns  int
}

func resolveMenuStyle(cfg *menu.Config) menuStyle {
	titleSize := resolveInt(cfg.TitleSize, nil, defaultTitleSize)
	return menuStyle{
		title: textStyle{
			font:  resolveString(cfg.TitleFont, "", defaultTitleFont),
			size:  titleSize,
			color: ParseHexColor(resolveString(cfg.TitleColor, "", "#FFFFFF")),
		},
		// The subtitle reuses the title font at half size.
		subtitle: textStyle{
			font:  resolveString(cfg.TitleFont, "", defaultTitleFont),
			size:  titleSize / 2,
			color: ParseHexColor(resolveString(cfg.SubTitleColor, "", "#DDDDDD")),
		},
		canvas:  ParseHexColor(resolveString(cfg.CanvasColor, "", "#1e1e1e")),
		columns: maxInt(1, resolveInt(nil, cfg.LayoutColumns, defaultColumns)),
	}
}

type groupStyle struct {
	title textStyle
	sub   textStyle
	panel panelStyle
}

func resolveGroupStyle(cfg *menu.Config, g *menu.Group) groupStyle {
	return groupStyle{
		title: textStyle{
			font:  resolveString(g.TitleFont, cfg.GroupTitleFont, defaultTextFont),
			size:  resolveInt(g.TitleSize, cfg.GroupTitleSize, defaultGroupTitleSize),
			color: ParseHexColor(resolveString(g.TitleColor, cfg.GroupTitleColor, "#FFFFFF")),
		},
		sub: textStyle{
			font:  resolveString(g.SubFont, cfg.GroupSubFont, defaultTextFont),
			size:  resolveInt(g.SubSize, cfg.GroupSubSize, defaultGroupSubSize),
			color: ParseHexColor(resolveString(g.SubColor, cfg.GroupSubColor, "#AAAAAA")),
		},
		panel: panelStyle{
			color: ParseHexColor(resolveString(g.BgColor, cfg.GroupBgColor, "#000000")),
			alpha: resolveInt(g.BgAlpha, cfg.GroupBgAlpha, defaultGroupBgAlpha),
			blur:  resolveInt(g.BlurRadius, cfg.GroupBlurRadius, 0),
		},
	}
}

type itemStyle struct {
	name  textStyle
	desc  textStyle
	panel panelStyle
}

func resolveItemStyle(cfg *menu.Config, it *menu.Item) itemStyle {
	return itemStyle{
		name: textStyle{
			font:  resolveString(it.NameFont, cfg.ItemNameFont, defaultTitleFont),
			size:  resolveInt(it.NameSize, cfg.ItemNameSize, defaultItemNameSize),
			color: ParseHexColor(resolveString(it.NameColor, cfg.ItemNameColor, "#FFFFFF")),
		},
		desc: textStyle{
			font:  resolveString(it.DescFont, cfg.ItemDescFont, defaultTextFont),
			size:  resolveInt(it.DescSize, cfg.ItemDescSize, defaultItemDescSize),
			color: ParseHexColor(resolveString(it.DescColor, cfg.ItemDescColor, "#AAAAAA")),
		},
		panel: panelStyle{
			color: ParseHexColor(resolveString(it.BgColor, cfg.ItemBgColor, "#FFFFFF")),
			alpha: resolveInt(it.BgAlpha, cfg.ItemBgAlpha, defaultItemBgAlpha),
			blur:  resolveInt(it.BlurRadius, cfg.ItemBlurRadius, 0),
		},
	}
}

// effectiveColumns resolves a group's column count against the menu default,
// clamped to at least one column.
func effectiveColumns(cfg *menu.Config, g *menu.Group) int {
	if g.Columns > 0 {
		return g.Columns
	}
	return maxInt(1, resolveInt(nil, cfg.LayoutColumns, defaultColumns))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
