// render/render.go
package render

import "image"

// Layout constants. One consistent set: the 1000 px glass/grid variant.
const (
	DefaultWidth = 1000

	paddingX        = 40 // canvas side padding around panels
	groupGap        = 30 // vertical gap between groups
	itemRowH        = 100
	itemGapX        = 15
	itemGapY        = 15
	titleRowH       = 50 // reserved row above each panel for the group title
	topMargin       = 80
	titleGap        = 20 // gap between title and subtitle
	headerBottomGap = 40
	panelPad        = 20 // inner padding of a grid panel
	freeBottomPad   = 20 // slack under the lowest free-mode item
	emptyPanelH     = 20 // panel height of an empty grid group
	contentTail     = 20 // slack under the last group before the bottom margin

	cornerRadiusGroup = 15
	cornerRadiusItem  = 10

	iconMargin  = 15 // left inset of an item icon
	iconTextGap = 10 // gap between icon and text
	textInset   = 15 // left inset of item text when no icon is present
	nameDescGap = 5  // gap between item name and description block
	descLineGap = 4  // gap between description lines

	defaultCanvasPadding = 40
	widgetDefaultSize    = 100

	// Anything past this is a pathological configuration; the facade rejects
	// it instead of asking the process for a multi-gigabyte allocation.
	maxCanvasDim = 16384
)

// Rect is an absolute pixel rectangle on the canvas.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Bottom() int { return r.Y + r.H }

// GroupPlan is the resolved geometry of one group: the title row origin, the
// glass panel rectangle, and the absolute box of every item in declared order.
type GroupPlan struct {
	TitleOrigin image.Point
	Panel       Rect
	Items       []Rect
	Columns     int
}

// Plan is the full layout of a menu: ephemeral, recomputed on every render.
type Plan struct {
	TitleOrigin   image.Point // top of the title block; x resolved by alignment
	CanvasW       int
	CanvasH       int
	ContentBottom int // lowest content edge before bottom padding
	Groups        []GroupPlan
}
