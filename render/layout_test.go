package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menukit/menukit/menu"
)

func newTestRenderer() *Renderer {
	return NewRenderer(Dirs{})
}

func intPtr(v int) *int { return &v }

func TestComputeLayout_TitleOnlyCanvas(t *testing.T) {
	cfg := &menu.Config{Title: "Help"}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	// header 80+60+20+40, content tail 20, bottom padding 40
	assert.Equal(t, DefaultWidth, plan.CanvasW)
	assert.Equal(t, 260, plan.CanvasH)
	assert.Empty(t, plan.Groups)
	assert.Equal(t, 80, plan.TitleOrigin.Y)
}

func TestComputeLayout_SubtitleAddsHeight(t *testing.T) {
	cfg := &menu.Config{Title: "Help", SubTitle: "commands"}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	// subtitle renders at half the title size (30px)
	assert.Equal(t, 290, plan.CanvasH)
}

func TestComputeLayout_GridPanelHeight(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		columns  int
		wantRows int
		wantH    int
	}{
		{"five items two columns", 5, 2, 3, 3*100 + 2*15 + 40},
		{"four items two columns", 4, 2, 2, 2*100 + 1*15 + 40},
		{"one item three columns", 1, 3, 1, 1*100 + 0 + 40},
		{"seven items three columns", 7, 3, 3, 3*100 + 2*15 + 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]menu.Item, tt.items)
			cfg := &menu.Config{
				Title:  "t",
				Groups: []menu.Group{{Title: "g", Columns: tt.columns, Items: items}},
			}
			cfg.Normalize()

			plan := newTestRenderer().ComputeLayout(cfg)

			require.Len(t, plan.Groups, 1)
			gp := plan.Groups[0]
			assert.Equal(t, tt.wantH, gp.Panel.H)
			require.Len(t, gp.Items, tt.items)
			lastRow := (tt.items - 1) / tt.columns
			assert.Equal(t, tt.wantRows-1, lastRow)
		})
	}
}

func TestComputeLayout_EmptyGridPanel(t *testing.T) {
	cfg := &menu.Config{Title: "t", Groups: []menu.Group{{Title: "g"}}}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	assert.Equal(t, 20, plan.Groups[0].Panel.H)
}

func TestComputeLayout_FreeMode(t *testing.T) {
	tests := []struct {
		name      string
		minHeight int
		items     []menu.Item
		wantH     int
	}{
		{"empty list yields min height exactly", 300, nil, 300},
		{"min height floors short content", 300, []menu.Item{{Y: 50, H: 100}}, 300},
		{"tall content exceeds min height", 100, []menu.Item{{Y: 300, H: 100}}, 420},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &menu.Config{
				Title: "t",
				Groups: []menu.Group{{
					Title:     "g",
					Layout:    menu.LayoutFree,
					MinHeight: tt.minHeight,
					Items:     tt.items,
				}},
			}
			cfg.Normalize()

			plan := newTestRenderer().ComputeLayout(cfg)

			assert.Equal(t, tt.wantH, plan.Groups[0].Panel.H)
			assert.GreaterOrEqual(t, plan.Groups[0].Panel.H, tt.minHeight)
		})
	}
}

func TestComputeLayout_FreeModeItemPositions(t *testing.T) {
	cfg := &menu.Config{
		Title: "t",
		Groups: []menu.Group{{
			Title:  "g",
			Layout: menu.LayoutFree,
			Items:  []menu.Item{{X: 30, Y: 40, W: 200, H: 80}},
		}},
	}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	panel := plan.Groups[0].Panel
	got := plan.Groups[0].Items[0]
	assert.Equal(t, Rect{X: panel.X + 30, Y: panel.Y + 40, W: 200, H: 80}, got)
}

func TestComputeLayout_EndToEndGrid(t *testing.T) {
	items := []menu.Item{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	cfg := &menu.Config{
		Title:  "Help",
		Groups: []menu.Group{{Title: "g", Columns: 2, Items: items}},
	}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	require.Len(t, plan.Groups, 1)
	gp := plan.Groups[0]

	// header 200, title row 50, panel 2*100+15+40=255
	assert.Equal(t, Rect{X: 40, Y: 250, W: 920, H: 255}, gp.Panel)

	// cell width (920 - 40 - 15) / 2 = 432
	want := []Rect{
		{X: 60, Y: 270, W: 432, H: 100},
		{X: 507, Y: 270, W: 432, H: 100},
		{X: 60, Y: 385, W: 432, H: 100},
		{X: 507, Y: 385, W: 432, H: 100},
	}
	assert.Equal(t, want, gp.Items)

	// 250 + 255 + 30 group gap + 20 tail + 40 bottom padding
	assert.Equal(t, DefaultWidth, plan.CanvasW)
	assert.Equal(t, 595, plan.CanvasH)
}

func TestComputeLayout_FixedSizingNeverGrows(t *testing.T) {
	items := make([]menu.Item, 20)
	cfg := &menu.Config{
		Title:        "t",
		Sizing:       menu.SizingFixed,
		CanvasWidth:  800,
		CanvasHeight: 300,
		Groups:       []menu.Group{{Title: "g", Items: items}},
	}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	assert.Equal(t, 800, plan.CanvasW)
	assert.Equal(t, 300, plan.CanvasH)
	assert.Greater(t, plan.ContentBottom, 300, "content should overflow, not shrink the canvas")
}

func TestComputeLayout_ColumnCountClamped(t *testing.T) {
	cfg := &menu.Config{
		Title:         "t",
		LayoutColumns: intPtr(-2),
		Groups:        []menu.Group{{Title: "g", Items: []menu.Item{{}, {}}}},
	}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	assert.Equal(t, 1, plan.Groups[0].Columns)
}

func TestComputeLayout_WidgetExtendsContentBottom(t *testing.T) {
	cfg := &menu.Config{
		Title:   "t",
		Widgets: []menu.Widget{{Type: menu.WidgetText, Text: "hi", Y: 700, Size: 40}},
	}
	cfg.Normalize()

	plan := newTestRenderer().ComputeLayout(cfg)

	assert.Equal(t, 740, plan.ContentBottom)
	assert.Equal(t, 780, plan.CanvasH)
}
