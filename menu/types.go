// menu/types.go

package menu

// Sizing selects how the canvas dimensions are derived.
type Sizing string

const (
	SizingAuto  Sizing = "auto"  // height derived from content
	SizingFixed Sizing = "fixed" // configured width/height used verbatim
)

// Layout selects how a group places its items.
type Layout string

const (
	LayoutGrid Layout = "grid" // automatic row/column placement
	LayoutFree Layout = "free" // explicit per-item x/y/w/h
)

// BgFit selects how a background image is scaled onto the canvas.
type BgFit string

const (
	BgFitCover  BgFit = "cover"  // scale to canvas width, keep aspect
	BgFitCustom BgFit = "custom" // explicit bg_width/bg_height
)

// Widget kinds.
const (
	WidgetImage = "image"
	WidgetText  = "text"
)

// Library is the root document of the config store: an ordered set of menus.
// Name and Enabled belong to the delivery layer (render every enabled menu);
// the rendering engine itself only ever sees a single Config.
type Library struct {
	Menus []Config `json:"menus"`
}

// Config is one complete menu card. All style fields at this level are the
// menu-wide defaults that groups and items fall back to; the optional numeric
// fields are pointers so an explicit zero survives decoding.
type Config struct {
	Name    string `json:"name,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`

	Title      string `json:"title"`
	SubTitle   string `json:"sub_title,omitempty"`
	TitleAlign string `json:"title_align,omitempty"` // left | center | right

	Sizing        Sizing `json:"sizing,omitempty"`
	CanvasWidth   int    `json:"canvas_width,omitempty"`
	CanvasHeight  int    `json:"canvas_height,omitempty"`
	CanvasPadding *int   `json:"canvas_padding,omitempty"`
	CanvasColor   string `json:"canvas_color,omitempty"`

	Background string `json:"background,omitempty"`
	BgFit      BgFit  `json:"bg_fit,omitempty"`
	BgWidth    int    `json:"bg_width,omitempty"`
	BgHeight   int    `json:"bg_height,omitempty"`

	LayoutColumns *int `json:"layout_columns,omitempty"`

	TitleFont     string `json:"title_font,omitempty"`
	TitleSize     *int   `json:"title_size,omitempty"`
	TitleColor    string `json:"title_color,omitempty"`
	SubTitleColor string `json:"subtitle_color,omitempty"`

	GroupTitleFont  string `json:"group_title_font,omitempty"`
	GroupTitleSize  *int   `json:"group_title_size,omitempty"`
	GroupTitleColor string `json:"group_title_color,omitempty"`
	GroupSubFont    string `json:"group_sub_font,omitempty"`
	GroupSubSize    *int   `json:"group_sub_size,omitempty"`
	GroupSubColor   string `json:"group_sub_color,omitempty"`

	ItemNameFont  string `json:"item_name_font,omitempty"`
	ItemNameSize  *int   `json:"item_name_size,omitempty"`
	ItemNameColor string `json:"item_name_color,omitempty"`
	ItemDescFont  string `json:"item_desc_font,omitempty"`
	ItemDescSize  *int   `json:"item_desc_size,omitempty"`
	ItemDescColor string `json:"item_desc_color,omitempty"`

	GroupBgColor    string `json:"group_bg_color,omitempty"`
	GroupBgAlpha    *int   `json:"group_bg_alpha,omitempty"`
	GroupBlurRadius *int   `json:"group_blur_radius,omitempty"`
	ItemBgColor     string `json:"item_bg_color,omitempty"`
	ItemBgAlpha     *int   `json:"item_bg_alpha,omitempty"`
	ItemBlurRadius  *int   `json:"item_blur_radius,omitempty"`

	Groups  []Group  `json:"groups,omitempty"`
	Widgets []Widget `json:"widgets,omitempty"`
}

// Group is a titled panel of items, laid out as a grid or free-form.
// Every style field overrides the menu-level default when set.
type Group struct {
	Title    string `json:"title"`
	SubTitle string `json:"sub_title,omitempty"`

	Layout    Layout `json:"layout,omitempty"`
	Columns   int    `json:"columns,omitempty"` // 0 = inherit menu default
	MinHeight int    `json:"min_height,omitempty"`

	TitleFont  string `json:"title_font,omitempty"`
	TitleSize  *int   `json:"title_size,omitempty"`
	TitleColor string `json:"title_color,omitempty"`
	SubFont    string `json:"sub_font,omitempty"`
	SubSize    *int   `json:"sub_size,omitempty"`
	SubColor   string `json:"sub_color,omitempty"`

	BgColor    string `json:"bg_color,omitempty"`
	BgAlpha    *int   `json:"bg_alpha,omitempty"`
	BlurRadius *int   `json:"blur_radius,omitempty"`

	Items []Item `json:"items,omitempty"`
}

// Item is one menu entry inside a group. X/Y/W/H are only meaningful under
// free layout and are relative to the owning panel's content origin.
type Item struct {
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"` // may contain embedded line breaks

	Icon     string `json:"icon,omitempty"`
	IconSize *int   `json:"icon_size,omitempty"` // explicit icon pixel height

	NameFont  string `json:"name_font,omitempty"`
	NameSize  *int   `json:"name_size,omitempty"`
	NameColor string `json:"name_color,omitempty"`
	DescFont  string `json:"desc_font,omitempty"`
	DescSize  *int   `json:"desc_size,omitempty"`
	DescColor string `json:"desc_color,omitempty"`

	BgColor    string `json:"bg_color,omitempty"`
	BgAlpha    *int   `json:"bg_alpha,omitempty"`
	BlurRadius *int   `json:"blur_radius,omitempty"`

	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`
}

// Widget is a free-floating decoration in absolute canvas coordinates,
// independent of any group.
type Widget struct {
	Type string `json:"type"` // image | text
	X    int    `json:"x"`
	Y    int    `json:"y"`

	// image widgets
	Content string `json:"content,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`

	// text widgets
	Text  string `json:"text,omitempty"`
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// IsEnabled reports whether a menu should be delivered; an absent flag
// counts as enabled.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
