// render/fonts.go
package render

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	builtinOnce sync.Once
	builtinFont *opentype.Font
)

// loadFont resolves a font file name and pixel size to a drawable face.
// Resolution order: the named file under the fonts root, else the built-in
// Go Regular scaled to the requested size, else the fixed bitmap face.
// It never fails; a missing font must not block rendering.
func (r *Renderer) loadFont(name string, px int) font.Face {
	if px <= 0 {
		px = 12
	}
	if name != "" && r.dirs.Fonts != "" {
		path := filepath.Join(r.dirs.Fonts, name)
		if data, err := os.ReadFile(path); err == nil {
			if face, err := newFace(data, px); err == nil {
				return face
			} else {
				log.Printf("WARN: cannot load font %q: %v", name, err)
			}
		}
	}
	return builtinFace(px)
}

func newFace(data []byte, px int) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	// DPI 72 makes point size equal pixel size.
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func builtinFace(px int) font.Face {
	builtinOnce.Do(func() {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("ERROR: cannot parse built-in font: %v", err)
			return
		}
		builtinFont = ft
	})
	if builtinFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(builtinFont, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
