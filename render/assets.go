// render/assets.go
package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

type assetKind string

const (
	assetBackground assetKind = "background"
	assetIcon       assetKind = "icon"
	assetWidget     assetKind = "widget"
)

// loadImageAsset decodes a named image from the asset root selected by kind.
// A nil result means "skip this visual element": empty name, missing file and
// undecodable data are all non-fatal.
func (r *Renderer) loadImageAsset(kind assetKind, name string) image.Image {
	if name == "" {
		return nil
	}
	var dir string
	switch kind {
	case assetBackground:
		dir = r.dirs.Backgrounds
	case assetIcon:
		dir = r.dirs.Icons
	case assetWidget:
		dir = r.dirs.Widgets
	}
	if dir == "" {
		return nil
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("WARN: cannot decode %s asset %q: %v", kind, name, err)
		return nil
	}
	return img
}

// scaleImage resamples src to w x h with Catmull-Rom interpolation.
func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
