// render/blur.go
package render

import (
	"image"
	"image/draw"
)

// blurRegion applies a Gaussian-like blur to one rectangle of img, in place.
// Three box passes converge closely enough on a true Gaussian for frosted
// glass, without per-pixel kernel weights.
func blurRegion(img *image.RGBA, rect image.Rectangle, radius int) {
	if radius <= 0 || rect.Empty() {
		return
	}
	region := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(region, region.Bounds(), img, rect.Min, draw.Src)

	tmp := image.NewRGBA(region.Bounds())
	for i := 0; i < 3; i++ {
		boxBlurH(region, tmp, radius)
		boxBlurV(tmp, region, radius)
	}

	draw.Draw(img, rect, region, image.Point{}, draw.Src)
}

// boxBlurH averages each row over a sliding window of 2*radius+1 samples,
// clamping at the edges.
func boxBlurH(src, dst *image.RGBA, radius int) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := radius*2 + 1
	for y := 0; y < h; y++ {
		var sr, sg, sb, sa int
		row := y * src.Stride
		for x := -radius; x <= radius; x++ {
			i := row + clampInt(x, 0, w-1)*4
			sr += int(src.Pix[i])
			sg += int(src.Pix[i+1])
			sb += int(src.Pix[i+2])
			sa += int(src.Pix[i+3])
		}
		for x := 0; x < w; x++ {
			o := y*dst.Stride + x*4
			dst.Pix[o] = uint8(sr / n)
			dst.Pix[o+1] = uint8(sg / n)
			dst.Pix[o+2] = uint8(sb / n)
			dst.Pix[o+3] = uint8(sa / n)

			add := row + clampInt(x+radius+1, 0, w-1)*4
			sub := row + clampInt(x-radius, 0, w-1)*4
			sr += int(src.Pix[add]) - int(src.Pix[sub])
			sg += int(src.Pix[add+1]) - int(src.Pix[sub+1])
			sb += int(src.Pix[add+2]) - int(src.Pix[sub+2])
			sa += int(src.Pix[add+3]) - int(src.Pix[sub+3])
		}
	}
}

func boxBlurV(src, dst *image.RGBA, radius int) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := radius*2 + 1
	for x := 0; x < w; x++ {
		var sr, sg, sb, sa int
		col := x * 4
		for y := -radius; y <= radius; y++ {
			i := clampInt(y, 0, h-1)*src.Stride + col
			sr += int(src.Pix[i])
			sg += int(src.Pix[i+1])
			sb += int(src.Pix[i+2])
			sa += int(src.Pix[i+3])
		}
		for y := 0; y < h; y++ {
			o := y*dst.Stride + col
			dst.Pix[o] = uint8(sr / n)
			dst.Pix[o+1] = uint8(sg / n)
			dst.Pix[o+2] = uint8(sb / n)
			dst.Pix[o+3] = uint8(sa / n)

			add := clampInt(y+radius+1, 0, h-1)*src.Stride + col
			sub := clampInt(y-radius, 0, h-1)*src.Stride + col
			sr += int(src.Pix[add]) - int(src.Pix[sub])
			sg += int(src.Pix[add+1]) - int(src.Pix[sub+1])
			sb += int(src.Pix[add+2]) - int(src.Pix[sub+2])
			sa += int(src.Pix[add+3]) - int(src.Pix[sub+3])
		}
	}
}
