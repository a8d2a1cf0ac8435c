package placeholders

import (
	"image"
	"image/color"
	"math"
)

// CreateGradient fades vertically from top to bottom.
func CreateGradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		FillRect(img, image.Rect(0, y, w, y+1), Lerp(top, bottom, t))
	}
	return img
}

// CreateMoon draws a shaded full moon on a transparent size x size image.
func CreateMoon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := size / 2
	FillCircle(img, c, c, c-2, Palette.Moon)

	// A few craters
	FillCircle(img, c-size/6, c-size/8, size/10, Palette.MoonShade)
	FillCircle(img, c+size/5, c+size/8, size/14, Palette.MoonShade)
	FillCircle(img, c-size/12, c+size/4, size/16, Palette.MoonShade)
	return img
}

// CreateCloud draws a strip of overlapping puffs on a transparent image.
func CreateCloud(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := h / 3
	for x := r; x < w-r; x += r {
		// Puffs bob up and down along the strip
		dy := int(math.Round(math.Sin(float64(x)/float64(w)*4*math.Pi) * float64(h) / 8))
		FillCircle(img, x, h/2+dy, r, Palette.Cloud)
	}
	return img
}

// CreateGround draws a snow strip with a wavy shadow line.
func CreateGround(w, h int) *image.RGBA {
	img := CreateSolid(w, h, Palette.Snow)
	for x := 0; x < w; x++ {
		top := h/3 + int(math.Round(math.Sin(float64(x)/16)*2))
		FillRect(img, image.Rect(x, top, x+1, top+2), Palette.SnowShadow)
	}
	return img
}
