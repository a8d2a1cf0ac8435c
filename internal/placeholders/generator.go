// Package placeholders draws the stand-in textures, sprite sheet and music
// track used by the example scenes.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// TileSize is the cell size of the debug boy sheet.
const TileSize = 32

// Palette holds the colours of the generated assets.
var Palette = struct {
	SkyTop     color.RGBA
	SkyBottom  color.RGBA
	Moon       color.RGBA
	MoonShade  color.RGBA
	Cloud      color.RGBA
	Snow       color.RGBA
	SnowShadow color.RGBA

	Skin     color.RGBA
	Shirt    color.RGBA
	Trousers color.RGBA
	Eye      color.RGBA
}{
	SkyTop:     color.RGBA{20, 24, 60, 255},    // Deep evening blue
	SkyBottom:  color.RGBA{190, 110, 120, 255}, // Dusky pink horizon
	Moon:       color.RGBA{245, 240, 215, 255},
	MoonShade:  color.RGBA{205, 200, 180, 255},
	Cloud:      color.RGBA{235, 235, 245, 255},
	Snow:       color.RGBA{250, 250, 255, 255},
	SnowShadow: color.RGBA{200, 210, 230, 255},

	Skin:     color.RGBA{240, 200, 160, 255},
	Shirt:    color.RGBA{220, 60, 60, 255},
	Trousers: color.RGBA{50, 70, 160, 255},
	Eye:      color.RGBA{20, 20, 20, 255},
}

// Asset paths, relative to the asset root.
const (
	GradientPath = "images/evening_gradient.png"
	MoonPath     = "images/moon.png"
	CloudPath    = "images/cloud.png"
	GroundPath   = "images/snow_ground.png"
	SheetPath    = "sheets/debug_boy.yaml"
	SheetImage   = "images/debug_boy.png"
	ThemePath    = "audio/theme.wav"
)

// Paths lists every asset Generate writes, in write order.
var Paths = []string{GradientPath, MoonPath, CloudPath, GroundPath, SheetImage, SheetPath, ThemePath}

// Generate writes every placeholder asset below root and returns the
// written paths relative to root.
func Generate(root string) ([]string, error) {
	images := []struct {
		path string
		img  image.Image
	}{
		{GradientPath, CreateGradient(512, 512, Palette.SkyTop, Palette.SkyBottom)},
		{MoonPath, CreateMoon(64)},
		{CloudPath, CreateCloud(512, 64)},
		{GroundPath, CreateGround(512, 32)},
		{SheetImage, CreateDebugBoyAtlas()},
	}

	var written []string
	for _, img := range images {
		if err := SavePNG(img.img, filepath.Join(root, img.path)); err != nil {
			return written, err
		}
		written = append(written, img.path)
	}

	if err := SaveSheet(DebugBoySheet(), filepath.Join(root, SheetPath)); err != nil {
		return written, err
	}
	written = append(written, SheetPath)

	if err := SaveWAV(filepath.Join(root, ThemePath), Tone(DefaultTone)); err != nil {
		return written, err
	}
	written = append(written, ThemePath)
	return written, nil
}

// CreateSolid creates a w x h image filled with col.
func CreateSolid(w, h int, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// FillRect fills r of img with col.
func FillRect(img draw.Image, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

// FillCircle fills the disc centred at (cx, cy) with col.
func FillCircle(img draw.Image, cx, cy, radius int, col color.Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, col)
			}
		}
	}
}

// CreateAtlas lays tiles out in rows of columns cells. Nil tiles stay
// transparent.
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlas, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}
	return atlas
}

// SavePNG encodes img to path, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Lerp blends a towards b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
