package placeholders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/barn/internal/atlas"
)

// Facing is the direction the debug boy looks.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

const debugBoyColumns = 4

// debugBoyRows lists the sheet rows top to bottom.
var debugBoyRows = []struct {
	clip     string
	facing   Facing
	frames   int
	duration float64
}{
	{"idle", FacingDown, 2, 0.5},
	{"walk_down", FacingDown, 4, 0.15},
	{"walk_up", FacingUp, 4, 0.15},
	{"walk_left", FacingLeft, 4, 0.15},
	{"walk_right", FacingRight, 4, 0.15},
}

// CreateDebugBoy draws one frame of the walking figure. step selects the
// leg pose; odd steps are the passing pose.
func CreateDebugBoy(facing Facing, step int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	// Legs
	left, right := 0, 0
	switch step % 4 {
	case 1:
		left = -2
	case 3:
		right = -2
	}
	FillRect(img, image.Rect(11, 22, 15, 30+left), Palette.Trousers)
	FillRect(img, image.Rect(17, 22, 21, 30+right), Palette.Trousers)

	// Body and head
	FillRect(img, image.Rect(9, 13, 23, 23), Palette.Shirt)
	FillCircle(img, 16, 8, 6, Palette.Skin)

	// Eyes show the facing
	eye := func(x, y int) { FillRect(img, image.Rect(x, y, x+2, y+2), Palette.Eye) }
	switch facing {
	case FacingDown:
		eye(12, 7)
		eye(18, 7)
	case FacingLeft:
		eye(11, 7)
	case FacingRight:
		eye(19, 7)
	case FacingUp:
		FillRect(img, image.Rect(11, 3, 21, 7), Darken(Palette.Skin, 0.6))
	}
	return img
}

// CreateDebugBoyAtlas lays out every clip of the debug boy, one clip per row.
func CreateDebugBoyAtlas() *image.RGBA {
	tiles := make([]*image.RGBA, debugBoyColumns*len(debugBoyRows))
	for row, r := range debugBoyRows {
		for f := 0; f < r.frames; f++ {
			tiles[row*debugBoyColumns+f] = CreateDebugBoy(r.facing, f)
		}
	}
	return CreateAtlas(tiles, debugBoyColumns)
}

// DebugBoySheet describes CreateDebugBoyAtlas.
func DebugBoySheet() atlas.SheetConfig {
	cfg := atlas.SheetConfig{
		Name:       "debug_boy",
		ImagePath:  SheetImage,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Clips:      make(map[string]atlas.ClipDefinition),
	}
	for row, r := range debugBoyRows {
		cfg.Tiles = append(cfg.Tiles, atlas.TileDefinition{Name: r.clip, AtlasX: 0, AtlasY: row})
		clip := atlas.ClipDefinition{Repeat: true, FrameDuration: r.duration}
		for f := 0; f < r.frames; f++ {
			clip.Frames = append(clip.Frames, atlas.CellRef{AtlasX: f, AtlasY: row})
		}
		cfg.Clips[r.clip] = clip
	}
	return cfg
}

// SaveSheet writes cfg as YAML to path.
func SaveSheet(cfg atlas.SheetConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode sheet %s: %w", cfg.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
