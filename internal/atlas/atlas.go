// Package atlas loads sprite-sheet definitions and builds animated sprites from them.
package atlas

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/barn/internal/graphics"
)

// TileDefinition names a single cell of the sheet.
type TileDefinition struct {
	Name   string `yaml:"name"`    // Semantic name (e.g. "idle")
	AtlasX int    `yaml:"atlas_x"` // Column in cells
	AtlasY int    `yaml:"atlas_y"` // Row in cells
}

// CellRef points at one cell of a clip.
type CellRef struct {
	AtlasX   int     `yaml:"atlas_x"`
	AtlasY   int     `yaml:"atlas_y"`
	Duration float64 `yaml:"duration,omitempty"` // Overrides the clip's frame_duration
}

// ClipDefinition describes a named animation clip.
type ClipDefinition struct {
	Repeat        bool      `yaml:"repeat"`
	FrameDuration float64   `yaml:"frame_duration"`
	Frames        []CellRef `yaml:"frames"`
}

// SheetConfig is the YAML layout of a sprite sheet.
type SheetConfig struct {
	Name       string                    `yaml:"name"`
	ImagePath  string                    `yaml:"image_path"`  // Texture path, relative to the asset root
	TileWidth  int                       `yaml:"tile_width"`  // Cell width in pixels
	TileHeight int                       `yaml:"tile_height"` // Cell height in pixels
	Tiles      []TileDefinition          `yaml:"tiles"`
	Clips      map[string]ClipDefinition `yaml:"clips"`
}

// Atlas is a parsed sprite sheet.
type Atlas struct {
	Config      *SheetConfig
	TilesByName map[string]*TileDefinition
}

// Load reads and parses a sprite-sheet file.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes and validates a sprite-sheet definition.
func Parse(data []byte) (*Atlas, error) {
	var cfg SheetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.TileWidth <= 0 || cfg.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", cfg.TileWidth, cfg.TileHeight)
	}
	if cfg.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required")
	}
	for name, clip := range cfg.Clips {
		if len(clip.Frames) == 0 {
			return nil, fmt.Errorf("clip %s has no frames", name)
		}
		for i, f := range clip.Frames {
			if f.Duration <= 0 && clip.FrameDuration <= 0 {
				return nil, fmt.Errorf("clip %s frame %d has no duration", name, i)
			}
		}
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range cfg.Tiles {
		tile := &cfg.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Atlas{Config: &cfg, TilesByName: tilesByName}, nil
}

// GetTile returns a tile definition by name.
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// CellRect returns the pixel rect of the cell at column x, row y.
func (a *Atlas) CellRect(x, y int) graphics.Rect {
	w, h := a.Config.TileWidth, a.Config.TileHeight
	return graphics.R(x*w, y*h, w, h)
}

// TileRect returns the pixel rect of a named tile.
func (a *Atlas) TileRect(name string) (graphics.Rect, error) {
	tile, ok := a.GetTile(name)
	if !ok {
		return graphics.Rect{}, fmt.Errorf("tile not found: %s", name)
	}
	return a.CellRect(tile.AtlasX, tile.AtlasY), nil
}

// ClipNames returns the clip names in sorted order.
func (a *Atlas) ClipNames() []string {
	names := make([]string, 0, len(a.Config.Clips))
	for name := range a.Config.Clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clip builds the named animation drawn into dst.
func (a *Atlas) Clip(name string, dst graphics.Rect) (*graphics.Animation, error) {
	def, ok := a.Config.Clips[name]
	if !ok {
		return nil, fmt.Errorf("clip not found: %s", name)
	}
	frames := make([]graphics.Frame, len(def.Frames))
	for i, ref := range def.Frames {
		d := ref.Duration
		if d <= 0 {
			d = def.FrameDuration
		}
		frames[i] = graphics.Frame{Src: a.CellRect(ref.AtlasX, ref.AtlasY), Dst: dst, Duration: d}
	}
	anim, err := graphics.NewAnimation(frames, def.Repeat)
	if err != nil {
		return nil, fmt.Errorf("clip %s: %w", name, err)
	}
	return anim, nil
}

// NewSprite builds a sprite drawn at dst whose base frame is the named tile
// and which carries every clip of the sheet.
func (a *Atlas) NewSprite(baseTile string, dst graphics.Rect) (*graphics.Sprite, error) {
	src, err := a.TileRect(baseTile)
	if err != nil {
		return nil, err
	}
	sprite := graphics.NewSprite(src, dst)
	for _, name := range a.ClipNames() {
		anim, err := a.Clip(name, dst)
		if err != nil {
			return nil, err
		}
		sprite.AddAnimation(name, anim)
	}
	return sprite, nil
}
