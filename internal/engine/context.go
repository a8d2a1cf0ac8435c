package engine

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/atlas"
	"chosenoffset.com/barn/internal/audio"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

// Context is handed to every state callback. It exposes input, audio and
// cached resources. Every resource is loaded at most once per run.
type Context struct {
	keyboard *input.Keyboard
	audio    *audio.Manager
	loader   render.ResourceLoader
	root     string
	logger   *log.Logger
	quit     func()

	textures map[string]render.Texture
	fonts    map[graphics.FontDetails]render.Font
	sheets   map[string]*atlas.Atlas

	width, height int
}

func newContext(kb *input.Keyboard, am *audio.Manager, loader render.ResourceLoader, root string, logger *log.Logger, quit func()) *Context {
	return &Context{
		keyboard: kb,
		audio:    am,
		loader:   loader,
		root:     root,
		logger:   logger,
		quit:     quit,
		textures: make(map[string]render.Texture),
		fonts:    make(map[graphics.FontDetails]render.Font),
		sheets:   make(map[string]*atlas.Atlas),
	}
}

// Input returns the keyboard state for the current frame.
func (c *Context) Input() input.Reader {
	return c.keyboard
}

// Logger returns the engine logger.
func (c *Context) Logger() *log.Logger {
	return c.logger
}

// ScreenSize returns the logical screen size.
func (c *Context) ScreenSize() (width, height int) {
	return c.width, c.height
}

// Quit stops the game after the current frame.
func (c *Context) Quit() {
	c.quit()
}

// AssetPath resolves path against the asset root. Absolute paths are
// returned unchanged.
func (c *Context) AssetPath(path string) string {
	if c.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.root, path)
}

// LoadTexture returns the texture at path, loading it on first use.
func (c *Context) LoadTexture(path string) (render.Texture, error) {
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}
	tex, err := c.loader.LoadTexture(c.AssetPath(path))
	if err != nil {
		return nil, &ResourceLoadError{Kind: "texture", Path: path, Err: err}
	}
	c.textures[path] = tex
	c.logger.Debug("loaded texture", "path", path)
	return tex, nil
}

// LoadFont returns the font described by details, loading it on first use.
func (c *Context) LoadFont(details graphics.FontDetails) (render.Font, error) {
	if f, ok := c.fonts[details]; ok {
		return f, nil
	}
	resolved := details
	if resolved.Path != "" {
		resolved.Path = c.AssetPath(resolved.Path)
	}
	f, err := c.loader.LoadFont(resolved)
	if err != nil {
		return nil, &ResourceLoadError{Kind: "font", Path: details.Path, Err: err}
	}
	c.fonts[details] = f
	c.logger.Debug("loaded font", "path", details.Path, "size", details.Size)
	return f, nil
}

// LoadSheet returns the sprite sheet at path, parsing it on first use.
func (c *Context) LoadSheet(path string) (*atlas.Atlas, error) {
	if a, ok := c.sheets[path]; ok {
		return a, nil
	}
	a, err := atlas.Load(c.AssetPath(path))
	if err != nil {
		return nil, &ResourceLoadError{Kind: "sheet", Path: path, Err: err}
	}
	c.sheets[path] = a
	return a, nil
}

// LoadSound loads the file at path under name. Loading an existing name is a
// no-op.
func (c *Context) LoadSound(name, path string, loop bool) error {
	if c.audio.Loaded(name) {
		return nil
	}
	if err := c.audio.Load(name, c.AssetPath(path), loop); err != nil {
		return &ResourceLoadError{Kind: "sound", Path: path, Err: err}
	}
	c.logger.Debug("loaded sound", "name", name, "path", path, "loop", loop)
	return nil
}

// PlaySound starts the named sound.
func (c *Context) PlaySound(name string) error {
	return c.audio.Play(name)
}

// PauseSound pauses the named sound.
func (c *Context) PauseSound(name string) {
	c.audio.Pause(name)
}

// ResumeSound resumes the named sound.
func (c *Context) ResumeSound(name string) {
	c.audio.Resume(name)
}

// StopSound stops the named sound and rewinds it.
func (c *Context) StopSound(name string) error {
	return c.audio.Stop(name)
}

// SetVolume sets the named sound's volume in [0, 1].
func (c *Context) SetVolume(name string, volume float64) {
	c.audio.SetVolume(name, volume)
}

// IsPlaying reports whether the named sound is playing.
func (c *Context) IsPlaying(name string) bool {
	return c.audio.IsPlaying(name)
}
