package graphics

// Sprite is a textured rectangle with optional named animations. When no
// animation is playing it shows its base source and destination rects.
type Sprite struct {
	src, dst   Rect
	animations map[string]*Animation
	active     string
}

// NewSprite creates a sprite with the given base rects.
func NewSprite(src, dst Rect) *Sprite {
	return &Sprite{
		src:        src,
		dst:        dst,
		animations: make(map[string]*Animation),
	}
}

// AddAnimation registers a clip under name, replacing any existing clip.
func (s *Sprite) AddAnimation(name string, a *Animation) {
	s.animations[name] = a
}

// Animation returns the clip registered under name.
func (s *Sprite) Animation(name string) (*Animation, bool) {
	a, ok := s.animations[name]
	return a, ok
}

// Play makes the named clip active and sets its repeat flag. Unknown names
// are ignored. The clip keeps its elapsed time; call Reset on it to restart.
func (s *Sprite) Play(name string, repeat bool) {
	a, ok := s.animations[name]
	if !ok {
		return
	}
	a.SetRepeat(repeat)
	s.active = name
}

// Stop deactivates the current clip so the base rects are shown.
func (s *Sprite) Stop() {
	s.active = ""
}

// Active returns the name of the playing clip.
func (s *Sprite) Active() (string, bool) {
	return s.active, s.active != ""
}

// Tick advances the playing clip.
func (s *Sprite) Tick(dt float64) {
	if a := s.current(); a != nil {
		a.Tick(dt)
	}
}

// SetBase replaces the base rects.
func (s *Sprite) SetBase(src, dst Rect) {
	s.src, s.dst = src, dst
}

// CurrentSrc returns the source rect to draw this frame.
func (s *Sprite) CurrentSrc() Rect {
	if a := s.current(); a != nil {
		return a.CurrentFrame().Src
	}
	return s.src
}

// CurrentDst returns the destination rect to draw this frame.
func (s *Sprite) CurrentDst() Rect {
	if a := s.current(); a != nil {
		return a.CurrentFrame().Dst
	}
	return s.dst
}

func (s *Sprite) current() *Animation {
	if s.active == "" {
		return nil
	}
	return s.animations[s.active]
}
