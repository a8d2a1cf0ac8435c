// Package input tracks keyboard state across frames.
package input

// Reader is the read-only view of keyboard state handed to game states.
type Reader interface {
	IsPressed(key Key) bool
	IsJustPressed(key Key) bool
	IsJustReleased(key Key) bool
}

// Keyboard keeps the current and previous pressed state of every key that has
// been reported. Keys never reported count as released.
//
// The platform backend calls SetKey as events arrive; the scheduler calls
// Update once at the end of each frame so that previous reflects the state as
// of the prior frame's end. Keyboard is not safe for concurrent use.
type Keyboard struct {
	current  map[Key]bool
	previous map[Key]bool
}

// NewKeyboard creates a keyboard with no keys pressed.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		current:  make(map[Key]bool),
		previous: make(map[Key]bool),
	}
}

// SetKey records a key transition.
func (k *Keyboard) SetKey(key Key, pressed bool) {
	k.current[key] = pressed
}

// Update copies the current state into the previous state.
func (k *Keyboard) Update() {
	clear(k.previous)
	for key, pressed := range k.current {
		k.previous[key] = pressed
	}
}

// IsPressed reports whether the key is currently held.
func (k *Keyboard) IsPressed(key Key) bool {
	return k.current[key]
}

// IsJustPressed reports whether the key went down since the last Update.
func (k *Keyboard) IsJustPressed(key Key) bool {
	return k.current[key] && !k.previous[key]
}

// IsJustReleased reports whether the key went up since the last Update.
func (k *Keyboard) IsJustReleased(key Key) bool {
	return !k.current[key] && k.previous[key]
}
