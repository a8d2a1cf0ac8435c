package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independently of the platform backend.
type Key int

// Key constants. KeyUnknown is never reported by a backend.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyShift
	KeyControl
	KeyAlt
	keyCount
)

var keyNames = func() [keyCount]string {
	var names [keyCount]string
	names[KeyUnknown] = "unknown"
	for k := KeyA; k <= KeyZ; k++ {
		names[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		names[k] = string(rune('0' + int(k-Key0)))
	}
	names[KeyUp] = "up"
	names[KeyDown] = "down"
	names[KeyLeft] = "left"
	names[KeyRight] = "right"
	names[KeySpace] = "space"
	names[KeyEnter] = "enter"
	names[KeyEscape] = "escape"
	names[KeyTab] = "tab"
	names[KeyBackspace] = "backspace"
	names[KeyShift] = "shift"
	names[KeyControl] = "control"
	names[KeyAlt] = "alt"
	return names
}()

// String returns the lower-case name of the key.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey returns the key with the given name. Matching is case-insensitive
// and accepts "esc" and "return" as aliases.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		return KeyEscape, nil
	case "return":
		return KeyEnter, nil
	}
	for k := KeyA; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// AllKeys returns every known key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
