package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chosenoffset.com/barn/internal/input"
)

// KeyMap binds terminal key messages to engine keys. Terminals do not report
// bare modifier keys, so Shift, Control and Alt are never produced.
type KeyMap struct {
	// Close asks the game to shut down, like closing a window.
	Close key.Binding

	keys []keyBinding
}

type keyBinding struct {
	binding key.Binding
	key     input.Key
}

// DefaultKeyMap returns the bindings for letters, digits, arrows and the
// common editing keys.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	bind := func(k input.Key, names ...string) {
		km.keys = append(km.keys, keyBinding{binding: key.NewBinding(key.WithKeys(names...)), key: k})
	}

	for k := input.KeyA; k <= input.KeyZ; k++ {
		bind(k, k.String(), strings.ToUpper(k.String()))
	}
	for k := input.Key0; k <= input.Key9; k++ {
		bind(k, k.String())
	}

	bind(input.KeyUp, "up")
	bind(input.KeyDown, "down")
	bind(input.KeyLeft, "left")
	bind(input.KeyRight, "right")
	bind(input.KeySpace, " ", "space")
	bind(input.KeyEnter, "enter")
	bind(input.KeyEscape, "esc")
	bind(input.KeyTab, "tab", "shift+tab")
	bind(input.KeyBackspace, "backspace")

	return km
}

// Lookup returns the engine key bound to msg.
func (km KeyMap) Lookup(msg tea.KeyMsg) (input.Key, bool) {
	for _, b := range km.keys {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return input.KeyUnknown, false
}
