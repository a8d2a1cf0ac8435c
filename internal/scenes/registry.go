// Package scenes holds the example game states. Scenes register themselves
// in init() so the CLI and the menu can find them by name.
package scenes

import (
	"fmt"
	"sort"
	"sync"

	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/input"
)

// Params is passed to every scene factory.
type Params struct {
	// Seed feeds scenes that use randomness.
	Seed int64
}

// Factory creates a fresh scene.
type Factory func(p Params) engine.State

// Info describes a registered scene.
type Info struct {
	Name  string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// MenuName is the scene every demo returns to on Tab.
const MenuName = "menu"

// Register adds a scene factory. Panics if name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("scenes: scene %q already registered", name))
	}
	entries[name] = entry{title: title, factory: f}
}

// Create returns a new instance of the named scene.
func Create(name string, p Params) (engine.State, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scene %q not found", name)
	}
	return e.factory(p), nil
}

// List returns every registered scene sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{Name: name, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Exists reports whether name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

// backToMenu returns the menu when Tab was pressed this frame.
func backToMenu(ctx *engine.Context, p Params) engine.State {
	if !ctx.Input().IsJustPressed(input.KeyTab) {
		return nil
	}
	return newMenu(p)
}
