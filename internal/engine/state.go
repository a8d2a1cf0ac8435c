package engine

import "chosenoffset.com/barn/internal/render"

// State is one scene of the game. The Game owns exactly one current state.
//
// OnEnter must (re)initialise everything the state needs; a state may be
// entered again after it was exited and must not rely on leftovers from the
// previous activation. An OnEnter error is fatal.
//
// Update returns the next state, or nil to stay. When a next state is
// returned, the current state's OnExit and the next state's OnEnter run
// before the same frame is rendered with the next state.
//
// OnExit is not guaranteed to run when the process terminates.
type State interface {
	Name() string
	OnEnter(ctx *Context) error
	Update(ctx *Context, dt float64) (State, error)
	Render(ctx *Context, r render.Renderer)
	OnExit(ctx *Context)
}
