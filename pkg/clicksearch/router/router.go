package router

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoScreen is returned by Run when the current route has no registered screen.
var ErrNoScreen = errors.New("router: no screen registered")

// Action tells the router what to do after a screen returns.
type Action int

const (
	// ActionNavigate moves to Outcome.Route using Outcome.Options.
	ActionNavigate Action = iota
	// ActionBack pops the current entry.
	ActionBack
	// ActionExit stops the router.
	ActionExit
)

// Outcome is what a screen hands back when it finishes.
type Outcome struct {
	Action  Action
	Route   Route
	Options NavOptions
	// Resume is attached to the entry being left, so the screen can
	// restore itself when the user comes back to it.
	Resume any
}

// Navigate is shorthand for an ActionNavigate outcome.
func Navigate(route Route, opts NavOptions, resume any) Outcome {
	return Outcome{Action: ActionNavigate, Route: route, Options: opts, Resume: resume}
}

// Back is shorthand for an ActionBack outcome.
func Back() Outcome {
	return Outcome{Action: ActionBack}
}

// Exit is shorthand for an ActionExit outcome.
func Exit() Outcome {
	return Outcome{Action: ActionExit}
}

// ScreenFunc runs a screen until the user leaves it. It receives the stack
// entry it was opened for, including any state attached on a previous visit.
type ScreenFunc func(ctx context.Context, entry Entry) (Outcome, error)

// RootBackFunc is called when the user goes back from the root entry.
// Returning true stops the router.
type RootBackFunc func() bool

// Router runs blocking screen functions on top of a Navigator.
// Each screen reports an Outcome and the router applies it to the stack,
// so all stack mutations happen in one place.
type Router struct {
	screens    map[Kind]ScreenFunc
	navigator  *Navigator
	onRootBack RootBackFunc
}

// New creates a Router over a fresh Navigator.
func New() *Router {
	return NewWithNavigator(NewNavigator())
}

// NewWithNavigator creates a Router that drives an existing navigator.
func NewWithNavigator(nav *Navigator) *Router {
	return &Router{
		screens:   make(map[Kind]ScreenFunc),
		navigator: nav,
	}
}

// Register adds a screen for every route of the given kind.
func (r *Router) Register(kind Kind, fn ScreenFunc) *Router {
	r.screens[kind] = fn
	return r
}

// OnRootBack sets the hook consulted when back is requested at the root.
// Without a hook, back at the root stops the router.
func (r *Router) OnRootBack(fn RootBackFunc) *Router {
	r.onRootBack = fn
	return r
}

// Run shows the current route's screen and applies its outcome until a
// screen exits, back is accepted at the root, or ctx is done.
func (r *Router) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry := r.navigator.Current()

		fn, ok := r.screens[entry.Route.Kind()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoScreen, entry.Route.Path())
		}

		outcome, err := fn(ctx, entry)
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", entry.Route.Path(), err)
		}

		r.navigator.SetState(outcome.Resume)

		switch outcome.Action {
		case ActionNavigate:
			if outcome.Route == nil {
				return fmt.Errorf("router: screen %s: navigate without a route", entry.Route.Path())
			}
			r.navigator.NavigateTo(outcome.Route, outcome.Options)
		case ActionBack:
			if !r.navigator.NavigateBack() {
				if r.onRootBack == nil || r.onRootBack() {
					return nil
				}
			}
		case ActionExit:
			return nil
		}
	}
}

// Navigator returns the navigator the router drives.
func (r *Router) Navigator() *Navigator {
	return r.navigator
}
