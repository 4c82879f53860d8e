package router

import "log/slog"

// NavOptions controls how NavigateTo changes the stack.
type NavOptions struct {
	// PopUpTo pops entries above the topmost entry of this kind before
	// navigating. KindNone disables popping.
	PopUpTo Kind
	// Inclusive also pops the matched entry itself. The root is never popped.
	Inclusive bool
	// SaveState snapshots the state of every popped entry under its route path.
	SaveState bool
	// LaunchSingleTop reuses the top entry when it has the same kind as the
	// target, replacing its parameters instead of pushing a duplicate.
	LaunchSingleTop bool
	// RestoreState reattaches a snapshot saved for the target path, if any.
	RestoreState bool
}

// Navigator owns the navigation stack. The current route is always the top
// entry, and the stack is never empty.
//
// A Navigator is not safe for concurrent use; all calls are expected from the
// single UI event loop.
type Navigator struct {
	stack       *Stack
	subscribers map[int]func(Entry)
	nextID      int
	logger      *slog.Logger
}

// NewNavigator creates a navigator whose stack holds only MainRoute.
func NewNavigator() *Navigator {
	n := &Navigator{
		stack:       NewStack(),
		subscribers: make(map[int]func(Entry)),
		logger:      slog.New(slog.DiscardHandler),
	}
	n.stack.Push(MainRoute{}, nil)
	return n
}

// SetLogger routes transition logs to logger. A nil logger disables logging.
func (n *Navigator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	n.logger = logger
}

// NavigateTo moves to route following opts.
//
// The steps run in order: popUpTo, launchSingleTop, restoreState, push.
// A nil route is ignored.
func (n *Navigator) NavigateTo(route Route, opts NavOptions) {
	if route == nil {
		n.logger.Debug("ignoring navigation to nil route")
		return
	}
	from := n.stack.Peek().Route

	if opts.PopUpTo != KindNone {
		n.popUpTo(opts.PopUpTo, opts.Inclusive, opts.SaveState)
	}

	target := route.Path()

	if top := n.stack.Peek(); opts.LaunchSingleTop && top.Route.Kind() == route.Kind() {
		previous := top.Route.Path()
		top.Route = route
		restored := false
		if opts.RestoreState {
			var state any
			if state, restored = n.stack.Take(target); restored {
				top.State = state
			}
		}
		if !restored && previous != target {
			top.State = nil
		}
		n.logger.Debug("navigate single top", "from", from.Path(), "to", target, "depth", n.stack.Len())
		n.notify()
		return
	}

	var state any
	if opts.RestoreState {
		if saved, ok := n.stack.Take(target); ok {
			state = saved
			n.logger.Debug("restored saved state", "route", target)
		}
	}

	n.stack.Push(route, state)
	n.logger.Debug("navigate", "from", from.Path(), "to", target, "depth", n.stack.Len())
	n.notify()
}

func (n *Navigator) popUpTo(kind Kind, inclusive, saveState bool) {
	idx := n.stack.IndexOf(kind)
	if idx < 0 {
		return
	}

	keep := idx + 1
	if inclusive {
		keep = idx
	}
	if keep < 1 {
		keep = 1
	}

	for n.stack.Len() > keep {
		entry := n.stack.Pop()
		if saveState {
			n.stack.Save(entry.Route.Path(), entry.State)
		}
		n.logger.Debug("popped", "route", entry.Route.Path(), "saved", saveState)
	}
}

// NavigateBack pops the top entry. At the root it does nothing and returns
// false, signalling that the host may leave the application.
func (n *Navigator) NavigateBack() bool {
	if n.stack.Len() <= 1 {
		n.logger.Debug("navigate back at root")
		return false
	}

	entry := n.stack.Pop()
	n.logger.Debug("navigate back", "from", entry.Route.Path(), "to", n.stack.Peek().Route.Path(), "depth", n.stack.Len())
	n.notify()
	return true
}

// Current returns the top entry.
func (n *Navigator) Current() Entry {
	return *n.stack.Peek()
}

// Depth returns the number of live entries.
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// Entries returns a copy of the live stack, bottom first.
func (n *Navigator) Entries() []Entry {
	return n.stack.Entries()
}

// SetState attaches UI state to the current entry so it is available again
// when the entry becomes current after a back navigation.
func (n *Navigator) SetState(state any) {
	n.stack.Peek().State = state
}

// SavedState reports the snapshot stored for path by a SaveState pop.
func (n *Navigator) SavedState(path string) (any, bool) {
	return n.stack.Saved(path)
}

// Subscribe registers fn to be called with the current entry after every
// stack change. The returned function removes the subscription.
func (n *Navigator) Subscribe(fn func(Entry)) (cancel func()) {
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn
	return func() {
		delete(n.subscribers, id)
	}
}

func (n *Navigator) notify() {
	current := n.Current()
	for i := 0; i < n.nextID; i++ {
		if fn, ok := n.subscribers[i]; ok {
			fn(current)
		}
	}
}
