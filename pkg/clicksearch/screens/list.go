package screens

import (
	"slices"

	"github.com/anunobi/clicksearch/pkg/clicksearch/filter"
	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
)

// Requester accepts navigation requests. The list controller never changes
// the stack itself; it asks the requester to.
type Requester interface {
	NavigateTo(route router.Route, opts router.NavOptions)
}

// SelectionOptions are the options used when an item is selected: pop back
// to the list, keep its state, reuse a detail entry already on top, and
// restore a previously saved detail state.
func SelectionOptions() router.NavOptions {
	return router.NavOptions{
		PopUpTo:         router.KindMain,
		SaveState:       true,
		LaunchSingleTop: true,
		RestoreState:    true,
	}
}

// ListState is a read-only snapshot of the list screen.
type ListState struct {
	Query string
	Items []string
	// Focus is the highlighted row for keypad input, -1 when Items is empty.
	Focus int
}

// ShowClear reports whether the clear affordance should be visible.
func (s ListState) ShowClear() bool {
	return s.Query != ""
}

// Focused returns the highlighted name, if any.
func (s ListState) Focused() (string, bool) {
	if s.Focus < 0 || s.Focus >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Focus], true
}

// ListController owns the query and the filtered view derived from it.
type ListController struct {
	repo   names.Repository
	nav    Requester
	source []string
	state  ListState
	subs   subscribers[ListState]
}

// NewListController creates a controller with an empty query, showing every
// name from repo.
func NewListController(repo names.Repository, nav Requester) *ListController {
	c := &ListController{
		repo: repo,
		nav:  nav,
	}
	c.source = repo.Names()
	c.state.Items = filter.Names(c.source, "")
	c.state.Focus = clampFocus(0, len(c.state.Items))
	return c
}

// OnQueryChanged replaces the query and recomputes the view immediately.
func (c *ListController) OnQueryChanged(text string) {
	if text == c.state.Query {
		return
	}
	c.state.Query = text
	c.recompute()
}

// OnClearQuery resets the query to the empty "no filter" state.
func (c *ListController) OnClearQuery() {
	c.OnQueryChanged("")
}

// OnItemSelected requests navigation to the detail screen for name.
func (c *ListController) OnItemSelected(name string) {
	if c.nav == nil {
		return
	}
	c.nav.NavigateTo(router.DetailRoute{Name: name}, SelectionOptions())
}

// MoveFocus moves the highlighted row by delta, clamped to the view.
func (c *ListController) MoveFocus(delta int) {
	if len(c.state.Items) == 0 {
		return
	}
	focus := clampFocus(c.state.Focus+delta, len(c.state.Items))
	if focus == c.state.Focus {
		return
	}
	c.state.Focus = focus
	c.subs.publish(c.State())
}

// SelectFocused selects the highlighted row. It does nothing on an empty view.
func (c *ListController) SelectFocused() {
	if name, ok := c.state.Focused(); ok {
		c.OnItemSelected(name)
	}
}

// State returns a snapshot of the current query and view.
func (c *ListController) State() ListState {
	return ListState{
		Query: c.state.Query,
		Items: slices.Clone(c.state.Items),
		Focus: c.state.Focus,
	}
}

// Snapshot returns the state to keep while the list screen is not shown.
func (c *ListController) Snapshot() ListState {
	return c.State()
}

// Restore reinstates a snapshot. The repository is read again and the view
// recomputed from the snapshot's query, so it reflects the names as they are now.
func (c *ListController) Restore(s ListState) {
	c.source = c.repo.Names()
	c.state.Query = s.Query
	c.state.Focus = s.Focus
	c.recompute()
}

// Subscribe registers fn to receive a snapshot after every change.
func (c *ListController) Subscribe(fn func(ListState)) (cancel func()) {
	return c.subs.add(fn)
}

func (c *ListController) recompute() {
	c.state.Items = filter.Names(c.source, c.state.Query)
	c.state.Focus = clampFocus(c.state.Focus, len(c.state.Items))
	c.subs.publish(c.State())
}

func clampFocus(focus, n int) int {
	if n == 0 {
		return -1
	}
	if focus < 0 {
		return 0
	}
	if focus >= n {
		return n - 1
	}
	return focus
}
