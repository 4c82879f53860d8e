package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
)

type request struct {
	route router.Route
	opts  router.NavOptions
}

type recorder struct {
	requests []request
}

func (r *recorder) NavigateTo(route router.Route, opts router.NavOptions) {
	r.requests = append(r.requests, request{route, opts})
}

var allNames = []string{"Kennedy", "John", "Mathew", "Sampson", "Anita", "Bright", "Freeman", "Camela", "Peter"}

func newController() (*ListController, *recorder) {
	rec := &recorder{}
	return NewListController(names.Default(), rec), rec
}

func TestListController_Initial(t *testing.T) {
	c, _ := newController()

	s := c.State()
	assert.Equal(t, "", s.Query)
	assert.Equal(t, allNames, s.Items)
	assert.Equal(t, 0, s.Focus)
	assert.False(t, s.ShowClear())
}

func TestListController_QueryScenarios(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"an", []string{"Anita", "Freeman"}},
		{"", allNames},
		{"ZZZ", []string{}},
		{"PE", []string{"Peter"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := newController()
			c.OnQueryChanged(tt.query)
			assert.Equal(t, tt.want, c.State().Items)
			assert.Equal(t, tt.query, c.State().Query)
		})
	}
}

func TestListController_Idempotent(t *testing.T) {
	c, _ := newController()

	var published []ListState
	c.Subscribe(func(s ListState) { published = append(published, s) })

	c.OnQueryChanged("am")
	once := c.State()
	c.OnQueryChanged("am")

	assert.Equal(t, once, c.State())
	assert.Len(t, published, 1)
}

func TestListController_ClearQuery(t *testing.T) {
	c, _ := newController()
	c.OnQueryChanged("jo")
	require.True(t, c.State().ShowClear())

	c.OnClearQuery()

	assert.Equal(t, "", c.State().Query)
	assert.Equal(t, allNames, c.State().Items)
}

func TestListController_ItemSelectedRequestsNavigation(t *testing.T) {
	c, rec := newController()

	c.OnItemSelected("Peter")

	require.Len(t, rec.requests, 1)
	assert.Equal(t, router.DetailRoute{Name: "Peter"}, rec.requests[0].route)
	assert.Equal(t, SelectionOptions(), rec.requests[0].opts)
	assert.Equal(t, "", c.State().Query, "selection does not change list state")
}

func TestListController_SelectionOptions(t *testing.T) {
	opts := SelectionOptions()

	assert.Equal(t, router.KindMain, opts.PopUpTo)
	assert.False(t, opts.Inclusive)
	assert.True(t, opts.SaveState)
	assert.True(t, opts.LaunchSingleTop)
	assert.True(t, opts.RestoreState)
}

func TestListController_NilRequester(t *testing.T) {
	c := NewListController(names.Default(), nil)
	assert.NotPanics(t, func() { c.OnItemSelected("John") })
}

func TestListController_Focus(t *testing.T) {
	c, rec := newController()

	c.MoveFocus(1)
	c.MoveFocus(1)
	assert.Equal(t, 2, c.State().Focus)

	c.MoveFocus(100)
	assert.Equal(t, len(allNames)-1, c.State().Focus)

	c.MoveFocus(-100)
	assert.Equal(t, 0, c.State().Focus)

	c.MoveFocus(4)
	c.SelectFocused()
	require.Len(t, rec.requests, 1)
	assert.Equal(t, router.DetailRoute{Name: "Anita"}, rec.requests[0].route)
}

func TestListController_FocusClampedByFilter(t *testing.T) {
	c, rec := newController()
	c.MoveFocus(8)

	c.OnQueryChanged("an")
	assert.Equal(t, 1, c.State().Focus)
	name, ok := c.State().Focused()
	require.True(t, ok)
	assert.Equal(t, "Freeman", name)

	c.OnQueryChanged("ZZZ")
	assert.Equal(t, -1, c.State().Focus)
	c.SelectFocused()
	c.MoveFocus(1)
	assert.Empty(t, rec.requests)

	c.OnClearQuery()
	assert.Equal(t, 0, c.State().Focus)
}

func TestListController_SnapshotRestore(t *testing.T) {
	c, _ := newController()
	c.OnQueryChanged("e")
	c.MoveFocus(2)
	saved := c.Snapshot()

	c.OnQueryChanged("zzz")
	c.Restore(saved)

	assert.Equal(t, saved, c.State())
}

func TestListController_StateIsACopy(t *testing.T) {
	c, _ := newController()

	s := c.State()
	s.Items[0] = "changed"

	assert.Equal(t, "Kennedy", c.State().Items[0])
}

type mutableRepo struct {
	names []string
}

func (m *mutableRepo) Names() []string {
	return append([]string(nil), m.names...)
}

func TestListController_RestoreRereadsRepository(t *testing.T) {
	repo := &mutableRepo{names: []string{"Anita"}}
	c := NewListController(repo, nil)
	c.OnQueryChanged("a")
	snapshot := c.Snapshot()
	require.Equal(t, []string{"Anita"}, snapshot.Items)

	repo.names = []string{"Anita", "Ada", "Bright"}
	c.Restore(snapshot)

	assert.Equal(t, "a", c.State().Query)
	assert.Equal(t, []string{"Anita", "Ada"}, c.State().Items)
}

func TestListController_SubscribeCancel(t *testing.T) {
	c, _ := newController()

	count := 0
	cancel := c.Subscribe(func(ListState) { count++ })

	c.OnQueryChanged("a")
	cancel()
	c.OnQueryChanged("b")

	assert.Equal(t, 1, count)
}

func TestListController_NavigatorRoundTrip(t *testing.T) {
	nav := router.NewNavigator()
	c := NewListController(names.Default(), nav)

	c.OnQueryChanged("pe")
	nav.SetState(c.Snapshot())
	c.OnItemSelected("Peter")
	require.Equal(t, router.DetailRoute{Name: "Peter"}, nav.Current().Route)

	// the detail screen replaces what the user sees; a new controller
	// simulates the list being recreated on return
	c = NewListController(names.Default(), nav)
	require.True(t, nav.NavigateBack())

	saved, ok := nav.Current().State.(ListState)
	require.True(t, ok)
	c.Restore(saved)

	assert.Equal(t, router.MainRoute{}, nav.Current().Route)
	assert.Equal(t, "pe", c.State().Query)
	assert.Equal(t, []string{"Peter"}, c.State().Items)
}
