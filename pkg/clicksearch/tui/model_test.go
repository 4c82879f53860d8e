package tui

import (
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_StartsOnMainWithAllNames(t *testing.T) {
	m := New(names.Default())

	assert.Equal(t, router.MainRoute{}, m.nav.Current().Route)
	assert.Equal(t, names.Default().Names(), m.list.State().Items)
	assert.Contains(t, m.View(), constants.DefaultTitle)
	assert.Contains(t, m.View(), "Kennedy")
}

func TestWithTitle(t *testing.T) {
	m := New(names.Default(), WithTitle("People"))
	assert.Contains(t, m.View(), "People")

	m = New(names.Default(), WithTitle(""))
	assert.Contains(t, m.View(), constants.DefaultTitle)
}

func TestWithLogger(t *testing.T) {
	m := New(names.Default(), WithLogger(slog.New(slog.DiscardHandler)))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.nav.Depth())
}

func TestTyping_FiltersList(t *testing.T) {
	m, _ := press(t, New(names.Default()), typed("an"))

	assert.Equal(t, "an", m.input.Value())
	assert.Equal(t, []string{"Anita", "Freeman"}, m.list.State().Items)
	assert.NotContains(t, m.View(), "Kennedy")
	assert.NotContains(t, New(names.Default()).View(), "✕")
	assert.Contains(t, m.View(), "✕", "clear hint shown while the query is non-empty")
}

func TestBackspace_WidensList(t *testing.T) {
	m, _ := press(t, New(names.Default()), typed("ann"), tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "an", m.list.State().Query)
	assert.Equal(t, []string{"Anita", "Freeman"}, m.list.State().Items)
}

func TestEsc_ClearsNonEmptyQuery(t *testing.T) {
	m, cmd := press(t, New(names.Default()), typed("pet"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, isQuit(cmd))
	assert.Equal(t, "", m.input.Value())
	assert.Len(t, m.list.State().Items, 9)
}

func TestEsc_AtRootWithEmptyQueryQuits(t *testing.T) {
	m, cmd := press(t, New(names.Default()), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
	assert.Equal(t, 1, m.nav.Depth())
}

func TestCtrlC_Quits(t *testing.T) {
	_, cmd := press(t, New(names.Default()), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestEnter_OpensFocusedName(t *testing.T) {
	m, _ := press(t, New(names.Default()),
		typed("an"),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, router.DetailRoute{Name: "Freeman"}, m.nav.Current().Route)
	assert.Equal(t, 2, m.nav.Depth())
	assert.Contains(t, m.View(), "Freeman")
}

func TestEnter_OnEmptyViewStaysOnList(t *testing.T) {
	m, _ := press(t, New(names.Default()), typed("zzz"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, router.KindMain, m.nav.Current().Route.Kind())
	assert.Empty(t, m.list.State().Items)
}

func TestBackFromDetail_RestoresQuery(t *testing.T) {
	m, _ := press(t, New(names.Default()),
		typed("pe"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Equal(t, router.DetailRoute{Name: "Peter"}, m.nav.Current().Route)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, isQuit(cmd))
	assert.Equal(t, router.KindMain, m.nav.Current().Route.Kind())
	assert.Equal(t, "pe", m.input.Value())
	assert.Equal(t, []string{"Peter"}, m.list.State().Items)
}

func TestDetail_IgnoresTyping(t *testing.T) {
	m, _ := press(t, New(names.Default()),
		tea.KeyMsg{Type: tea.KeyEnter},
		typed("x"),
	)

	assert.Equal(t, router.DetailRoute{Name: "Kennedy"}, m.nav.Current().Route)
	assert.Equal(t, "", m.list.State().Query)
}

func TestRepeatedSelectAndBack_KeepsDepthBounded(t *testing.T) {
	m := New(names.Default())
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, 2, m.nav.Depth())
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, 1, m.nav.Depth())
	}
}

func TestViewDetail_Placeholder(t *testing.T) {
	m := New(names.Default())
	m.nav.NavigateTo(router.DetailRoute{}, router.NavOptions{})

	assert.Contains(t, m.View(), constants.DetailPlaceholder)
}

func TestWindowSize_CentersDetail(t *testing.T) {
	m, _ := press(t, New(names.Default()),
		tea.WindowSizeMsg{Width: 40, Height: 12},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, 40, m.width)
	view := m.viewDetail(m.nav.Current().Route)
	assert.Contains(t, view, "Kennedy")
	assert.Greater(t, len(view), len("Kennedy"), "placed inside the window area")
}

func TestViewDetail_NameWithSlash(t *testing.T) {
	m := New(names.Default())
	m.nav.NavigateTo(router.DetailRoute{Name: "Ada/Lovelace"}, router.NavOptions{})

	assert.Contains(t, m.View(), "Ada/Lovelace")
}
