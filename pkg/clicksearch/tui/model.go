// Package tui is the terminal frontend. It drives the same list and detail
// controllers and the same navigator as the SDL frontend, rendered with
// Bubble Tea and Lip Gloss.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
	"github.com/anunobi/clicksearch/pkg/clicksearch/screens"
)

// Model is the Bubble Tea model for both screens. The navigator decides
// which one is shown.
type Model struct {
	title   string
	nav     *router.Navigator
	list    *screens.ListController
	details screens.DetailController
	input   textinput.Model
	styles  styles

	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithTitle replaces the default title.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// WithLogger routes navigation logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.nav.SetLogger(logger)
	}
}

// New creates a model over repo with an empty query on the main screen.
func New(repo names.Repository, opts ...Option) Model {
	nav := router.NewNavigator()

	ti := textinput.New()
	ti.Placeholder = constants.SearchPlaceholder
	ti.Prompt = "🔍 "
	ti.Focus()

	m := Model{
		title:  constants.DefaultTitle,
		nav:    nav,
		list:   screens.NewListController(repo, nav),
		input:  ti,
		styles: defaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the terminal app and blocks until it quits or ctx is done.
func Run(ctx context.Context, repo names.Repository, opts ...Option) error {
	p := tea.NewProgram(New(repo, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(0, msg.Width-8)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.nav.Current().Route.Kind() == router.KindDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.list.State().Query != "" {
			m.list.OnClearQuery()
			m.input.SetValue("")
			return m, nil
		}
		return m.back()

	case tea.KeyUp:
		m.list.MoveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.list.MoveFocus(1)
		return m, nil

	case tea.KeyEnter:
		m.nav.SetState(m.list.Snapshot())
		m.list.SelectFocused()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.OnQueryChanged(m.input.Value())
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyBackspace, tea.KeyLeft:
		return m.back()
	}
	return m, nil
}

// back pops one entry. At the root there is nothing left to show, so the
// app quits.
func (m Model) back() (tea.Model, tea.Cmd) {
	if !m.nav.NavigateBack() {
		m.quitting = true
		return m, tea.Quit
	}

	if saved, ok := m.nav.Current().State.(screens.ListState); ok {
		m.list.Restore(saved)
		m.input.SetValue(saved.Query)
		m.input.CursorEnd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n\n")

	current := m.nav.Current()
	if current.Route.Kind() == router.KindDetail {
		b.WriteString(m.viewDetail(current.Route))
		b.WriteString("\n\n")
		b.WriteString(m.styles.hint.Render("esc back • ctrl+c quit"))
		return b.String()
	}

	b.WriteString(m.viewList())
	return b.String()
}

func (m Model) viewList() string {
	state := m.list.State()

	field := m.input.View()
	if state.ShowClear() {
		field += "  " + m.styles.hint.Render("✕ esc")
	}

	var b strings.Builder
	b.WriteString(m.styles.search.Render(field))
	b.WriteString("\n")

	for i, name := range state.Items {
		style := m.styles.item
		if i == state.Focus {
			style = m.styles.focused
		}
		b.WriteString(style.Render(name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render("↑/↓ move • enter open • esc clear/back • ctrl+c quit"))
	return b.String()
}

func (m Model) viewDetail(route router.Route) string {
	view := m.details.RenderPath(route.Path())

	text := m.styles.detail.Render(view.Name)
	if view.Empty {
		text = m.styles.empty.Render(constants.DetailPlaceholder)
	}

	if m.width == 0 || m.height == 0 {
		return text
	}
	return lipgloss.Place(m.width, max(1, m.height-4), lipgloss.Center, lipgloss.Center, text)
}
