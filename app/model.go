// ABOUTME: Terminal recipe browser built on bubbletea
// ABOUTME: Renders list controller state; every keystroke in the search box updates the query

package app

import (
	"context"
	"fmt"
	"strings"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "What are you craving for?"

// cardHeight is the rendered height of one recipe card including borders
const cardHeight = 4

// Controller is what the browser needs from the recipe list controller
type Controller interface {
	Load(ctx context.Context) domain.LoadState
	State() domain.LoadState
	VisibleList() domain.RecipeCollection
	SetSearchQuery(query string)
	SearchQuery() string
	Subscribe() (<-chan domain.LoadState, func())
}

// stateMsg carries a controller transition
type stateMsg domain.LoadState

// loadDoneMsg is the result of a Load issued by the model
type loadDoneMsg domain.LoadState

// Model is the bubbletea model for the browser
type Model struct {
	ctx     context.Context
	ctrl    Controller
	updates <-chan domain.LoadState

	state   domain.LoadState
	spinner spinner.Model
	search  textinput.Model
	cursor  int
	offset  int
	width   int
	height  int
}

// NewModel creates a browser over ctrl. updates may be nil, in which case
// only loads issued by the model refresh the view.
func NewModel(ctx context.Context, ctrl Controller, updates <-chan domain.LoadState) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Accent)

	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(ctrl.SearchQuery())

	return &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		updates: updates,
		state:   ctrl.State(),
		spinner: sp,
		search:  ti,
	}
}

// Init starts the spinner, listens for transitions and triggers the first load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen(), m.load())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-8, 10)
		return m, nil

	case stateMsg:
		m.setState(domain.LoadState(msg))
		return m, m.listen()

	case loadDoneMsg:
		m.setState(domain.LoadState(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	case "ctrl+r":
		return m, m.load()
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.ctrl.SetSearchQuery(after)
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		return m, m.search.Focus()

	case "ctrl+r":
		return m, m.load()

	case "r":
		if m.state.Phase == domain.PhaseFailed {
			return m, m.load()
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()

	case "down", "j":
		if m.cursor < len(m.ctrl.VisibleList())-1 {
			m.cursor++
		}
		m.scroll()
	}
	return m, nil
}

// setState applies s unless it is older than what is shown. Transitions can
// arrive from both the subscription and a finished Load, in either order.
func (m *Model) setState(s domain.LoadState) {
	if s.Generation < m.state.Generation {
		return
	}
	if s.Generation == m.state.Generation && s.Phase == domain.PhaseLoading &&
		(m.state.Phase == domain.PhaseLoaded || m.state.Phase == domain.PhaseFailed) {
		return
	}
	m.state = s
	if n := len(m.ctrl.VisibleList()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scroll()
}

// load runs one controller load. The Loading transition reaches the view
// through the subscription.
func (m *Model) load() tea.Cmd {
	m.state = domain.LoadingState(m.state.Generation)
	return func() tea.Msg {
		return loadDoneMsg(m.ctrl.Load(m.ctx))
	}
}

// listen waits for the next controller transition
func (m *Model) listen() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg(s)
	}
}

// pageSize is how many cards fit on screen, or 0 when unknown
func (m *Model) pageSize() int {
	if m.height == 0 {
		return 0
	}
	return max((m.height-8)/cardHeight, 1)
}

func (m *Model) scroll() {
	page := m.pageSize()
	if page == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Recipes"))
	b.WriteString("\n\n")

	inputStyle := InputStyle
	if m.search.Focused() {
		inputStyle = FocusedInputStyle
	}
	b.WriteString(inputStyle.Render(m.search.View()))
	b.WriteString("\n\n")

	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help()))

	return b.String()
}

func (m *Model) body() string {
	switch m.state.Phase {
	case domain.PhaseIdle, domain.PhaseLoading:
		return m.spinner.View() + " " + MutedStyle.Render("Loading recipes...")

	case domain.PhaseFailed:
		return ErrorStyle.Render(coreerrors.UserMessage(m.state.Err)) + "\n" +
			MutedStyle.Render("r: try again")
	}

	visible := m.ctrl.VisibleList()
	if len(visible) == 0 {
		if q := m.ctrl.SearchQuery(); q != "" {
			return MutedStyle.Render(fmt.Sprintf("No results for %s", TitleStyle.Render(q)))
		}
		return TitleStyle.Render("No recipes available") + "\n" + MutedStyle.Render("Try after some time")
	}

	end := len(visible)
	if page := m.pageSize(); page > 0 && m.offset+page < end {
		end = m.offset + page
	}

	cards := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		cards = append(cards, m.card(visible[i], i == m.cursor))
	}

	summary := MutedStyle.Render(fmt.Sprintf("%d of %d recipes", len(visible), len(m.state.Recipes)))
	return lipgloss.JoinVertical(lipgloss.Left, append(cards, summary)...)
}

func (m *Model) card(r domain.Recipe, selected bool) string {
	style := CardStyle
	if selected {
		style = ActiveCardStyle
	}
	if m.width > 0 {
		style = style.Width(m.width - 4)
	}

	var tags []string
	if r.HasVideo() {
		tags = append(tags, VideoTagStyle.Render("▶ video"))
	}
	if r.HasSource() {
		tags = append(tags, SourceTagStyle.Render("↗ source"))
	}

	second := MutedStyle.Render(r.Cuisine)
	if len(tags) > 0 {
		second += "  " + strings.Join(tags, " ")
	}
	return style.Render(TextStyle.Bold(true).Render(r.Name) + "\n" + second)
}

func (m *Model) help() string {
	if m.search.Focused() {
		return "type to filter • enter/esc: done • ctrl+r: refresh • ctrl+c: quit"
	}
	return "/: search • ↑/k ↓/j: move • ctrl+r: refresh • q: quit"
}
