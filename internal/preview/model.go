// Package preview renders the communications dashboard in a terminal.
package preview

import (
	"context"
	"strings"

	"comms-dashboard/internal/stats"
	"comms-dashboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess     = lipgloss.Color("#16a34a")
	colorDestructive = lipgloss.Color("#dc2626")
	colorMuted       = lipgloss.Color("#64748b")
	colorAccent      = lipgloss.Color("#0f172a")

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1).Width(24)
	cardValueStyle   = lipgloss.NewStyle().Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	errorStyle       = lipgloss.NewStyle().Foreground(colorDestructive)

	badgeStyles = map[ui.Tone]lipgloss.Style{
		ui.ToneSuccess:     lipgloss.NewStyle().Foreground(colorSuccess),
		ui.ToneDestructive: lipgloss.NewStyle().Foreground(colorDestructive),
	}
)

// tabState is the preview's single owner of the selected tab.
type tabState struct {
	tab ui.Tab
}

func (s *tabState) Current() ui.Tab { return s.tab }
func (s *tabState) SetTab(t ui.Tab) { s.tab = t }

type cardsMsg struct {
	cards []ui.StatCardView
	err   error
}

type Model struct {
	source    stats.CardSource
	state     ui.TabState
	visual    ui.Tab // highlighted trigger; moves on key press like the web primitive
	readiness [2]bool
	cards     []ui.StatCardView
	err       error
	loaded    bool
}

func New(source stats.CardSource, whatsappConfigured, smsConfigured bool) Model {
	return Model{
		source:    source,
		state:     &tabState{tab: ui.DefaultTab},
		visual:    ui.DefaultTab,
		readiness: [2]bool{whatsappConfigured, smsConfigured},
	}
}

func (m Model) selector() ui.TabSelector {
	return ui.BindTabSelector(m.state, m.readiness[0], m.readiness[1])
}

func (m Model) Tab() ui.Tab {
	return m.state.Current()
}

func (m Model) Init() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		cards, err := source.Cards(context.Background())
		if err != nil {
			return cardsMsg{err: err}
		}
		return cardsMsg{cards: stats.Render(cards)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsMsg:
		m.cards, m.err, m.loaded = msg.cards, msg.err, true
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	triggers := m.selector().Triggers()
	current := 0
	for i, t := range triggers {
		if t.Value == m.visual {
			current = i
		}
	}

	next := current
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h", "shift+tab":
		next = (current + len(triggers) - 1) % len(triggers)
	case "right", "l", "tab":
		next = (current + 1) % len(triggers)
	case "1", "2", "3":
		next = int(msg.String()[0] - '1')
	default:
		return m, nil
	}
	m.visual = triggers[next].Value
	m.selector().Select(m.visual)
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Communications"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Test your WhatsApp, SMS and voice integrations."))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(mutedStyle.Render("Loading stats..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Failed to load stats: " + m.err.Error()))
	default:
		rendered := make([]string, 0, len(m.cards))
		for _, c := range m.cards {
			rendered = append(rendered, renderCard(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	b.WriteString("\n\n")

	tabs := make([]string, 0, 3)
	for _, t := range m.selector().Triggers() {
		label := t.Icon.Terminal() + " " + t.Label
		if t.Value == m.visual {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("←/→ or 1-3 switch tabs • q quit"))
	b.WriteString("\n")
	return b.String()
}

func renderCard(c ui.StatCardView) string {
	lines := []string{
		c.Icon.Terminal() + " " + c.Title,
		cardValueStyle.Render(c.Value),
	}
	if c.Secondary != nil {
		lines = append(lines, renderSecondary(*c.Secondary))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderSecondary(l ui.SecondaryLine) string {
	if l.Badge == nil {
		return mutedStyle.Render(l.Description)
	}
	badge := badgeStyles[l.Badge.Tone].Render(l.Badge.Label())
	if l.Description == "" {
		return badge
	}
	return badge + " " + mutedStyle.Render(l.Description)
}
