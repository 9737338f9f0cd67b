// Package tui implements an interactive browser for ranked
// recommendations, one pane per profile.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fdiazgon/minimal-ir/internal/domain"
)

// Model is the Bubble Tea model for the recommendation browser.
type Model struct {
	profiles []*domain.Profile
	cursor   int
	input    textinput.Model
	viewport viewport.Model
	filter   string
	status   string
	ready    bool
}

// New creates a browser over the given scored profiles.
func New(profiles []*domain.Profile) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Filter by document id, press Enter"
	ti.Focus()
	vp := viewport.New(0, 0)
	return Model{
		profiles: profiles,
		input:    ti,
		viewport: vp,
		status:   "Tab switches profile. Type to filter, Enter applies.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + qh + 1 // header, profile bar, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentProfile())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.profiles)
				m.viewport.SetContent(m.renderCurrentProfile())
			}
			return m, nil
		case "shift+tab":
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.profiles)) % len(m.profiles)
				m.viewport.SetContent(m.renderCurrentProfile())
			}
			return m, nil
		case "enter":
			m.filter = strings.ToLower(strings.TrimSpace(m.input.Value()))
			if m.filter == "" {
				m.status = "Filter cleared."
			} else {
				m.status = fmt.Sprintf("Filtering by %q", m.filter)
			}
			m.viewport.SetContent(m.renderCurrentProfile())
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the profile bar, the recommendation pane, and the filter
// input.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("minimal-ir")
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + m.renderProfileBar() + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderProfileBar() string {
	names := make([]string, len(m.profiles))
	for i, p := range m.profiles {
		if i == m.cursor {
			names[i] = selectedTabStyle.Render(p.Name)
		} else {
			names[i] = tabStyle.Render(p.Name)
		}
	}
	return strings.Join(names, " ")
}

func (m Model) renderCurrentProfile() string {
	if len(m.profiles) == 0 {
		return "No profiles loaded."
	}
	profile := m.profiles[m.cursor]
	var b strings.Builder
	fmt.Fprintf(&b, "Interests: %s\n\n", strings.Join(profile.Interests, " & "))
	shown := 0
	for _, rec := range profile.Recommendations() {
		if m.filter != "" && !strings.Contains(strings.ToLower(rec.DocumentID), m.filter) {
			continue
		}
		fmt.Fprintf(&b, "%-32s %8.4f\n", rec.DocumentID, rec.Score)
		shown++
	}
	if shown == 0 {
		b.WriteString("No recommendations.")
	}
	return b.String()
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	resultBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tabStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
