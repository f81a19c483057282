package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listFilterStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// MenuModel - Interactive action selection
// =============================================================================

// menuAction is one entry of the explore menu.
type menuAction int

const (
	actionRoute menuAction = iota
	actionLines
	actionStation
	actionTransfers
	actionQuit
)

var menuLabels = []string{
	actionRoute:     "Find a route",
	actionLines:     "List lines",
	actionStation:   "Look up a station",
	actionTransfers: "List transfer stations",
	actionQuit:      "Quit",
}

// MenuModel is the bubbletea model for choosing the next explore action.
type MenuModel struct {
	Title    string
	Cursor   int
	Selected *menuAction
}

// NewMenuModel creates a new menu model.
func NewMenuModel(title string) MenuModel {
	return MenuModel{Title: title}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			quit := actionQuit
			m.Selected = &quit
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(menuLabels)-1 {
				m.Cursor++
			}
		case "enter":
			a := menuAction(m.Cursor)
			m.Selected = &a
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, label := range menuLabels {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(listNormalStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// StationPickerModel - Interactive station selection with type-to-filter
// =============================================================================

// StationPickerModel is the bubbletea model for picking a station by name.
// Typing narrows the list to stations containing the typed text.
type StationPickerModel struct {
	Prompt   string
	Stations []string
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected string
	Canceled bool

	matches []string
}

// NewStationPickerModel creates a picker over stations.
func NewStationPickerModel(prompt string, stations []string) StationPickerModel {
	return StationPickerModel{
		Prompt:   prompt,
		Stations: stations,
		Height:   12,
		matches:  stations,
	}
}

func (m StationPickerModel) Init() tea.Cmd {
	return nil
}

func (m StationPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Canceled = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.matches)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			if len(m.matches) == 0 {
				return m, nil
			}
			m.Selected = m.matches[m.Cursor]
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				r := []rune(m.Filter)
				m.Filter = string(r[:len(r)-1])
				m.refilter()
			}
		case tea.KeySpace:
			m.Filter += " "
			m.refilter()
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.refilter()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *StationPickerModel) refilter() {
	m.matches = filterStations(m.Stations, m.Filter)
	m.Cursor = 0
	m.Offset = 0
}

// filterStations keeps the stations containing filter, ignoring case.
func filterStations(stations []string, filter string) []string {
	if filter == "" {
		return stations
	}
	needle := strings.ToLower(filter)
	var out []string
	for _, s := range stations {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

func (m StationPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Prompt))
	b.WriteString(" ")
	b.WriteString(listFilterStyle.Render(m.Filter + "▏"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ select  esc cancel"))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(listDimStyle.Render("  no matching station"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.matches))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.matches[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.matches[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.matches))))
	return b.String()
}
