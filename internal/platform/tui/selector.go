package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// SelectorKeyMap defines the key bindings for the level picker.
type SelectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultSelectorKeyMap returns default key bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// SelectorModel is the Bubble Tea model for picking the first level.
type SelectorModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     SelectorKeyMap
	theme    Theme
	width    int
	height   int
	chosen   int
	quitting bool
}

// NewSelectorModel creates a level picker over lvls.
func NewSelectorModel(lvls []levels.Level, width, height int) SelectorModel {
	m := SelectorModel{
		levels: lvls,
		help:   help.New(),
		keys:   DefaultSelectorKeyMap(),
		theme:  GetTheme(),
		width:  width,
		height: height,
		chosen: -1,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the level table sized to the terminal.
func (m SelectorModel) createTable() table.Model {
	nameWidth := max(min(m.width-40, 30), 12)
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: nameWidth},
		{Title: "Size", Width: 7},
		{Title: "Coins", Width: 5},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			fmt.Sprintf("%d", lvl.Coins),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows), m.height-8), 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.chosen = m.table.Cursor()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m SelectorModel) View() string {
	if m.quitting || m.chosen >= 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Pick a level to start from"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found."), m.width))
	} else {
		b.WriteString(centerText(m.theme.TableBorder.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Chosen returns the 0-based index of the picked level and whether one was picked.
func (m SelectorModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// centerText pads every line of text to center it within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return lipgloss.NewStyle().MarginLeft((width - textWidth) / 2).Render(text)
}

// RunSelector shows the level picker.
// Returns the 0-based index of the chosen level, or ok=false if the user quit.
func RunSelector(lvls []levels.Level, width, height int) (index int, ok bool, err error) {
	p := tea.NewProgram(
		NewSelectorModel(lvls, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isSelector := finalModel.(SelectorModel)
	if !isSelector {
		return 0, false, nil
	}

	index, ok = m.Chosen()
	return index, ok, nil
}
