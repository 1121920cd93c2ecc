package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tableplan/tableplan/pkg/chart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RoomListModel - Interactive room selection
// =============================================================================

// RoomSelection holds the result of the room selection.
type RoomSelection struct {
	Room *chart.Chart
}

// RoomListModel is the bubbletea model for interactive room selection in
// multi-room documents.
type RoomListModel struct {
	Rooms    []chart.Chart
	Cursor   int
	Selected *RoomSelection
	Height   int
	Offset   int
}

// NewRoomListModel creates a new room list model.
func NewRoomListModel(rooms []chart.Chart) RoomListModel {
	return RoomListModel{
		Rooms:  rooms,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m RoomListModel) Init() tea.Cmd {
	return nil
}

func (m RoomListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rooms)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			room := m.Rooms[m.Cursor]
			if len(room.Tables) == 0 {
				return m, nil
			}
			m.Selected = &RoomSelection{Room: &room}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RoomListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Room"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rooms) {
		end = len(m.Rooms)
	}

	for i := m.Offset; i < end; i++ {
		room := m.Rooms[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		seats := 0
		for _, t := range room.Tables {
			seats += t.SeatCount
		}

		name := room.Name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%s%s", cursor, style.Render(name))
		detail := listDimStyle.Render(fmt.Sprintf("  %d tables · %d seats", len(room.Tables), seats))
		b.WriteString(line + detail + "\n")
	}

	return b.String()
}

// pickRoom runs the interactive room picker and returns the selected room.
func pickRoom(rooms []chart.Chart) (*chart.Chart, error) {
	model := NewRoomListModel(rooms)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("room picker: %w", err)
	}

	m, ok := final.(RoomListModel)
	if !ok || m.Selected == nil {
		return nil, fmt.Errorf("no room selected")
	}
	return m.Selected.Room, nil
}
