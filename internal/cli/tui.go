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
)

// CycleListModel is the bubbletea model for browsing discovered cycles.
// The list shows one entry per cycle; the path of the highlighted cycle is
// rendered below the list.
type CycleListModel struct {
	GraphName string
	Cycles    [][]string
	Cursor    int
	Height    int
	Offset    int
}

// NewCycleListModel creates a new cycle list model.
func NewCycleListModel(graphName string, cycles [][]string) CycleListModel {
	return CycleListModel{
		GraphName: graphName,
		Cycles:    cycles,
		Height:    15,
	}
}

func (m CycleListModel) Init() tea.Cmd {
	return nil
}

func (m CycleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Cycles)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CycleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Cycles in %s", m.GraphName)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Cycles) {
		end = len(m.Cycles)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%sCycle %d  %s", cursor, i+1,
			listDimStyle.Render(fmt.Sprintf("%d nodes", len(m.Cycles[i]))))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")

	if m.Cursor < len(m.Cycles) {
		path := strings.Join(m.Cycles[m.Cursor], " "+iconArrow+" ")
		b.WriteString("  " + StyleValue.Render(path))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Cycles))))

	return b.String()
}
