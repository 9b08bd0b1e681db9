package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// depositionListModel is the bubbletea model for interactive deposition
// selection. Enter confirms, q/esc aborts without a selection.
type depositionListModel struct {
	deps     []zenodo.Deposition
	cursor   int
	selected *zenodo.Deposition
	height   int
	offset   int
}

func newDepositionListModel(deps []zenodo.Deposition) depositionListModel {
	return depositionListModel{
		deps:   deps,
		height: 15,
	}
}

func (m depositionListModel) Init() tea.Cmd {
	return nil
}

func (m depositionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.deps)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = &m.deps[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Height > 5 {
			m.height = msg.Height - 4
		}
	}
	return m, nil
}

func (m depositionListModel) View() string {
	s := StyleTitle.Render("Select a deposition") + "\n\n"

	end := m.offset + m.height
	if end > len(m.deps) {
		end = len(m.deps)
	}
	for i := m.offset; i < end; i++ {
		d := m.deps[i]
		line := strconv.Itoa(d.ID) + "  " + orDash(d.Title)

		state := d.State
		if d.Submitted {
			state = "published"
		}

		if i == m.cursor {
			s += listSelectedStyle.Render("› "+line) + " " + listDimStyle.Render(state) + "\n"
		} else {
			s += listNormalStyle.Render("  "+line) + " " + listDimStyle.Render(state) + "\n"
		}
	}

	s += "\n" + listDimStyle.Render("↑/↓ move · enter select · q quit")
	return s
}

// pickDeposition runs the interactive picker and returns the selection,
// or nil when the user aborts.
func pickDeposition(deps []zenodo.Deposition) (*zenodo.Deposition, error) {
	model := newDepositionListModel(deps)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	result, ok := final.(depositionListModel)
	if !ok {
		return nil, nil
	}
	return result.selected, nil
}
