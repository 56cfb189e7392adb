package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

var (
	walkCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	walkVisitedStyle = lipgloss.NewStyle().Foreground(colorWhite)
	walkDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// WalkModel is the bubbletea model for stepping through a traversal one
// vertex at a time. Each keypress pulls the next vertex from the cursor,
// so vertices discovered after the current position are never computed
// ahead of time.
type WalkModel struct {
	Order   string
	Start   string
	Walker  *digraph.Walker
	Visited []string
	Done    bool
}

// NewWalkModel creates a walk model positioned before the first vertex.
func NewWalkModel(order, start string, w *digraph.Walker) WalkModel {
	return WalkModel{
		Order:  order,
		Start:  start,
		Walker: w,
	}
}

func (m WalkModel) Init() tea.Cmd {
	return nil
}

func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", " ", "n", "right":
			if m.Done {
				return m, tea.Quit
			}
			v, ok := m.Walker.Next()
			if !ok {
				m.Done = true
				return m, nil
			}
			m.Visited = append(m.Visited, v)
		case "a":
			m.Visited = append(m.Visited, m.Walker.Walk()...)
			m.Done = true
		}
	}
	return m, nil
}

func (m WalkModel) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(fmt.Sprintf("%s walk from %q", strings.ToUpper(m.Order), m.Start)))
	b.WriteString("\n")
	b.WriteString(walkDimStyle.Render("⏎/space next  a all  q quit"))
	b.WriteString("\n\n")

	for i, v := range m.Visited {
		marker := "  "
		style := walkVisitedStyle
		if i == len(m.Visited)-1 && !m.Done {
			marker = "▸ "
			style = walkCurrentStyle
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, walkDimStyle.Render(fmt.Sprintf("%2d", i+1)), style.Render(v)))
	}

	b.WriteString("\n")
	if m.Done {
		b.WriteString(walkDimStyle.Render(fmt.Sprintf("  done · %d visited · press any key", len(m.Visited))))
	} else {
		b.WriteString(walkDimStyle.Render(fmt.Sprintf("  [%d visited]", len(m.Visited))))
	}

	return b.String()
}

// runWalkTUI runs the interactive traversal stepper and prints the final
// visit order once the program exits.
func runWalkTUI(order, start string, w *digraph.Walker) error {
	p := tea.NewProgram(NewWalkModel(order, start, w))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive walk failed: %w", err)
	}

	m, ok := final.(WalkModel)
	if !ok || len(m.Visited) == 0 {
		return nil
	}
	fmt.Printf("visited: [%s]\n", strings.Join(m.Visited, " "))
	return nil
}
