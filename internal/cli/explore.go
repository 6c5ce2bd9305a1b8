package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/depgraph"
	"github.com/matzehuels/depvis/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	cycleStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

func (c *CLI) exploreCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the dependency graph interactively",
		Long: `Browse the dependency graph interactively.

Starting at the root, the browser shows the current package, its direct
dependencies and the packages that depend on it. Packages that lie on a
dependency cycle are flagged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.loadResult(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newExploreModel(res), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "browse a saved JSON report instead of resolving")
	return cmd
}

// =============================================================================
// exploreModel - Interactive graph browser
// =============================================================================

// exploreModel is the bubbletea model of the graph browser.
type exploreModel struct {
	res     *pipeline.Result
	onCycle map[string]bool

	current string
	cursor  int
	history []frame
	height  int
}

// frame is a visited package and the cursor position it was left at.
type frame struct {
	id     string
	cursor int
}

func newExploreModel(res *pipeline.Result) exploreModel {
	return exploreModel{
		res:     res,
		onCycle: depgraph.OnCycle(res.Cycles),
		current: res.Graph.Root,
		height:  15,
	}
}

func (m exploreModel) children() []string {
	deps, _ := m.res.Graph.Adjacency.Deps(m.current)
	return deps
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		children := m.children()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(children)-1 {
				m.cursor++
			}
		case "enter", "right", "l":
			if len(children) == 0 {
				return m, nil
			}
			m.history = append(m.history, frame{id: m.current, cursor: m.cursor})
			m.current = children[m.cursor]
			m.cursor = 0
		case "backspace", "left", "h":
			if n := len(m.history); n > 0 {
				prev := m.history[n-1]
				m.history = m.history[:n-1]
				m.current, m.cursor = prev.id, prev.cursor
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-10, 5)
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.breadcrumb()))
	if m.onCycle[m.current] {
		b.WriteString("  " + cycleStyle.Render("⟳ on a dependency cycle"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  ⌫ back  q quit"))
	b.WriteString("\n\n")

	children := m.children()
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("Dependencies (%d)", len(children))))
	b.WriteString("\n")
	if !m.res.Graph.Adjacency.Has(m.current) {
		b.WriteString(listDimStyle.Render("  (not expanded: beyond the depth bound)") + "\n")
	} else if len(children) == 0 {
		b.WriteString(listDimStyle.Render("  (none)") + "\n")
	}

	offset := 0
	if m.cursor >= m.height {
		offset = m.cursor - m.height + 1
	}
	for i := offset; i < len(children) && i < offset+m.height; i++ {
		name := children[i]
		if m.onCycle[name] {
			name += " ⟳"
		}
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + name))
		} else {
			b.WriteString(listNormalStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	dependents := m.res.Dependents(m.current)
	b.WriteString("\n")
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("Dependents (%d)", len(dependents))))
	b.WriteString("\n")
	if len(dependents) == 0 {
		b.WriteString(listDimStyle.Render("  (none)") + "\n")
	} else {
		b.WriteString(listDimStyle.Render("  "+strings.Join(dependents, ", ")) + "\n")
	}
	return b.String()
}

// breadcrumb renders the path from the root to the current package.
func (m exploreModel) breadcrumb() string {
	parts := make([]string, 0, len(m.history)+1)
	for _, f := range m.history {
		parts = append(parts, f.id)
	}
	return strings.Join(append(parts, m.current), " "+iconArrow+" ")
}
