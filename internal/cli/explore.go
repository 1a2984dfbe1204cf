package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/horizonlabs/horizon/pkg/scene"
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [universe.json|scene.json]",
		Short: "Browse a universe layout interactively",
		Long: `Browse a universe layout interactively.

Opens a terminal tree browser over the assembled scene. Arrow keys (or
j/k) move the cursor, enter or space expands and collapses, and the side
pane shows the layout facts for the selected node: field position, scale
bounds, ring placement, orbit radius and render size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := readSceneOrBuild(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			model := newExploreModel(s)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// Tree browser styles.
var (
	exploreSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	exploreDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	explorePaneStyle     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// exploreNode is one row of the flattened tree.
type exploreNode struct {
	label    string
	depth    int
	expanded bool
	children []*exploreNode
	facts    [][2]string // key/value pairs for the side pane
}

// exploreModel is the bubbletea model for the scene browser.
type exploreModel struct {
	roots   []*exploreNode
	visible []*exploreNode
	cursor  int
	offset  int
	height  int
	width   int
}

func newExploreModel(s scene.Scene) exploreModel {
	m := exploreModel{height: 20}
	for i := range s.Galaxies {
		m.roots = append(m.roots, galaxyNode(&s.Galaxies[i], s))
	}
	m.reflow()
	return m
}

func galaxyNode(g *scene.GalaxyPlacement, s scene.Scene) *exploreNode {
	n := &exploreNode{
		label: "galaxy " + g.Name,
		facts: [][2]string{
			{"position", fmtPos(g.Position.X, g.Position.Y, g.Position.Z)},
			{"max radius", fmt.Sprintf("%.2f", g.Scale.MaxRadius)},
			{"min radius", fmt.Sprintf("%.2f", g.Scale.MinRadius)},
			{"camera", fmt.Sprintf("%.2f", s.CameraDistance)},
			{"systems", fmt.Sprintf("%d", len(g.Systems))},
			{"stars", fmt.Sprintf("%d", len(g.Stars))},
		},
	}
	for i := range g.Systems {
		n.children = append(n.children, systemNode(&g.Systems[i], 1))
	}
	for _, st := range g.Stars {
		n.children = append(n.children, &exploreNode{
			label: "star " + st.Name,
			depth: 1,
			facts: [][2]string{
				{"position", fmtPos(st.Position.X, st.Position.Y, st.Position.Z)},
				{"ring", "outer"},
			},
		})
	}
	return n
}

func systemNode(sys *scene.SystemPlacement, depth int) *exploreNode {
	facts := [][2]string{
		{"position", fmtPos(sys.Position.X, sys.Position.Y, sys.Position.Z)},
		{"orbit spacing", fmt.Sprintf("%.2f", sys.OrbitSpacing)},
		{"planets", fmt.Sprintf("%d", len(sys.Planets))},
		{"ring", "inner"},
	}
	if sys.ViewportExceeded {
		facts = append(facts, [2]string{"viewport", "exceeded"})
	}
	n := &exploreNode{
		label: "system " + sys.Name,
		depth: depth,
		facts: facts,
	}
	for _, p := range sys.Planets {
		n.children = append(n.children, &exploreNode{
			label: "planet " + p.Name,
			depth: depth + 1,
			facts: [][2]string{
				{"orbit radius", fmt.Sprintf("%.2f", p.OrbitRadius)},
				{"size", fmt.Sprintf("%.2f", p.Size)},
				{"moons", fmt.Sprintf("%d", p.MoonCount)},
				{"moon size", fmt.Sprintf("%.2f", p.MoonSize)},
			},
		})
	}
	return n
}

func fmtPos(x, y, z float64) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", x, y, z)
}

// reflow rebuilds the visible row list from the expansion state.
func (m *exploreModel) reflow() {
	m.visible = m.visible[:0]
	var walk func(nodes []*exploreNode)
	walk = func(nodes []*exploreNode) {
		for _, n := range nodes {
			m.visible = append(m.visible, n)
			if n.expanded {
				walk(n.children)
			}
		}
	}
	walk(m.roots)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 2
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
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			if len(m.visible) > 0 {
				node := m.visible[m.cursor]
				if len(node.children) > 0 {
					node.expanded = !node.expanded
					m.reflow()
				}
			}
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	if len(m.visible) == 0 {
		return exploreDimStyle.Render("empty universe · q to quit")
	}

	var tree strings.Builder
	end := m.offset + m.height
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		n := m.visible[i]
		marker := "  "
		if len(n.children) > 0 {
			if n.expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		line := strings.Repeat("  ", n.depth) + marker + n.label
		if i == m.cursor {
			tree.WriteString(exploreSelectedStyle.Render("› " + line))
		} else {
			tree.WriteString(exploreNormalStyle.Render("  " + line))
		}
		tree.WriteString("\n")
	}

	pane := m.factsPane()
	body := lipgloss.JoinHorizontal(lipgloss.Top, tree.String(), pane)
	help := exploreDimStyle.Render("↑/↓ move · enter expand · q quit")
	return body + "\n" + help
}

func (m exploreModel) factsPane() string {
	n := m.visible[m.cursor]
	var b strings.Builder
	b.WriteString(StyleTitle.Render(n.label) + "\n\n")
	for _, kv := range n.facts {
		b.WriteString(exploreDimStyle.Render(fmt.Sprintf("%-14s", kv[0])))
		b.WriteString(StyleValue.Render(kv[1]))
		b.WriteString("\n")
	}
	return explorePaneStyle.Render(b.String())
}
