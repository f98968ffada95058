package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/graph"
)

// =============================================================================
// NodeListModel - interactive node browser for `graphops inspect`
// =============================================================================

// nodeRow is one line of the node browser.
type nodeRow struct {
	Key       string
	Kind      string
	InDegree  int
	OutDegree int
}

// NodeListModel is the bubbletea model for paging through a graph's nodes.
type NodeListModel struct {
	Graph  *graph.Graph
	Rows   []nodeRow
	Cursor int
	Height int
	Offset int
}

// NewNodeListModel builds a node browser over g.
func NewNodeListModel(g *graph.Graph) NodeListModel {
	rows := make([]nodeRow, 0, g.NodeCount())
	for _, key := range g.NodeKeys() {
		n, _ := g.Node(key)
		rows = append(rows, nodeRow{
			Key:       key,
			Kind:      n.Kind().String(),
			InDegree:  n.InDegree(),
			OutDegree: n.OutDegree(),
		})
	}
	return NodeListModel{Graph: g, Rows: rows, Height: 15}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
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

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Graph Inspector"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf(
		"%d nodes, %d edges, %d seeds, %d sinks",
		m.Graph.NodeCount(), m.Graph.EdgeCount(), m.Graph.SeedCount(), m.Graph.SinkCount(),
	)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor, r.Key, r.Kind,
			fmt.Sprintf("%d", r.InDegree), fmt.Sprintf("%d", r.OutDegree),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Key", "Kind", "In", "Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	return b.String()
}

// inspectCommand creates the interactive terminal graph browser command.
func (c *CLI) inspectCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse a graph's nodes interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(input)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewNodeListModel(g))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph JSON (default stdin)")

	return cmd
}
