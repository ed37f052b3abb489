package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeNode is one line of a rendered tree. Children are drawn beneath it
// with box-drawing connectors.
type TreeNode struct {
	Title    string
	Status   string
	Detail   string
	Children []*TreeNode
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)

// RenderTree renders root nodes flush left and their descendants indented,
// with status and detail badges right-aligned in one column.
func RenderTree(roots []*TreeNode) string {
	type line struct {
		content string
		badge   string
	}
	var lines []line
	width := 0

	var walk func(n *TreeNode, prefix string, connector string, childPrefix string)
	walk = func(n *TreeNode, prefix, connector, childPrefix string) {
		content := prefix + connector + n.Title
		width = max(width, lipgloss.Width(content))

		var badges []string
		if n.Status != "" {
			badges = append(badges, Status(n.Status))
		}
		if n.Detail != "" {
			badges = append(badges, StyleBlue.Render(fmt.Sprintf("[ %s ]", n.Detail)))
		}
		lines = append(lines, line{content: content, badge: strings.Join(badges, " ")})

		for i, c := range n.Children {
			if i == len(n.Children)-1 {
				walk(c, prefix+childPrefix, treeCorner, treeSpace)
			} else {
				walk(c, prefix+childPrefix, treeBranch, treePipe)
			}
		}
	}
	for _, r := range roots {
		walk(r, "", "", "")
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.content)
		if l.badge != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(l.content)+colGap))
			b.WriteString(l.badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}
