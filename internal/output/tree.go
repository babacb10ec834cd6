package output

import (
	"fmt"
	"strings"

	"github.com/marcus/artside/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Detail   string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowDetail bool // Whether to append the node detail
}

// RenderTree renders the children of root, without the root line itself.
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 "  // ├──
		childPrefix := prefix + "\u2502   " // │
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
			childPrefix = prefix + "    "
		}

		line := prefix + connector + node.Label
		if opts.ShowDetail && node.Detail != "" {
			line += " " + node.Detail
		}
		lines = append(lines, line)
		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}
	return lines
}

// CatalogTree groups artworks under their type, types in first-seen order.
func CatalogTree(c *models.Catalog) []TreeNode {
	var roots []TreeNode
	index := map[models.ArtworkType]int{}
	for _, a := range c.All() {
		i, ok := index[a.Type]
		if !ok {
			i = len(roots)
			index[a.Type] = i
			roots = append(roots, TreeNode{Label: string(a.Type)})
		}
		roots[i].Children = append(roots[i].Children, TreeNode{
			Label:  fmt.Sprintf("%d: %s", a.ID, a.Title),
			Detail: fmt.Sprintf("(%s, %s)", a.Artist, a.Year),
		})
	}
	for i := range roots {
		roots[i].Detail = fmt.Sprintf("[%d]", len(roots[i].Children))
	}
	return roots
}
