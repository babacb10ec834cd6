package output

import (
	"strings"
	"testing"

	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/models"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_Connectors(t *testing.T) {
	nodes := []TreeNode{
		{Label: "first", Children: []TreeNode{{Label: "child"}}},
		{Label: "second", Detail: "(x)"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowDetail: true})

	want := []string{
		"├── first",
		"│   └── child",
		"└── second (x)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{{Label: "root", Children: []TreeNode{{Label: "hidden"}}}}
	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1", len(lines))
	}
}

func TestRenderTree_SkipsRoot(t *testing.T) {
	root := TreeNode{Label: "root", Children: []TreeNode{{Label: "only"}}}
	if got := RenderTree(root, TreeRenderOptions{}); got != "└── only" {
		t.Errorf("got %q", got)
	}
}

func TestCatalogTree(t *testing.T) {
	roots := CatalogTree(catalog.Default())

	total := 0
	seen := map[string]bool{}
	for _, r := range roots {
		if seen[r.Label] {
			t.Errorf("type %s grouped twice", r.Label)
		}
		seen[r.Label] = true
		if !models.IsValidType(models.ArtworkType(r.Label)) {
			t.Errorf("unexpected group %q", r.Label)
		}
		total += len(r.Children)
	}
	if total != 6 {
		t.Errorf("got %d artworks, want 6", total)
	}

	out := strings.Join(RenderTreeLines(roots, TreeRenderOptions{ShowDetail: true}), "\n")
	if !strings.Contains(out, "1: Ukiyo-e Wave") {
		t.Errorf("tree missing first artwork:\n%s", out)
	}
}

func TestTable(t *testing.T) {
	out := Table(catalog.Default(), 12)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header + 6", len(lines))
	}
	if !strings.Contains(lines[2], "Impressioni…") {
		t.Errorf("long title not truncated: %q", lines[2])
	}
}
