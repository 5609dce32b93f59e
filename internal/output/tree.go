package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start.
	descriptionColumn = 30
)

// treeNode is a directory or file in a rendered workspace tree.
type treeNode struct {
	name        string
	description string
	dir         bool
	children    []*treeNode
}

// RenderWorkspaceTree renders paths relative to a workspace root as a tree
// with descriptions aligned at a fixed column. Paths ending in "/" are
// directories; intermediate path elements always are.
func RenderWorkspaceTree(rootName string, entries map[string]string) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, dir: true}
	for path, desc := range entries {
		isDir := strings.HasSuffix(path, "/")
		parts := strings.Split(strings.Trim(filepath.ToSlash(path), "/"), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			child := current.child(part)
			if child == nil {
				child = &treeNode{name: part, dir: !last || isDir}
				current.children = append(current.children, child)
			}
			if last {
				child.description = desc
			}
			current = child
		}
	}
	root.sort()

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(root.name + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		child.render(&sb, "", i == len(root.children)-1)
	}
	return sb.String()
}

func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// sort orders children directories first, then by name.
func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.dir != b.dir {
			return a.dir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}
	name := n.name
	if n.dir {
		name += "/"
	}

	line := prefix + connector + name
	if n.description != "" {
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + StyleDim.Render(n.description)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	childPrefix := prefix + treeVert
	if last {
		childPrefix = prefix + treeSpace
	}
	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}
