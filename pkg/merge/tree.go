package merge

import (
	"sort"
	"strings"
)

// treeNode is one directory or file in the rendered listing.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

// RenderTree renders an indented listing of the files that survived
// filtering, rooted at the input directory name. Because it is built from the
// filtered entries rather than a second walk, excluded subtrees never appear.
func RenderTree(root string, entries []FileEntry) string {
	top := &treeNode{children: map[string]*treeNode{}}
	for _, entry := range entries {
		node := top
		for _, segment := range strings.Split(entry.RelPath, "/") {
			child, ok := node.children[segment]
			if !ok {
				child = &treeNode{name: segment, children: map[string]*treeNode{}}
				node.children[segment] = child
			}
			node = child
		}
	}

	var sb strings.Builder
	sb.WriteString(root + "/\n")
	renderChildren(&sb, top, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	// Directories first, then files, alphabetically within each group.
	sort.Slice(names, func(i, j int) bool {
		a, b := node.children[names[i]], node.children[names[j]]
		if (len(a.children) > 0) != (len(b.children) > 0) {
			return len(a.children) > 0
		}
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	for i, name := range names {
		connector, extension := "├── ", "│   "
		if i == len(names)-1 {
			connector, extension = "└── ", "    "
		}

		child := node.children[name]
		if len(child.children) > 0 {
			sb.WriteString(prefix + connector + name + "/\n")
			renderChildren(sb, child, prefix+extension)
		} else {
			sb.WriteString(prefix + connector + name + "\n")
		}
	}
}
