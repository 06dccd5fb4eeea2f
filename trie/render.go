package trie

import (
	"fmt"
	"strings"

	"github.com/ramzeth/triekit/netaddr"
)

// Render produces a deterministic text-tree rendering of the family's
// root. formatter, if non-nil, is called with a value node's payload to
// produce trailing display text; it is never called for routing nodes
// (they have no payload).
func (t *Trie[V]) Render(family netaddr.Family, formatter func(V) string) string {
	var sb strings.Builder
	renderNode(t.root(family), "", true, true, 0, formatter, &sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// renderNode implements the recursive depth-first walk (left child emitted
// before right child) that produces one line per node.
func renderNode[V any](n *node[V], ancestorPrefix string, isLast bool, isRoot bool, slot int, formatter func(V) string, sb *strings.Builder) {
	if !isRoot {
		sb.WriteString(ancestorPrefix)
		if isLast {
			sb.WriteString("└──")
		} else {
			sb.WriteString("├──")
		}
	}

	if !n.hasValue.Load() {
		sb.WriteString("@")
	}
	sb.WriteString(n.network.String())
	if !isRoot {
		fmt.Fprintf(sb, "[%d]", slot)
	}
	if formatter != nil && n.hasValue.Load() {
		sb.WriteString(" ")
		sb.WriteString(formatter(n.value))
	}
	sb.WriteString("\n")

	childPrefix := ancestorPrefix
	if !isRoot {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}

	left := n.children[0].Load()
	right := n.children[1].Load()
	if left != nil {
		renderNode(left, childPrefix, right == nil, false, 0, formatter, sb)
	}
	if right != nil {
		renderNode(right, childPrefix, true, false, 1, formatter, sb)
	}
}
