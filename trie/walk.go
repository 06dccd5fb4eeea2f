package trie

import "github.com/ramzeth/triekit/netaddr"

// nextChild implements the single stepping rule shared by every trie
// traversal: from current, follow the slot that target's bits select, and
// return nil if that slot is empty, the child is more specific than
// target, or the child's network diverges from target.
func nextChild[V any](current *node[V], targetBits netaddr.Uint128, targetPrefix int) *node[V] {
	slot := current.getSlot(targetBits)
	child := current.children[slot].Load()
	if child == nil {
		return nil
	}
	if child.prefix > targetPrefix {
		return nil
	}
	if child.diverges(targetBits) {
		return nil
	}
	return child
}

// walkPath walks from root toward target, returning every node visited in
// root-to-leaf order. The last element is the node insert/remove operate
// on: the deepest node that still contains (or equals) target.
func walkPath[V any](root *node[V], targetBits netaddr.Uint128, targetPrefix int) []*node[V] {
	path := make([]*node[V], 1, root.addressLength+2)
	path[0] = root
	current := root
	for {
		child := nextChild(current, targetBits, targetPrefix)
		if child == nil {
			return path
		}
		path = append(path, child)
		current = child
	}
}

// walkLongest walks from root toward target, returning the most recently
// seen value node (longest match) or nil if none was seen.
func walkLongest[V any](root *node[V], targetBits netaddr.Uint128, targetPrefix int) *node[V] {
	var best *node[V]
	current := root
	for {
		if current.hasValue.Load() {
			best = current
		}
		child := nextChild(current, targetBits, targetPrefix)
		if child == nil {
			return best
		}
		current = child
	}
}

// walkAll walks from root toward target, collecting every value node
// encountered in root-to-leaf (least-to-most specific) order.
func walkAll[V any](root *node[V], targetBits netaddr.Uint128, targetPrefix int) []*node[V] {
	var results []*node[V]
	current := root
	for {
		if current.hasValue.Load() {
			results = append(results, current)
		}
		child := nextChild(current, targetBits, targetPrefix)
		if child == nil {
			return results
		}
		current = child
	}
}
