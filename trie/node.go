package trie

import (
	"sync/atomic"

	"github.com/ramzeth/triekit/netaddr"
)

// node is the internal trie record: either a value node (hasValue true,
// holding a user-inserted network and payload) or a routing node (hasValue
// false, holding the synthetic smallest common supernet of its two
// children).
//
// Every field derived from node.network (networkBits, networkMaskBits,
// prefix, addressLength, splitMask) is computed once at construction and
// never mutated afterward, so a reader that has loaded a *node[V] through
// an atomic.Pointer may read them without further synchronization. Only
// hasValue and value change after publication (promote, on the
// insert-case-1 path in Trie.insert, and demote, in Trie.remove), and
// hasValue's atomic store/load pair is what
// orders that mutation for concurrent readers.
type node[V any] struct {
	children [2]atomic.Pointer[node[V]]

	network         netaddr.Network
	networkBits     netaddr.Uint128
	networkMaskBits netaddr.Uint128
	prefix          int
	addressLength   int
	splitMask       netaddr.Uint128

	hasValue atomic.Bool
	value    V
}

func newRoutingNode[V any](network netaddr.Network) *node[V] {
	n := &node[V]{
		network:         network,
		networkBits:     network.Bits(),
		networkMaskBits: network.Mask(),
		prefix:          network.Prefix(),
		addressLength:   network.AddressLength(),
		splitMask:       network.SplitMask(),
	}
	return n
}

func newValueNode[V any](network netaddr.Network, value V) *node[V] {
	n := newRoutingNode[V](network)
	n.value = value
	n.hasValue.Store(true)
	return n
}

// promote turns an existing routing node into a value node in place. The
// value is written before the hasValue flag so that a reader observing
// hasValue==true via an atomic load is guaranteed (per the Go memory
// model's happens-before rule for atomics) to see the new value.
func (n *node[V]) promote(value V) {
	n.value = value
	n.hasValue.Store(true)
}

// demote clears a value node back to a routing node. The flag is cleared
// first; the stale value left behind is never observed once hasValue is
// false.
func (n *node[V]) demote() {
	var zero V
	n.hasValue.Store(false)
	n.value = zero
}

// getSlot returns 0 or 1, the only branch decision in the hot path: which
// child slot a network with the given bits belongs in under this node.
// Undefined for leaves at address_length; callers never invoke it there.
func (n *node[V]) getSlot(bits netaddr.Uint128) int {
	if bits.And(n.splitMask).IsZero() {
		return 0
	}
	return 1
}

func (n *node[V]) childCount() int {
	count := 0
	for i := range n.children {
		if n.children[i].Load() != nil {
			count++
		}
	}
	return count
}

// loneChild returns the first non-nil child (slot 0 before slot 1), or nil
// if there are none. Callers only invoke this when childCount() == 1.
func (n *node[V]) loneChild() *node[V] {
	for i := range n.children {
		if c := n.children[i].Load(); c != nil {
			return c
		}
	}
	return nil
}

// diverges reports whether target's bits disagree with n's network within
// n's own mask - i.e. target does not fall under n at all.
func (n *node[V]) diverges(targetBits netaddr.Uint128) bool {
	return !targetBits.And(n.networkMaskBits).Equal(n.networkBits)
}
