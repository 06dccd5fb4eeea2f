// Package trie implements a variable-stride binary trie for longest-prefix
// matching: insertion, deletion, exact and longest-prefix lookup, all-match
// enumeration, and deterministic rendering, over both IPv4 and IPv6
// networks in one structure.
package trie

import (
	"net"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ramzeth/triekit/netaddr"
)

// Entry pairs a Network with its payload, as returned by the lookup
// operations.
type Entry[V any] struct {
	Network netaddr.Network
	Value   V
}

// Trie is a lock-free single-writer/multiple-reader binary trie holding
// two independent roots, one per address family. The caller is
// responsible for serializing writers, either externally or by using the
// Sync wrapper in concurrent.go.
type Trie[V any] struct {
	roots [2]atomic.Pointer[node[V]]
	count atomic.Int64
	log   *logrus.Logger
}

// New returns an empty Trie with both family roots initialized to the
// synthetic 0/0 and ::/0 routing nodes.
func New[V any]() *Trie[V] {
	t := &Trie[V]{}
	zeroV4, _ := netaddr.NewNetwork(netaddr.IPv4, netaddr.Uint128{}, 0)
	zeroV6, _ := netaddr.NewNetwork(netaddr.IPv6, netaddr.Uint128{}, 0)
	t.roots[netaddr.IPv4].Store(newRoutingNode[V](zeroV4))
	t.roots[netaddr.IPv6].Store(newRoutingNode[V](zeroV6))
	return t
}

// WithLogger attaches a logrus.Logger that receives debug-level records of
// structural mutations (routing node creation, promotion, pruning). It is
// nil by default, so logging costs nothing unless a caller opts in.
func (t *Trie[V]) WithLogger(l *logrus.Logger) *Trie[V] {
	t.log = l
	return t
}

func (t *Trie[V]) root(f netaddr.Family) *node[V] {
	return t.roots[f].Load()
}

func (t *Trie[V]) debugf(format string, args ...any) {
	if t.log != nil {
		t.log.Debugf(format, args...)
	}
}

// Count returns the number of value nodes currently in the trie, across
// both families.
func (t *Trie[V]) Count() int64 {
	return t.count.Load()
}

// Add inserts network with the given payload, returning ErrDuplicate if an
// identical network is already present.
func (t *Trie[V]) Add(network netaddr.Network, value V) error {
	if !t.insert(network, value) {
		return ErrDuplicate
	}
	return nil
}

// TryAdd inserts network with the given payload, returning false instead
// of an error on duplicate.
func (t *Trie[V]) TryAdd(network netaddr.Network, value V) bool {
	return t.insert(network, value)
}

// GetOrAdd returns the payload already stored for network if present;
// otherwise it calls factory, inserts the result, and returns it. loaded
// reports whether an existing entry was returned.
func (t *Trie[V]) GetOrAdd(network netaddr.Network, factory func() V) (value V, loaded bool) {
	if existing, ok := t.lookupExact(network); ok {
		return existing.value, true
	}
	value = factory()
	t.insert(network, value)
	return value, false
}

// insert walks to the deepest node containing network and installs it as
// either that node's value, a new leaf, a new parent of an existing child,
// or a fresh routing node over two siblings. It returns false only on
// duplicate; every other outcome is a structural success.
func (t *Trie[V]) insert(network netaddr.Network, value V) bool {
	root := t.root(network.Family())
	path := walkPath(root, network.Bits(), network.Prefix())
	parent := path[len(path)-1]
	slot := parent.getSlot(network.Bits())
	existing := parent.children[slot].Load()

	switch {
	case parent.network.Equal(network):
		if parent.hasValue.Load() {
			return false
		}
		parent.promote(value)
		t.debugf("trie: promoted routing node %s to value node", network)

	case existing == nil:
		leaf := newValueNode(network, value)
		parent.children[slot].Store(leaf)
		t.debugf("trie: inserted leaf %s", network)

	case network.Prefix() < existing.prefix && network.Contains(existing.network):
		leaf := newValueNode(network, value)
		leaf.children[leaf.getSlot(existing.networkBits)].Store(existing)
		parent.children[slot].Store(leaf)
		t.debugf("trie: inserted %s as new parent of %s", network, existing.network)

	default:
		enclosing, err := netaddr.SmallestEnclosing(network, existing.network)
		if err != nil {
			// Families are validated by root selection; this cannot occur
			// for networks reaching insert through Add/TryAdd.
			return false
		}
		routing := newRoutingNode[V](enclosing)
		leaf := newValueNode(network, value)
		routing.children[routing.getSlot(leaf.networkBits)].Store(leaf)
		routing.children[routing.getSlot(existing.networkBits)].Store(existing)
		parent.children[slot].Store(routing)
		t.debugf("trie: created routing node %s over %s and %s", enclosing, network, existing.network)
	}

	t.count.Add(1)
	return true
}

// lookupExact returns the value node for network, if one exists.
func (t *Trie[V]) lookupExact(network netaddr.Network) (*node[V], bool) {
	root := t.root(network.Family())
	path := walkPath(root, network.Bits(), network.Prefix())
	last := path[len(path)-1]
	if last.network.Equal(network) && last.hasValue.Load() {
		return last, true
	}
	return nil, false
}

// Remove deletes the value node for the exact network, returning
// ErrNotFound if absent.
func (t *Trie[V]) Remove(network netaddr.Network) error {
	if !t.remove(network) {
		return ErrNotFound
	}
	return nil
}

// TryRemove deletes the value node for the exact network, returning false
// instead of an error if absent.
func (t *Trie[V]) TryRemove(network netaddr.Network) bool {
	return t.remove(network)
}

// remove demotes the value node for the exact network back to a routing
// node, then walks the recorded path back toward the root collapsing any
// routing node left with fewer than two children.
func (t *Trie[V]) remove(network netaddr.Network) bool {
	root := t.root(network.Family())
	path := walkPath(root, network.Bits(), network.Prefix())
	target := path[len(path)-1]
	if !target.network.Equal(network) || !target.hasValue.Load() {
		return false
	}

	target.demote()
	t.debugf("trie: demoted value node %s to routing node", network)
	t.count.Add(-1)

	for i := len(path) - 1; i >= 1; i-- {
		current := path[i]
		if current.hasValue.Load() {
			break
		}
		count := current.childCount()
		if count >= 2 {
			break
		}
		parent := path[i-1]
		slot := parent.getSlot(current.networkBits)
		if count == 0 {
			parent.children[slot].Store(nil)
			t.debugf("trie: pruned empty routing node %s", current.network)
		} else {
			lone := current.loneChild()
			parent.children[slot].Store(lone)
			t.debugf("trie: spliced %s in place of %s", lone.network, current.network)
		}
	}
	return true
}

// GetMatchAddr is GetMatch for a bare address rather than a network.
func (t *Trie[V]) GetMatchAddr(ip net.IP) (Entry[V], error) {
	n, err := netaddr.NetworkFromIP(ip)
	if err != nil {
		return Entry[V]{}, err
	}
	return t.GetMatch(n)
}

// TryGetMatchAddr is TryGetMatch for a bare address.
func (t *Trie[V]) TryGetMatchAddr(ip net.IP) (Entry[V], bool) {
	n, err := netaddr.NetworkFromIP(ip)
	if err != nil {
		return Entry[V]{}, false
	}
	return t.TryGetMatch(n)
}

// GetMatchesAddr is GetMatches for a bare address.
func (t *Trie[V]) GetMatchesAddr(ip net.IP) ([]Entry[V], error) {
	n, err := netaddr.NetworkFromIP(ip)
	if err != nil {
		return nil, err
	}
	return t.GetMatches(n)
}

// TryGetMatchesAddr is TryGetMatches for a bare address.
func (t *Trie[V]) TryGetMatchesAddr(ip net.IP) ([]Entry[V], bool) {
	n, err := netaddr.NetworkFromIP(ip)
	if err != nil {
		return nil, false
	}
	return t.TryGetMatches(n)
}

// GetMatch returns the payload of the most specific network in the trie
// that contains (or equals) network.
func (t *Trie[V]) GetMatch(network netaddr.Network) (Entry[V], error) {
	best := walkLongest(t.root(network.Family()), network.Bits(), network.Prefix())
	if best == nil {
		return Entry[V]{}, ErrNotFound
	}
	return Entry[V]{Network: best.network, Value: best.value}, nil
}

// TryGetMatch is GetMatch without the error return.
func (t *Trie[V]) TryGetMatch(network netaddr.Network) (Entry[V], bool) {
	best := walkLongest(t.root(network.Family()), network.Bits(), network.Prefix())
	if best == nil {
		return Entry[V]{}, false
	}
	return Entry[V]{Network: best.network, Value: best.value}, true
}

// GetMatches returns every network in the trie containing (or equal to)
// network, in strictly increasing prefix order (least specific first).
func (t *Trie[V]) GetMatches(network netaddr.Network) ([]Entry[V], error) {
	nodes := walkAll(t.root(network.Family()), network.Bits(), network.Prefix())
	if len(nodes) == 0 {
		return nil, ErrNotFound
	}
	return toEntries(nodes), nil
}

// TryGetMatches is GetMatches without the error return.
func (t *Trie[V]) TryGetMatches(network netaddr.Network) ([]Entry[V], bool) {
	nodes := walkAll(t.root(network.Family()), network.Bits(), network.Prefix())
	if len(nodes) == 0 {
		return nil, false
	}
	return toEntries(nodes), true
}

func toEntries[V any](nodes []*node[V]) []Entry[V] {
	entries := make([]Entry[V], len(nodes))
	for i, n := range nodes {
		entries[i] = Entry[V]{Network: n.network, Value: n.value}
	}
	return entries
}

// Clear replaces both family roots with fresh routing nodes and resets the
// count. Existing readers that hold a reference to the old roots continue
// to see a valid, if now-detached, tree.
func (t *Trie[V]) Clear() {
	zeroV4, _ := netaddr.NewNetwork(netaddr.IPv4, netaddr.Uint128{}, 0)
	zeroV6, _ := netaddr.NewNetwork(netaddr.IPv6, netaddr.Uint128{}, 0)
	t.roots[netaddr.IPv4].Store(newRoutingNode[V](zeroV4))
	t.roots[netaddr.IPv6].Store(newRoutingNode[V](zeroV6))
	t.count.Store(0)
	t.debugf("trie: cleared")
}
