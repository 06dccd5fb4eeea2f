// Package netset implements pure set-algebra operations over Networks:
// Summarize, Split, RemoveNetwork, and ComplementaryNetwork. These are
// independent of the trie - they operate on slices of netaddr.Network and
// are used by tests and downstream callers, never by the trie itself.
package netset

import (
	"sort"

	"github.com/ramzeth/triekit/netaddr"
)

// Summarize coalesces pairs of sibling networks (same prefix, complementary
// network bits) into their common supernet, iterating prefix lengths from
// most specific to least, repeating until no pair remains. The precondition
// is a set of non-overlapping networks; two networks of different prefix
// lengths never partially overlap once canonicalized, so only exact
// duplicates need collapsing before pairing.
// Output order is unspecified beyond being a minimal equivalent set; this
// implementation returns it sorted by Network.Compare for determinism.
func Summarize(set []netaddr.Network) []netaddr.Network {
	byFamily := make(map[netaddr.Family]map[string]netaddr.Network)
	for _, n := range set {
		m := byFamily[n.Family()]
		if m == nil {
			m = make(map[string]netaddr.Network)
			byFamily[n.Family()] = m
		}
		m[n.String()] = n
	}

	var out []netaddr.Network
	for _, m := range byFamily {
		out = append(out, summarizeFamily(m)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// summarizeFamily repeatedly merges sibling pairs within a single family's
// set until a full pass produces no merge.
func summarizeFamily(current map[string]netaddr.Network) []netaddr.Network {
	for {
		byPrefix := make(map[int][]netaddr.Network)
		maxPrefix := 0
		for _, n := range current {
			byPrefix[n.Prefix()] = append(byPrefix[n.Prefix()], n)
			if n.Prefix() > maxPrefix {
				maxPrefix = n.Prefix()
			}
		}

		changed := false
		for p := maxPrefix; p >= 1; p-- {
			consumed := make(map[string]bool)
			for _, n := range byPrefix[p] {
				key := n.String()
				if consumed[key] {
					continue
				}
				comp, err := n.ComplementaryNetwork()
				if err != nil {
					continue
				}
				sibling, ok := current[comp.String()]
				if !ok || consumed[sibling.String()] {
					continue
				}
				parent, err := netaddr.SmallestEnclosing(n, sibling)
				if err != nil {
					continue
				}
				delete(current, key)
				delete(current, sibling.String())
				current[parent.String()] = parent
				consumed[key] = true
				consumed[sibling.String()] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := make([]netaddr.Network, 0, len(current))
	for _, n := range current {
		out = append(out, n)
	}
	return out
}
