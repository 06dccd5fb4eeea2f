package netset

import (
	"sort"

	"github.com/ramzeth/triekit/netaddr"
)

// RemoveNetwork subtracts remove from container, which must strictly
// contain it (or equal it, in which case the result is empty), returning
// the minimal set of networks covering container's address space minus
// remove. It works by repeated splitting: at each step it halves the
// current remainder and keeps the half that does not contain remove,
// descending into the half that does, until the halves reach remove's own
// prefix. Rejecting a remove argument that isn't contained up front keeps
// that descent bounded instead of recursing unboundedly on bad input.
func RemoveNetwork(container, remove netaddr.Network) ([]netaddr.Network, error) {
	if container.Family() != remove.Family() {
		return nil, netaddr.ErrUnsupportedFamily
	}
	if !container.ContainsOrEqual(remove) {
		return nil, ErrNotContained
	}
	if container.Equal(remove) {
		return nil, nil
	}

	var result []netaddr.Network
	current := container
	for current.Prefix() < remove.Prefix() {
		halves, err := Split(current, current.Prefix()+1)
		if err != nil {
			return nil, err
		}
		for _, half := range halves {
			if half.ContainsOrEqual(remove) {
				current = half
			} else {
				result = append(result, half)
			}
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Compare(result[j]) < 0 })
	return result, nil
}

// ComplementaryNetwork is the top-level free-function form of
// Network.ComplementaryNetwork, exposed for symmetry with Summarize,
// Split, and RemoveNetwork.
func ComplementaryNetwork(n netaddr.Network) (netaddr.Network, error) {
	return n.ComplementaryNetwork()
}
