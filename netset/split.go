package netset

import "github.com/ramzeth/triekit/netaddr"

// Split yields the sequence of networks of prefix length newPrefix that
// together cover n, in ascending order. newPrefix must be no coarser than
// n's own prefix and no finer than the family's address length.
func Split(n netaddr.Network, newPrefix int) ([]netaddr.Network, error) {
	if newPrefix > n.AddressLength() {
		return nil, ErrSplitTooFine
	}
	if newPrefix < n.Prefix() {
		return nil, netaddr.ErrInvalidPrefix
	}
	if newPrefix == n.Prefix() {
		return []netaddr.Network{n}, nil
	}

	delta := newPrefix - n.Prefix()
	if delta >= 63 {
		// 1<<delta stops fitting a machine int at this point (and wraps to
		// 0 for delta>=64); nothing of this size could be enumerated anyway.
		return nil, ErrSplitTooLarge
	}
	count := 1 << uint(delta)
	base, err := netaddr.NewNetwork(n.Family(), n.Bits(), newPrefix)
	if err != nil {
		return nil, err
	}

	out := make([]netaddr.Network, 0, count)
	cur := base
	for i := 0; i < count; i++ {
		out = append(out, cur)
		if i == count-1 {
			break
		}
		cur, err = cur.Add(1)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
