package netaddr

// lowOnes returns a 128-bit value with its lowest n bits set (0 <= n <= 128).
func lowOnes(n int) Uint128 {
	switch {
	case n <= 0:
		return Uint128{}
	case n >= 128:
		return Uint128{^uint64(0), ^uint64(0)}
	case n <= 64:
		return Uint128{0, (uint64(1) << n) - 1}
	default:
		return Uint128{(uint64(1) << (n - 64)) - 1, ^uint64(0)}
	}
}

// networkMaskTable and hostMaskTable are the only source of mask bits in
// the package; every containment, truncation, or broadcast computation
// consults them rather than recomputing masks on the fly.
var networkMaskTable [2][]Uint128
var hostMaskTable [2][]Uint128
var maskToPrefix [2]map[Uint128]int

func init() {
	for _, f := range []Family{IPv4, IPv6} {
		length := f.AddressLength()
		netTbl := make([]Uint128, length+1)
		hostTbl := make([]Uint128, length+1)
		rev := make(map[Uint128]int, length+1)
		for p := 0; p <= length; p++ {
			host := lowOnes(length - p)
			full := lowOnes(length)
			net := Uint128{full.Hi ^ host.Hi, full.Lo ^ host.Lo}
			netTbl[p] = net
			hostTbl[p] = host
			rev[net] = p
		}
		networkMaskTable[f] = netTbl
		hostMaskTable[f] = hostTbl
		maskToPrefix[f] = rev
	}
}

// NetworkMask returns network_mask[family][prefix].
func NetworkMask(f Family, prefix int) Uint128 {
	return networkMaskTable[f][prefix]
}

// HostMask returns host_mask[family][prefix] (the wildcard mask).
func HostMask(f Family, prefix int) Uint128 {
	return hostMaskTable[f][prefix]
}

// PrefixFromMask looks up the prefix length whose network mask equals mask,
// used when constructing a Network from a dotted-decimal mask. ok is false
// if mask is not a canonical contiguous prefix mask for the family.
func PrefixFromMask(f Family, mask Uint128) (prefix int, ok bool) {
	p, found := maskToPrefix[f][mask]
	return p, found
}
