package netaddr

import (
	"context"
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"
)

// Network is a canonical (address, prefix) pair: an address family, a
// 128-bit address with its host bits forced to zero, and a prefix length.
// Two Networks are equal iff family, address, and prefix all match.
type Network struct {
	family  Family
	addr    Uint128
	prefix  int
}

// NewNetwork builds a Network from an address and prefix length, truncating
// the address to its canonical form by ANDing with network_mask[family][prefix].
func NewNetwork(f Family, addr Uint128, prefix int) (Network, error) {
	length := f.AddressLength()
	if prefix < 0 || prefix > length {
		return Network{}, ErrInvalidPrefix
	}
	canonical := addr.And(NetworkMask(f, prefix))
	return Network{family: f, addr: canonical, prefix: prefix}, nil
}

// NewHostNetwork builds a host route: prefix equals the family's address
// length, so the address is already canonical.
func NewHostNetwork(f Family, addr Uint128) Network {
	return Network{family: f, addr: addr, prefix: f.AddressLength()}
}

// NewNetworkFromMask builds a Network from an address and a dotted mask,
// failing with ErrInvalidMask if mask is not a canonical contiguous prefix.
func NewNetworkFromMask(f Family, addr Uint128, mask Uint128) (Network, error) {
	prefix, ok := PrefixFromMask(f, mask)
	if !ok {
		return Network{}, ErrInvalidMask
	}
	return NewNetwork(f, addr, prefix)
}

// NetworkFromIP builds a host Network from a net.IP.
func NetworkFromIP(ip net.IP) (Network, error) {
	n, f, err := ToInteger(ip)
	if err != nil {
		return Network{}, err
	}
	return NewHostNetwork(f, n), nil
}

// NetworkFromIPNet builds a Network from a net.IPNet.
func NetworkFromIPNet(ipNet net.IPNet) (Network, error) {
	addr, f, err := ToInteger(ipNet.IP)
	if err != nil {
		return Network{}, err
	}
	ones, bits := ipNet.Mask.Size()
	if bits != f.AddressLength() {
		return Network{}, ErrUnsupportedFamily
	}
	return NewNetwork(f, addr, ones)
}

// ParseNetwork parses "A/p", "A mask", or a bare address "A" (host prefix),
// for either address family. If the address literal does not parse
// numerically, ParseNetwork attempts a hostname resolution and uses the
// first resolved address.
func ParseNetwork(s string) (Network, error) {
	s = strings.TrimSpace(s)

	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		addrPart, rest := s[:idx], s[idx+1:]
		addr, f, err := parseAddrLiteral(addrPart)
		if err != nil {
			return Network{}, err
		}
		if prefix, perr := strconv.Atoi(rest); perr == nil {
			return NewNetwork(f, addr, prefix)
		}
		maskAddr, maskFamily, merr := parseAddrLiteral(rest)
		if merr != nil || maskFamily != f {
			return Network{}, ErrInvalidMask
		}
		return NewNetworkFromMask(f, addr, maskAddr)
	}

	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		addrPart, maskPart := s[:idx], strings.TrimSpace(s[idx+1:])
		addr, f, err := parseAddrLiteral(addrPart)
		if err != nil {
			return Network{}, err
		}
		maskAddr, maskFamily, merr := parseAddrLiteral(maskPart)
		if merr != nil || maskFamily != f {
			return Network{}, ErrInvalidMask
		}
		return NewNetworkFromMask(f, addr, maskAddr)
	}

	addr, f, err := parseAddrLiteral(s)
	if err != nil {
		return Network{}, err
	}
	return NewHostNetwork(f, addr), nil
}

// parseAddrLiteral parses a numeric address literal, falling back to
// hostname resolution when the literal does not parse as an IP.
func parseAddrLiteral(s string) (Uint128, Family, error) {
	if ip := net.ParseIP(s); ip != nil {
		return ToInteger(ip)
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(context.Background(), s)
	if err != nil || len(addrs) == 0 {
		return Uint128{}, 0, ErrMalformedAddress
	}
	return ToInteger(addrs[0].IP)
}

// Family returns the address family.
func (n Network) Family() Family { return n.family }

// Prefix returns the prefix length.
func (n Network) Prefix() int { return n.prefix }

// AddressLength returns the family's address bit length (32 or 128).
func (n Network) AddressLength() int { return n.family.AddressLength() }

// Bits returns the canonical 128-bit network address.
func (n Network) Bits() Uint128 { return n.addr }

// Mask returns network_mask[family][prefix].
func (n Network) Mask() Uint128 { return NetworkMask(n.family, n.prefix) }

// Wildcard returns host_mask[family][prefix].
func (n Network) Wildcard() Uint128 { return HostMask(n.family, n.prefix) }

// Broadcast returns network_bits OR host_mask.
func (n Network) Broadcast() Uint128 { return n.addr.Or(n.Wildcard()) }

// Address returns the canonical network address as a net.IP.
func (n Network) Address() net.IP { return FromInteger(n.addr, n.family) }

// BroadcastAddress returns the broadcast address as a net.IP.
func (n Network) BroadcastAddress() net.IP { return FromInteger(n.Broadcast(), n.family) }

// TotalAddresses returns 2^(address_length-prefix). Note: for the single
// combination family=IPv6, prefix=0, the true value (2^128) does not fit in
// a 128-bit unsigned integer and this method returns the wraparound zero
// value; every other combination is exact.
func (n Network) TotalAddresses() Uint128 {
	shift := n.AddressLength() - n.prefix
	hi, lo := shiftLeft128(0, 1, shift)
	return Uint128{hi, lo}
}

// TotalHosts returns the usable host count: total addresses minus network
// and broadcast for ordinary prefixes, with the point-to-point (/length-1)
// and host (/length) and all-addresses (/0) prefixes as special cases.
func (n Network) TotalHosts() Uint128 {
	length := n.AddressLength()
	switch {
	case n.prefix == 0:
		return n.TotalAddresses()
	case n.prefix == length:
		return Uint128{0, 1}
	case n.prefix == length-1:
		return Uint128{0, 2}
	default:
		total := n.TotalAddresses()
		res, _ := total.Sub(2)
		return res
	}
}

// FirstHost returns the first usable host address. It fails with
// ErrNoHosts for prefix 0.
func (n Network) FirstHost() (net.IP, error) {
	if n.prefix == 0 {
		return nil, ErrNoHosts
	}
	length := n.AddressLength()
	if n.prefix >= length-1 {
		return n.Address(), nil
	}
	first, _ := n.addr.Add(1)
	return FromInteger(first, n.family), nil
}

// LastHost returns the last usable host address. It fails with ErrNoHosts
// for prefix 0.
func (n Network) LastHost() (net.IP, error) {
	if n.prefix == 0 {
		return nil, ErrNoHosts
	}
	length := n.AddressLength()
	if n.prefix >= length-1 {
		return n.Address(), nil
	}
	last, _ := n.Broadcast().Sub(1)
	return FromInteger(last, n.family), nil
}

// Equal reports whether n and other are identical (family, address, prefix).
func (n Network) Equal(other Network) bool {
	return n.family == other.family && n.prefix == other.prefix && n.addr.Equal(other.addr)
}

// Contains reports whether n strictly contains other: same family, n's
// prefix is strictly smaller, and other's address falls within n's range.
func (n Network) Contains(other Network) bool {
	if n.family != other.family || n.prefix >= other.prefix {
		return false
	}
	return other.addr.And(n.Mask()).Equal(n.addr)
}

// ContainsOrEqual relaxes Contains to allow the prefixes to be equal (in
// which case n and other must be the same network).
func (n Network) ContainsOrEqual(other Network) bool {
	if n.family != other.family || n.prefix > other.prefix {
		return false
	}
	return other.addr.And(n.Mask()).Equal(n.addr)
}

// ContainsAddress reports whether the given 128-bit address falls within n.
func (n Network) ContainsAddress(addr Uint128) bool {
	return addr.And(n.Mask()).Equal(n.addr)
}

// Compare returns a total ordering over Networks: IPv4 sorts before IPv6;
// within a family, smaller address first, then smaller prefix first.
func (n Network) Compare(other Network) int {
	if n.family != other.family {
		if n.family < other.family {
			return -1
		}
		return 1
	}
	if c := n.addr.Cmp(other.addr); c != 0 {
		return c
	}
	switch {
	case n.prefix < other.prefix:
		return -1
	case n.prefix > other.prefix:
		return 1
	default:
		return 0
	}
}

// ComplementaryNetwork flips the bit that distinguishes n from its sibling
// under the same /(prefix-1) supernet: the least-significant bit of n's
// network portion. It fails with ErrNoComplement for prefix 0.
func (n Network) ComplementaryNetwork() (Network, error) {
	if n.prefix == 0 {
		return Network{}, ErrNoComplement
	}
	idx := n.AddressLength() - n.prefix
	hi, lo := shiftLeft128(0, 1, idx)
	flipped := n.addr.Xor(Uint128{hi, lo})
	return Network{family: n.family, addr: flipped, prefix: n.prefix}, nil
}

// SplitBit returns the bit position (counting from the LSB, 0-indexed) that
// distinguishes the two halves of n's address range: the bit the trie
// branches on to route a network's children. It is undefined (returns -1)
// for a leaf network at address_length.
func (n Network) SplitBit() int {
	length := n.AddressLength()
	if n.prefix >= length {
		return -1
	}
	return length - n.prefix - 1
}

// SplitMask returns the single-bit mask used by the trie to route a
// network's two children.
func (n Network) SplitMask() Uint128 {
	bit := n.SplitBit()
	if bit < 0 {
		return Uint128{}
	}
	hi, lo := shiftLeft128(0, 1, bit)
	return Uint128{hi, lo}
}

// SmallestEnclosing returns the smallest Network containing both a and b.
// a and b must be the same family.
func SmallestEnclosing(a, b Network) (Network, error) {
	if a.family != b.family {
		return Network{}, ErrUnsupportedFamily
	}
	if a.prefix == 0 || b.prefix == 0 {
		return NewNetwork(a.family, Uint128{}, 0)
	}
	x := a.addr.Xor(b.addr)
	if x.IsZero() {
		if a.prefix <= b.prefix {
			return a, nil
		}
		return b, nil
	}
	k := 128 - x.LeadingZeros()
	prefix := a.AddressLength() - k
	if a.prefix < prefix {
		prefix = a.prefix
	}
	if b.prefix < prefix {
		prefix = b.prefix
	}
	return NewNetwork(a.family, a.addr, prefix)
}

// Add advances the network by k blocks of size 2^(address_length-prefix),
// failing with ErrOverflow if the result falls outside the family's
// address space.
func (n Network) Add(k int64) (Network, error) {
	length := n.AddressLength()
	shift := length - n.prefix
	if shift >= 128 {
		if k == 0 {
			return n, nil
		}
		return Network{}, ErrOverflow
	}

	block := new(big.Int).Lsh(big.NewInt(1), uint(shift))
	delta := new(big.Int).Mul(block, big.NewInt(k))
	cur := uint128ToBig(n.addr)
	result := new(big.Int).Add(cur, delta)

	if result.Sign() < 0 {
		return Network{}, ErrOverflow
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(length))
	if result.Cmp(limit) >= 0 {
		return Network{}, ErrOverflow
	}

	return NewNetwork(n.family, bigToUint128(result), n.prefix)
}

// Sub advances the network backward by k blocks; equivalent to Add(-k).
func (n Network) Sub(k int64) (Network, error) {
	return n.Add(-k)
}

func uint128ToBig(v Uint128) *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(v.Lo))
	return b
}

func bigToUint128(b *big.Int) Uint128 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(b, 64), mask64).Uint64()
	return Uint128{hi, lo}
}

// String renders the network as "address/prefix".
func (n Network) String() string {
	return fmt.Sprintf("%s/%d", n.Address().String(), n.prefix)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
