package netaddr

import "math/bits"

// Uint128 is an unsigned 128-bit integer, stored as two big-endian halves.
// It is the single representation the trie works in once an address has
// been serialized: IPv4 addresses occupy the low 32 bits of Lo with Hi
// always zero, IPv6 addresses use the full 128 bits.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// from32 builds a Uint128 from a 32-bit IPv4 address held in the low bits.
func from32(v uint32) Uint128 {
	return Uint128{Hi: 0, Lo: uint64(v)}
}

// from128 builds a Uint128 from two big-endian 64-bit halves.
func from128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 { return Uint128{u.Hi & v.Hi, u.Lo & v.Lo} }

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 { return Uint128{u.Hi | v.Hi, u.Lo | v.Lo} }

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 { return Uint128{u.Hi ^ v.Hi, u.Lo ^ v.Lo} }

// Not returns ^u.
func (u Uint128) Not() Uint128 { return Uint128{^u.Hi, ^u.Lo} }

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Equal reports whether u == v.
func (u Uint128) Equal(v Uint128) bool { return u.Hi == v.Hi && u.Lo == v.Lo }

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	if u.Hi != v.Hi {
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	}
	if u.Lo != v.Lo {
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Bit returns the value (0 or 1) of the bit at position pos, counting from
// the most significant bit (pos 0) of a value address_length bits wide.
// The caller supplies addressLength since Uint128 itself does not carry a
// family.
func (u Uint128) Bit(pos, addressLength int) uint8 {
	bitIndexFromLSB := addressLength - 1 - pos
	if bitIndexFromLSB >= 64 {
		return uint8((u.Hi >> (bitIndexFromLSB - 64)) & 1)
	}
	return uint8((u.Lo >> bitIndexFromLSB) & 1)
}

// shiftLeft128 shifts a 128-bit value left by n bits (0 <= n <= 128).
func shiftLeft128(hi, lo uint64, n int) (rhi, rlo uint64) {
	switch {
	case n <= 0:
		return hi, lo
	case n >= 128:
		return 0, 0
	case n >= 64:
		return lo << (n - 64), 0
	default:
		return (hi << n) | (lo >> (64 - n)), lo << n
	}
}

// Add returns u + n, with the second result reporting a carry out of 128
// bits.
func (u Uint128) Add(n uint64) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, n, 0)
	hi, carry2 := bits.Add64(u.Hi, 0, carry)
	return Uint128{hi, lo}, carry2 != 0
}

// Sub returns u - n, with the second result reporting a borrow past zero.
func (u Uint128) Sub(n uint64) (Uint128, bool) {
	lo, borrow := bits.Sub64(u.Lo, n, 0)
	hi, borrow2 := bits.Sub64(u.Hi, 0, borrow)
	return Uint128{hi, lo}, borrow2 != 0
}

// LeadingZeros returns the number of leading zero bits in a 128-bit value.
func (u Uint128) LeadingZeros() int {
	if u.Hi != 0 {
		return bits.LeadingZeros64(u.Hi)
	}
	return 64 + bits.LeadingZeros64(u.Lo)
}
