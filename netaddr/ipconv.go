package netaddr

import (
	"encoding/binary"
	"net"
)

// ToInteger converts an address to its 128-bit integer form. IPv4
// addresses occupy the low 32 bits.
func ToInteger(ip net.IP) (Uint128, Family, error) {
	if v4 := ip.To4(); v4 != nil {
		return from32(binary.BigEndian.Uint32(v4)), IPv4, nil
	}
	if v6 := ip.To16(); v6 != nil {
		hi := binary.BigEndian.Uint64(v6[0:8])
		lo := binary.BigEndian.Uint64(v6[8:16])
		return from128(hi, lo), IPv6, nil
	}
	return Uint128{}, 0, ErrMalformedAddress
}

// FromInteger converts a 128-bit integer back into a net.IP for the given
// family.
func FromInteger(v Uint128, f Family) net.IP {
	if f == IPv4 {
		b := make(net.IP, 4)
		binary.BigEndian.PutUint32(b, uint32(v.Lo))
		return b
	}
	b := make(net.IP, 16)
	binary.BigEndian.PutUint64(b[0:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:16], v.Lo)
	return b
}
