package netaddr

import "fmt"

// ErrInvalidPrefix is returned when a prefix length falls outside
// [0, address_length] for the family.
var ErrInvalidPrefix = fmt.Errorf("invalid prefix length")

// ErrInvalidMask is returned when a dotted mask is not a canonical
// contiguous prefix mask.
var ErrInvalidMask = fmt.Errorf("mask is not a canonical contiguous prefix")

// ErrMalformedAddress is returned when an address literal fails to parse
// and does not resolve as a hostname either.
var ErrMalformedAddress = fmt.Errorf("malformed address")

// ErrUnsupportedFamily is returned when an operation is attempted across
// address families, e.g. SmallestEnclosing of an IPv4 and an IPv6 Network,
// or a net.IPNet whose mask length does not match its address family.
var ErrUnsupportedFamily = fmt.Errorf("unsupported or mismatched address family")

// ErrOverflow is returned when advancing a Network by +n/-n blocks would
// step outside the address space of its family.
var ErrOverflow = fmt.Errorf("network arithmetic overflow")

// ErrNoComplement is returned when ComplementaryNetwork is requested for a
// prefix-0 network, which has no sibling.
var ErrNoComplement = fmt.Errorf("prefix 0 network has no complement")

// ErrNoHosts is returned when FirstHost/LastHost is requested on a
// prefix-0 network.
var ErrNoHosts = fmt.Errorf("prefix 0 network has no usable host range")
