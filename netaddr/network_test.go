package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetworkSlashPrefix(t *testing.T) {
	n, err := ParseNetwork("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, IPv4, n.Family())
	assert.Equal(t, 8, n.Prefix())
	assert.Equal(t, "10.0.0.0/8", n.String())
}

func TestParseNetworkSlashMask(t *testing.T) {
	n, err := ParseNetwork("192.168.1.0/255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, 24, n.Prefix())
}

func TestParseNetworkSpaceMask(t *testing.T) {
	n, err := ParseNetwork("192.168.1.0 255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, 24, n.Prefix())
}

func TestParseNetworkBareHost(t *testing.T) {
	n, err := ParseNetwork("192.168.1.5")
	require.NoError(t, err)
	assert.Equal(t, 32, n.Prefix())
}

func TestParseNetworkInvalidMask(t *testing.T) {
	_, err := ParseNetwork("192.168.1.0/255.255.255.1")
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestParseNetworkTruncation(t *testing.T) {
	n, err := ParseNetwork("10.1.2.3/8")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", n.String())
}

func TestParseNetworkIPv6(t *testing.T) {
	n, err := ParseNetwork("2001:db8::/32")
	require.NoError(t, err)
	assert.Equal(t, IPv6, n.Family())
	assert.Equal(t, 32, n.Prefix())
}

func TestContains(t *testing.T) {
	a, _ := ParseNetwork("10.0.0.0/8")
	b, _ := ParseNetwork("10.1.2.0/24")
	c, _ := ParseNetwork("11.0.0.0/8")
	assert.True(t, a.Contains(b))
	assert.False(t, a.Contains(c))
	assert.False(t, a.Contains(a))
	assert.True(t, a.ContainsOrEqual(a))
}

func TestComplementaryInvolution(t *testing.T) {
	n, _ := ParseNetwork("10.0.0.0/25")
	comp, err := n.ComplementaryNetwork()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.128/25", comp.String())
	back, err := comp.ComplementaryNetwork()
	require.NoError(t, err)
	assert.True(t, back.Equal(n))
}

func TestComplementaryPrefixZero(t *testing.T) {
	n, _ := ParseNetwork("0.0.0.0/0")
	_, err := n.ComplementaryNetwork()
	assert.ErrorIs(t, err, ErrNoComplement)
}

func TestSmallestEnclosing(t *testing.T) {
	a, _ := ParseNetwork("128.0.0.0/5")
	b, _ := ParseNetwork("241.104.240.0/21")
	enc, err := SmallestEnclosing(a, b)
	require.NoError(t, err)
	assert.True(t, enc.ContainsOrEqual(a))
	assert.True(t, enc.ContainsOrEqual(b))
	assert.Equal(t, "128.0.0.0/1", enc.String())
}

func TestSmallestEnclosingSamePrefix(t *testing.T) {
	a, _ := ParseNetwork("51.229.96.0/23")
	b, _ := ParseNetwork("40.200.240.0/22")
	c, _ := ParseNetwork("32.0.0.0/3")
	ab, err := SmallestEnclosing(a, b)
	require.NoError(t, err)
	abc, err := SmallestEnclosing(ab, c)
	require.NoError(t, err)
	assert.Equal(t, "32.0.0.0/3", abc.String())
}

func TestCompareOrdering(t *testing.T) {
	v4, _ := ParseNetwork("10.0.0.0/8")
	v6, _ := ParseNetwork("::/0")
	assert.Equal(t, -1, v4.Compare(v6))
	assert.Equal(t, 1, v6.Compare(v4))

	smaller, _ := ParseNetwork("10.0.0.0/8")
	larger, _ := ParseNetwork("10.0.0.0/16")
	assert.Equal(t, -1, smaller.Compare(larger))
}

func TestTotalAddressesAndHosts(t *testing.T) {
	n, _ := ParseNetwork("10.0.0.0/24")
	assert.Equal(t, Uint128{0, 256}, n.TotalAddresses())
	assert.Equal(t, Uint128{0, 254}, n.TotalHosts())

	host, _ := ParseNetwork("10.0.0.1/32")
	assert.Equal(t, Uint128{0, 1}, host.TotalHosts())

	ptp, _ := ParseNetwork("10.0.0.0/31")
	assert.Equal(t, Uint128{0, 2}, ptp.TotalHosts())
}

func TestFirstLastHost(t *testing.T) {
	n, _ := ParseNetwork("10.0.0.0/24")
	first, err := n.FirstHost()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", first.String())

	last, err := n.LastHost()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.254", last.String())

	zero, _ := ParseNetwork("0.0.0.0/0")
	_, err = zero.FirstHost()
	assert.ErrorIs(t, err, ErrNoHosts)
}

func TestNetworkAddSub(t *testing.T) {
	n, _ := ParseNetwork("10.0.0.0/24")
	next, err := n.Add(1)
	require.NoError(t, err)
	assert.Equal(t, "10.0.1.0/24", next.String())

	prev, err := next.Sub(1)
	require.NoError(t, err)
	assert.True(t, prev.Equal(n))
}

func TestNetworkAddOverflow(t *testing.T) {
	n, _ := ParseNetwork("255.0.0.0/8")
	_, err := n.Add(1)
	assert.ErrorIs(t, err, ErrOverflow)
}
