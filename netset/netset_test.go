package netset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramzeth/triekit/netaddr"
)

func mustNet(t *testing.T, s string) netaddr.Network {
	t.Helper()
	n, err := netaddr.ParseNetwork(s)
	require.NoError(t, err)
	return n
}

func TestSummarizeReadmeFixture(t *testing.T) {
	inputs := []string{
		"10.0.8.0/23", "10.0.10.0/24", "10.0.11.0/24", "10.0.12.0/22",
		"10.0.128.0/18", "10.0.192.0/18",
		"100.0.0.100/32", "100.0.0.101/32", "100.0.0.102/32",
		"0.0.0.0/0",
	}
	set := make([]netaddr.Network, len(inputs))
	for i, s := range inputs {
		set[i] = mustNet(t, s)
	}

	got := Summarize(set)
	want := []string{
		"0.0.0.0/0", "10.0.8.0/21", "10.0.128.0/17", "100.0.0.100/31", "100.0.0.102/32",
	}
	require.Len(t, got, len(want))
	for i, s := range want {
		assert.Equal(t, s, got[i].String())
	}
}

func TestSummarizeSingleNetworkUnchanged(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	got := Summarize([]netaddr.Network{n})
	require.Len(t, got, 1)
	assert.Equal(t, n, got[0])
}

func TestSummarizeNoSiblingLeavesSetIntact(t *testing.T) {
	a, b := mustNet(t, "10.0.0.0/24"), mustNet(t, "192.168.0.0/24")
	got := Summarize([]netaddr.Network{a, b})
	assert.Len(t, got, 2)
}

func TestSplitCoversInputExactly(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	parts, err := Split(n, 26)
	require.NoError(t, err)
	require.Len(t, parts, 4)
	assert.Equal(t, "10.0.0.0/26", parts[0].String())
	assert.Equal(t, "10.0.0.64/26", parts[1].String())
	assert.Equal(t, "10.0.0.128/26", parts[2].String())
	assert.Equal(t, "10.0.0.192/26", parts[3].String())
}

func TestSplitSamePrefixReturnsInput(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	parts, err := Split(n, 24)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].Equal(n))
}

func TestSplitTooFine(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	_, err := Split(n, 33)
	assert.ErrorIs(t, err, ErrSplitTooFine)
}

func TestSplitCoarserThanInputIsInvalid(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	_, err := Split(n, 16)
	assert.ErrorIs(t, err, netaddr.ErrInvalidPrefix)
}

func TestSplitRejectsDeltaThatWouldOverflowPieceCount(t *testing.T) {
	n := mustNet(t, "::/0")
	_, err := Split(n, 64)
	assert.ErrorIs(t, err, ErrSplitTooLarge)
}

func TestRemoveNetworkSubtractsContainedSubnet(t *testing.T) {
	container := mustNet(t, "10.0.0.0/24")
	remove := mustNet(t, "10.0.0.128/25")

	got, err := RemoveNetwork(container, remove)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10.0.0.0/25", got[0].String())
}

func TestRemoveNetworkSmallFromLarge(t *testing.T) {
	container := mustNet(t, "10.0.0.0/24")
	remove := mustNet(t, "10.0.0.5/32")

	got, err := RemoveNetwork(container, remove)
	require.NoError(t, err)

	for _, n := range got {
		assert.False(t, n.ContainsOrEqual(remove))
	}
	summarized := Summarize(append(got, remove))
	require.Len(t, summarized, 1)
	assert.Equal(t, container.String(), summarized[0].String())
}

func TestRemoveNetworkRejectsNonContained(t *testing.T) {
	container := mustNet(t, "10.0.0.0/24")
	other := mustNet(t, "192.168.0.0/24")
	_, err := RemoveNetwork(container, other)
	assert.ErrorIs(t, err, ErrNotContained)
}

func TestRemoveNetworkEqualYieldsEmpty(t *testing.T) {
	n := mustNet(t, "10.0.0.0/24")
	got, err := RemoveNetwork(n, n)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComplementaryNetworkFreeFunction(t *testing.T) {
	n := mustNet(t, "10.0.0.0/25")
	comp, err := ComplementaryNetwork(n)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.128/25", comp.String())
}
