package trie

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramzeth/triekit/netaddr"
)

func TestSyncSerializesWriters(t *testing.T) {
	s := NewSync[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, _ := netaddr.NewNetwork(netaddr.IPv4, netaddr.Uint128{Lo: uint64(i) << 8}, 24)
			s.TryAdd(n, i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int64(50), s.Count())
}

func TestSyncReadersDuringWrites(t *testing.T) {
	s := NewSync[string]()
	base := mustNetSync(t, "10.0.0.0/8")
	require.NoError(t, s.Add(base, "base"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			n, _ := netaddr.NewNetwork(netaddr.IPv4, netaddr.Uint128{Lo: uint64(10)<<24 | uint64(i%255)<<16}, 24)
			s.TryAdd(n, "leaf")
			s.TryRemove(n)
		}
	}()

	for i := 0; i < 500; i++ {
		entry, ok := s.TryGetMatch(base)
		require.True(t, ok)
		assert.Equal(t, "10.0.0.0/8", entry.Network.String())
	}
	<-done
}

func mustNetSync(t *testing.T, s string) netaddr.Network {
	t.Helper()
	n, err := netaddr.ParseNetwork(s)
	require.NoError(t, err)
	return n
}
