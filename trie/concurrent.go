package trie

import (
	"net"
	"sync"

	"github.com/ramzeth/triekit/netaddr"
)

// Sync wraps a Trie so that writers (Add, TryAdd, GetOrAdd, Remove,
// TryRemove, Clear) are serialized under a single mutex held for the
// duration of the call, while readers take no lock at all. This mirrors
// the atomic.Pointer-plus-sync.Mutex split that gaissmai/bart's
// example_table_concurrent_test.go documents for whole-table replacement,
// applied here to a single long-lived Trie whose internal node slots
// already publish atomically.
type Sync[V any] struct {
	mu sync.Mutex
	t  *Trie[V]
}

// NewSync returns a Sync wrapper around a freshly constructed Trie.
func NewSync[V any]() *Sync[V] {
	return &Sync[V]{t: New[V]()}
}

// Add serializes against other writers and delegates to Trie.Add.
func (s *Sync[V]) Add(network netaddr.Network, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Add(network, value)
}

// TryAdd serializes against other writers and delegates to Trie.TryAdd.
func (s *Sync[V]) TryAdd(network netaddr.Network, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.TryAdd(network, value)
}

// GetOrAdd serializes against other writers and delegates to Trie.GetOrAdd.
func (s *Sync[V]) GetOrAdd(network netaddr.Network, factory func() V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.GetOrAdd(network, factory)
}

// Remove serializes against other writers and delegates to Trie.Remove.
func (s *Sync[V]) Remove(network netaddr.Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Remove(network)
}

// TryRemove serializes against other writers and delegates to
// Trie.TryRemove.
func (s *Sync[V]) TryRemove(network netaddr.Network) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.TryRemove(network)
}

// Clear serializes against other writers and delegates to Trie.Clear.
func (s *Sync[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Clear()
}

// The read-only operations below take no lock: they delegate directly to
// the underlying lock-free Trie, which is always safe to read concurrently
// with the mutex-guarded writers above.

// GetMatch is a lock-free delegate to Trie.GetMatch.
func (s *Sync[V]) GetMatch(network netaddr.Network) (Entry[V], error) { return s.t.GetMatch(network) }

// TryGetMatch is a lock-free delegate to Trie.TryGetMatch.
func (s *Sync[V]) TryGetMatch(network netaddr.Network) (Entry[V], bool) {
	return s.t.TryGetMatch(network)
}

// GetMatchAddr is a lock-free delegate to Trie.GetMatchAddr.
func (s *Sync[V]) GetMatchAddr(ip net.IP) (Entry[V], error) { return s.t.GetMatchAddr(ip) }

// TryGetMatchAddr is a lock-free delegate to Trie.TryGetMatchAddr.
func (s *Sync[V]) TryGetMatchAddr(ip net.IP) (Entry[V], bool) { return s.t.TryGetMatchAddr(ip) }

// GetMatches is a lock-free delegate to Trie.GetMatches.
func (s *Sync[V]) GetMatches(network netaddr.Network) ([]Entry[V], error) {
	return s.t.GetMatches(network)
}

// TryGetMatches is a lock-free delegate to Trie.TryGetMatches.
func (s *Sync[V]) TryGetMatches(network netaddr.Network) ([]Entry[V], bool) {
	return s.t.TryGetMatches(network)
}

// Count is a lock-free delegate to Trie.Count.
func (s *Sync[V]) Count() int64 { return s.t.Count() }

// Render is a lock-free delegate to Trie.Render.
func (s *Sync[V]) Render(family netaddr.Family, formatter func(V) string) string {
	return s.t.Render(family, formatter)
}
