package trie

import "fmt"

// ErrDuplicate is returned by Add when an identical (family, address,
// prefix) network is already present.
var ErrDuplicate = fmt.Errorf("network already present in trie")

// ErrNotFound is returned by Remove and GetMatch when no matching network
// exists in the trie.
var ErrNotFound = fmt.Errorf("no matching network found in trie")
