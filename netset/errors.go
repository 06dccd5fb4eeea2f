package netset

import "fmt"

// ErrSplitTooFine is returned by Split when the requested prefix is finer
// than the family's address length.
var ErrSplitTooFine = fmt.Errorf("cannot split finer than the address length")

// ErrNotContained is returned by RemoveNetwork when the network to remove
// is not contained by the container, guarding against the unbounded
// recursion the source's set-subtraction algorithm risks on that input.
var ErrNotContained = fmt.Errorf("network to remove is not contained by the container")

// ErrSplitTooLarge is returned by Split when the requested prefix would
// produce more pieces than fit in a machine word, so the piece count can't
// be computed (or the result allocated) at all.
var ErrSplitTooLarge = fmt.Errorf("split would produce too many networks to enumerate")
