package seqtext

import (
	"cmp"
	"fmt"
)

// IsAlphabetical reports whether src is ordered by the key function under
// the natural ordering of K. Sequences of zero or one element are ordered.
func IsAlphabetical[T any, K cmp.Ordered](src []T, key func(T) K) (bool, error) {
	return IsAlphabeticalFunc(src, key, cmp.Compare[K])
}

// IsAlphabeticalFunc is [IsAlphabetical] with an explicit comparer. It
// checks each adjacent pair and returns false at the first violation
// without evaluating the rest of the sequence. Equal adjacent keys count
// as ordered.
func IsAlphabeticalFunc[T, K any](src []T, key func(T) K, compare func(K, K) int) (bool, error) {
	if src == nil {
		return false, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	if key == nil {
		return false, fmt.Errorf("%w: nil key selector", ErrInvalidArgument)
	}
	if compare == nil {
		return false, fmt.Errorf("%w: nil comparer", ErrInvalidArgument)
	}
	if len(src) < 2 {
		return true, nil
	}
	prev := key(src[0])
	for _, item := range src[1:] {
		cur := key(item)
		if compare(prev, cur) > 0 {
			return false, nil
		}
		prev = cur
	}
	return true, nil
}
