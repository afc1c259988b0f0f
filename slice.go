package seqtext

import (
	"fmt"
	"iter"
	"math"
)

// Open marks an unspecified bound for [Slice]: an Open start resolves to
// the beginning of the source and an Open end to its length.
const Open = math.MinInt

// Slice returns a lazy view over src with Python-style bounds. Negative
// start or end count back from the length; both bounds are then clamped
// into [0, len(src)]. A start at or past the end yields an empty sequence.
// The step must be positive.
//
// The returned sequence is restartable: each range over it re-runs from
// the start. It holds no state beyond the source slice, so mutating src
// between iterations is visible to later runs.
func Slice[T any](src []T, start, end, step int) (iter.Seq[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidArgument, step)
	}
	lo := resolveBound(start, 0, len(src))
	hi := resolveBound(end, len(src), len(src))
	return func(yield func(T) bool) {
		for i := lo; i < hi; i += step {
			if !yield(src[i]) {
				return
			}
		}
	}, nil
}

// resolveBound turns one slice bound into an index in [0, n]. Open takes
// the default; negative values count back from n.
func resolveBound(b, def, n int) int {
	if b == Open {
		return def
	}
	if b < 0 {
		b += n
	}
	if b < 0 {
		return 0
	}
	if b > n {
		return n
	}
	return b
}

// Chunk returns a lazy sequence of size-length chunks of src. The last
// chunk is shorter when the length is not a multiple of size; an empty
// source yields no chunks. The size must be positive.
//
// Chunks alias the source slice (full-slice expressions, so appends don't
// clobber neighbors). Like [Slice], the sequence is restartable.
func Chunk[T any](src []T, size int) (iter.Seq[[]T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, size)
	}
	return func(yield func([]T) bool) {
		for i := 0; i < len(src); i += size {
			end := min(i+size, len(src))
			if !yield(src[i:end:end]) {
				return
			}
		}
	}, nil
}
