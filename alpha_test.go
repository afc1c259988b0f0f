package seqtext_test

import (
	"strings"
	"testing"

	"github.com/bjaus/seqtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func TestIsAlphabetical(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  []string
		want bool
	}{
		"empty":          {src: []string{}, want: true},
		"single":         {src: []string{"Alice"}, want: true},
		"ordered":        {src: []string{"Alice", "Bob", "Charlie"}, want: true},
		"unordered":      {src: []string{"Charlie", "Alice", "Bob"}, want: false},
		"equal adjacent": {src: []string{"Bob", "Bob", "Bob"}, want: true},
		"tail violation": {src: []string{"Alice", "Bob", "Bob", "Aaron"}, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := seqtext.IsAlphabetical(tt.src, identity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAlphabeticalKeySelector(t *testing.T) {
	t.Parallel()
	people := []person{
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 25},
	}
	got, err := seqtext.IsAlphabetical(people, func(p person) string { return p.Name })
	require.NoError(t, err)
	assert.True(t, got)

	got, err = seqtext.IsAlphabetical(people, func(p person) int { return p.Age })
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsAlphabeticalFuncCustomComparer(t *testing.T) {
	t.Parallel()
	// "apple" < "Banana" only under a case-insensitive comparer.
	src := []string{"apple", "Banana"}

	got, err := seqtext.IsAlphabetical(src, identity)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = seqtext.IsAlphabeticalFunc(src, identity, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsAlphabeticalShortCircuits(t *testing.T) {
	t.Parallel()
	calls := 0
	src := []string{"b", "a", "c", "d"}
	got, err := seqtext.IsAlphabetical(src, func(s string) string {
		calls++
		return s
	})
	require.NoError(t, err)
	assert.False(t, got)
	// The first pair already violates the order; keys for the remaining
	// elements are never evaluated.
	assert.Equal(t, 2, calls)
}

func TestIsAlphabeticalInvalidArgument(t *testing.T) {
	t.Parallel()
	_, err := seqtext.IsAlphabetical[string, string](nil, identity)
	assert.ErrorIs(t, err, seqtext.ErrInvalidArgument)

	_, err = seqtext.IsAlphabetical[string, string]([]string{"a"}, nil)
	assert.ErrorIs(t, err, seqtext.ErrInvalidArgument)

	_, err = seqtext.IsAlphabeticalFunc([]string{"a"}, identity, nil)
	assert.ErrorIs(t, err, seqtext.ErrInvalidArgument)
}
