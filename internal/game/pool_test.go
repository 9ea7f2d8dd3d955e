package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		p, err := NewPool([]string{"pear", "plum", "lime"})
		require.NoError(t, err)
		require.Equal(t, 3, p.Len())
		require.Equal(t, 4, p.WordLength())
		require.Equal(t, []string{"pear", "plum", "lime"}, p.Words())
		require.Equal(t, "plum", p.At(1))
	})

	t.Run("words are copied", func(t *testing.T) {
		in := []string{"pear", "plum"}
		p, err := NewPool(in)
		require.NoError(t, err)
		in[0] = "kiwi"
		out := p.Words()
		out[1] = "fig!"
		require.Equal(t, []string{"pear", "plum"}, p.Words())
	})

	t.Run("membership is exact", func(t *testing.T) {
		p, err := NewPool([]string{"pear", "plum"})
		require.NoError(t, err)
		require.True(t, p.Contains("pear"))
		require.False(t, p.Contains("Pear"))
		require.False(t, p.Contains("kiwi"))
	})

	invalid := []struct {
		name  string
		words []string
	}{
		{name: "empty", words: nil},
		{name: "empty word", words: []string{""}},
		{name: "mixed lengths", words: []string{"pear", "kiwis"}},
		{name: "exact duplicate", words: []string{"pear", "pear"}},
		{name: "duplicate ignoring case", words: []string{"pear", "PEAR"}},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewPool(tt.words)
			require.ErrorIs(t, err, ErrInvalidPool)
		})
	}
}
