package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvekit/evolve-go/pkg/errors"
)

func TestEncode(t *testing.T) {
	alphabet, err := NewAlphabet([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	// 'a'=00 'c'=10 'b'=01 at two bits per gene
	encoded, err := Encode([]rune{'a', 'c', 'b'}, alphabet)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false, false, true}, encoded)
}

func TestEncodeUnknownGene(t *testing.T) {
	alphabet, err := NewAlphabet([]rune{'a', 'b'})
	require.NoError(t, err)

	_, err = Encode([]rune{'a', 'z'}, alphabet)
	require.Error(t, err)
	assert.Equal(t, errors.UnknownGene, errors.CodeOf(err))
}

func TestDecodeModuloReduction(t *testing.T) {
	alphabet, err := NewAlphabet([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	// 11 = 3, reduced modulo 3 back to index 0
	decoded, err := Decode([]bool{true, true}, alphabet)
	require.NoError(t, err)
	assert.Equal(t, []rune{'a'}, decoded)
}

func TestDecodeRejectsRaggedBitString(t *testing.T) {
	alphabet, err := NewAlphabet([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	_, err = Decode([]bool{true, false, true}, alphabet)
	require.Error(t, err)
	assert.Equal(t, errors.InvalidInput, errors.CodeOf(err))
}

// Round-trip law: decode(encode(g)) == g when no mutation happens in between.
func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		alphabet []string
		genes    []string
	}{
		{
			name:     "binary alphabet",
			alphabet: []string{"0", "1"},
			genes:    []string{"1", "0", "1", "1", "0"},
		},
		{
			name:     "non power of two alphabet",
			alphabet: []string{"x", "y", "z"},
			genes:    []string{"z", "z", "x", "y"},
		},
		{
			name:     "wide alphabet",
			alphabet: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			genes:    []string{"i", "a", "e", "h"},
		},
		{
			name:     "empty gene sequence",
			alphabet: []string{"a", "b"},
			genes:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet, err := NewAlphabet(tt.alphabet)
			require.NoError(t, err)

			encoded, err := Encode(tt.genes, alphabet)
			require.NoError(t, err)
			assert.Len(t, encoded, len(tt.genes)*alphabet.BitsPerGene())

			decoded, err := Decode(encoded, alphabet)
			require.NoError(t, err)
			assert.Equal(t, tt.genes, decoded)
		})
	}
}

func TestCodecSingleValueAlphabet(t *testing.T) {
	alphabet, err := NewAlphabet([]int{42})
	require.NoError(t, err)
	require.Equal(t, 0, alphabet.BitsPerGene())

	encoded, err := Encode([]int{42, 42, 42}, alphabet)
	require.NoError(t, err)
	assert.Empty(t, encoded)
}
