package core

import (
	"github.com/evolvekit/evolve-go/pkg/errors"
)

// The codec maps a gene sequence to a flat bit string and back. Each gene
// becomes its alphabet index, zero-padded big-endian to the alphabet's bit
// width; decoding reduces each parsed chunk modulo the alphabet length so a
// bit pattern pushed out of range by mutation still lands on a legal value.
//
// With no mutation applied in between, Decode(Encode(g)) == g.

// Encode converts genes to their concatenated fixed-width binary form.
func Encode[T comparable](genes []T, alphabet *Alphabet[T]) ([]bool, error) {
	width := alphabet.BitsPerGene()
	encoded := make([]bool, 0, len(genes)*width)
	for _, gene := range genes {
		index, ok := alphabet.IndexOf(gene)
		if !ok {
			return nil, errors.WithFields(
				errors.New(errors.UnknownGene, "gene value not present in alphabet"),
				errors.Fields{"gene": gene},
			)
		}
		for bit := width - 1; bit >= 0; bit-- {
			encoded = append(encoded, index>>uint(bit)&1 == 1)
		}
	}
	return encoded, nil
}

// Decode converts a bit string produced by Encode (possibly with flipped
// bits) back to a gene sequence.
func Decode[T comparable](encoded []bool, alphabet *Alphabet[T]) ([]T, error) {
	width := alphabet.BitsPerGene()
	if width == 0 {
		if len(encoded) != 0 {
			return nil, errors.New(errors.InvalidInput, "bit string must be empty for a single-value alphabet")
		}
		return []T{}, nil
	}
	if len(encoded)%width != 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "bit string length is not a multiple of the gene width"),
			errors.Fields{"length": len(encoded), "width": width},
		)
	}

	genes := make([]T, 0, len(encoded)/width)
	for start := 0; start < len(encoded); start += width {
		index := 0
		for _, bit := range encoded[start : start+width] {
			index <<= 1
			if bit {
				index |= 1
			}
		}
		genes = append(genes, alphabet.Value(index%alphabet.Len()))
	}
	return genes, nil
}
