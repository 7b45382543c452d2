package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// countOnes scores a binary gene sequence by the number of ones it carries.
func countOnes(genes []int) float64 {
	total := 0.0
	for _, g := range genes {
		total += float64(g)
	}
	return total
}

// idealAllOnes behaves like countOnes except that the all-ones sequence is
// reported as an ideal solution.
func idealAllOnes(genes []int) float64 {
	for _, g := range genes {
		if g != 1 {
			return countOnes(genes)
		}
	}
	return math.Inf(1)
}

// singlePointCrossover recombines two parents around position 1.
func singlePointCrossover(father, mother []int) ([]int, []int) {
	if len(father) < 2 {
		return father, mother
	}
	childA := append(append([]int{}, father[:1]...), mother[1:]...)
	childB := append(append([]int{}, mother[:1]...), father[1:]...)
	return childA, childB
}

func mustEngine(t *testing.T, genes [][]int, strength func([]int) float64, cfg *Config) *Engine[int] {
	t.Helper()
	eng, err := New(genes, []int{0, 1}, strength, singlePointCrossover, cfg)
	require.NoError(t, err)
	return eng
}
