package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectParentPrefersStrongest(t *testing.T) {
	// Candidate [1] holds the entire probability mass.
	eng := mustEngine(t, [][]int{{0}, {1}}, countOnes, nil)
	require.NoError(t, eng.evaluate())

	for i := 0; i < 100; i++ {
		parent := eng.selectParent(nil)
		assert.Equal(t, []int{1}, parent.Genes())
	}
}

func TestSelectParentExcludesFather(t *testing.T) {
	eng := mustEngine(t, [][]int{{0}, {1}}, countOnes, nil)
	require.NoError(t, eng.evaluate())

	father := eng.selectParent(nil)
	require.Equal(t, []int{1}, father.Genes())

	for i := 0; i < 100; i++ {
		mother := eng.selectParent(father)
		assert.Equal(t, []int{0}, mother.Genes())
	}
}

func TestSelectParentExclusionComparesGeneContent(t *testing.T) {
	// Two distinct candidates share the gene sequence [1]; excluding one
	// skips both, leaving only [0] reachable through the fallback.
	eng, err := New([][]int{{1}, {1}, {0}}, []int{0, 1}, countOnes, singlePointCrossover, nil)
	require.NoError(t, err)
	require.NoError(t, eng.evaluate())

	father := eng.selectParent(nil)
	require.Equal(t, []int{1}, father.Genes())

	for i := 0; i < 100; i++ {
		mother := eng.selectParent(father)
		assert.Equal(t, []int{0}, mother.Genes())
	}
}

func TestSelectParentFallsBackToLast(t *testing.T) {
	// No candidate carries probability mass, so the cumulative scan never
	// reaches the draw and the last sorted candidate wins.
	zero := func(genes []int) float64 { return 0 }
	eng := mustEngine(t, [][]int{{1, 0}, {0, 1}, {1, 1}}, zero, nil)
	require.NoError(t, eng.evaluate())

	parent := eng.selectParent(nil)
	assert.Equal(t, []int{1, 1}, parent.Genes())
}

func TestBreedCouplesProducesTwoChildrenPerCouple(t *testing.T) {
	eng := mustEngine(t, [][]int{{1, 0, 1}, {0, 1, 1}, {1, 1, 0}, {0, 0, 1}}, countOnes, nil)
	require.NoError(t, eng.evaluate())

	children := eng.breedCouples(3)
	require.Len(t, children, 6)
	for _, child := range children {
		assert.Equal(t, 3, child.Len())
	}
}

func TestBreedCouplesIsDeterministic(t *testing.T) {
	genes := [][]int{{1, 0, 1}, {0, 1, 1}, {1, 1, 0}, {0, 0, 1}}

	a := mustEngine(t, genes, countOnes, nil)
	require.NoError(t, a.evaluate())
	b := mustEngine(t, genes, countOnes, nil)
	require.NoError(t, b.evaluate())

	childrenA := a.breedCouples(4)
	childrenB := b.breedCouples(4)
	require.Equal(t, len(childrenA), len(childrenB))
	for i := range childrenA {
		assert.Equal(t, childrenA[i].Genes(), childrenB[i].Genes())
	}
}
