package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRngDrawRange(t *testing.T) {
	rng := NewRng(1)
	for i := 0; i < 10000; i++ {
		draw := rng.Draw()
		assert.Greater(t, draw, 0.0)
		assert.LessOrEqual(t, draw, 1.0)
	}
}

func TestRngDeterminism(t *testing.T) {
	a := NewRng(42)
	b := NewRng(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestRngSeedsDiverge(t *testing.T) {
	a := NewRng(1)
	b := NewRng(2)

	same := true
	for i := 0; i < 16; i++ {
		if a.Draw() != b.Draw() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different draw sequences")
}
