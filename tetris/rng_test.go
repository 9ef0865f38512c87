package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCGSequence(t *testing.T) {
	r := lcg{seed: 42}
	expected := []int{4, 0, 6, 1, 1, 0, 4, 4}
	for i, want := range expected {
		assert.Equal(t, want, r.next(), "draw %d", i)
	}
}

func TestLCGRangeAndDeterminism(t *testing.T) {
	a := lcg{seed: 7}
	b := lcg{seed: 7}
	for i := 0; i < 1000; i++ {
		got := a.next()
		assert.Equal(t, got, b.next())
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, ShapeCount)
	}
}
