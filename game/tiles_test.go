package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag_Distribution(t *testing.T) {
	t.Parallel()
	bag := NewBag()
	assert.Equal(t, 100, bag.Remaining())

	counts := map[string]int{}
	for {
		letter, ok := bag.Draw()
		if !ok {
			break
		}
		counts[letter]++
	}

	assert.Equal(t, tileCounts, counts)
	assert.Equal(t, 0, bag.Remaining())
}

func TestBag_DrawSignalsEmpty(t *testing.T) {
	t.Parallel()
	bag := NewBag()
	for i := 0; i < 100; i++ {
		_, ok := bag.Draw()
		assert.True(t, ok)
	}

	letter, ok := bag.Draw()
	assert.False(t, ok)
	assert.Empty(t, letter)
}

func TestTileScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, TileScore("E"))
	assert.Equal(t, 2, TileScore("D"))
	assert.Equal(t, 3, TileScore("B"))
	assert.Equal(t, 4, TileScore("H"))
	assert.Equal(t, 5, TileScore("K"))
	assert.Equal(t, 8, TileScore("J"))
	assert.Equal(t, 10, TileScore("Q"))
	assert.Equal(t, 0, TileScore("?"))
}
