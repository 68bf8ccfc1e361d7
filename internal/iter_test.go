package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := map[string]int{"a": 1}
	second := map[string]int{"b": 2, "a": 3}

	seq := IterSeq2Concat(maps.All(first), maps.All(second))

	count := 0
	for range seq {
		count++
	}
	assert.Equal(3, count)

	// The later sequence wins when collected.
	assert.Equal(map[string]int{"a": 3, "b": 2}, maps.Collect(seq))

	// Early exit stops the whole chain.
	count = 0
	for range seq {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
