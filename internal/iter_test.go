package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"a", "b"})
	b := slices.All([]string{"c"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)

	// Early exit.
	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Prefix(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Prefix("KEY_", maps.All(map[string]int{"A": 10, "0": 0}))
	assert.Equal(map[string]int{"KEY_A": 10, "KEY_0": 0}, maps.Collect(seq))
}
