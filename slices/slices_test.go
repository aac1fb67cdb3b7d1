package slices

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, Map([]int{}, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.Empty(t, Filter(nil, even))
}
