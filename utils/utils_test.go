package utils

import (
	"slices"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Append(i))
	}
	assert.True(t, q.Full())
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 3, q.Cap())
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(q.Iter()))

	oldest, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, oldest)

	v, err := q.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	_, err = q.Get(3)
	assert.Error(t, err)

	require.NoError(t, q.Set(0, 30))
	v, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 30, v)
	assert.Equal(t, []int{4, 5}, slices.Collect(q.Iter()))

	q.Clear()
	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[string](0)
	assert.Error(t, q.Append("x"))
}

func TestOrderedMapToString(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("diff", 0.25)
	m.Set("tick", 12)
	assert.Equal(t, "[diff=0.25 tick=12]", OrderedMapToString(m))
	assert.Equal(t, "[]", OrderedMapToString(nil))
	assert.Equal(t, "[foo=1 bar=true]", KeyValsToString("foo", 1, "bar", true, "dangling"))
}
