package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Naveen-Savi08/Maze-Solver/frontier"
)

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[int](2)
	assert.True(t, s.IsEmpty())

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len(), "Peek must not remove")

	var got []int
	for !s.IsEmpty() {
		v, ok := s.Pop()
		assert.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestStack_EmptySignal(t *testing.T) {
	var s frontier.Stack[string]

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push("a")
	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = s.Pop()
	assert.False(t, ok)
}
