package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := NewStack()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(MainRoute{}, nil)
	s.Push(DetailRoute{Name: "John"}, 3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.IndexOf(KindDetail))
	assert.Equal(t, 0, s.IndexOf(KindMain))
	assert.Equal(t, -1, s.IndexOf(KindNone))

	top := s.Pop()
	assert.Equal(t, DetailRoute{Name: "John"}, top.Route)
	assert.Equal(t, 3, top.State)
	assert.Equal(t, 1, s.Len())
}

func TestStack_Snapshots(t *testing.T) {
	s := NewStack()

	s.Save("details/John", 1)
	s.Save("details/John", 2)

	v, ok := s.Saved("details/John")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = s.Take("details/John")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = s.Take("details/John")
	assert.False(t, ok)
}
