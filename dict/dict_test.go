package dict

import "errors"
import "testing"

import "github.com/bnclabs/llrbmap/api"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

var _ api.Index[string, int] = &Dict[string, int]{}

func TestDict(t *testing.T) {
	d := NewDict[string, int]("dict")
	require.Equal(t, int64(0), d.Count())
	assert.Equal(t, "dict", d.ID())

	for i, key := range []string{"S", "E", "X", "A", "R", "C", "H", "M"} {
		_, updated := d.Set(key, i)
		assert.False(t, updated)
	}
	require.Equal(t, int64(8), d.Count())
	require.NoError(t, d.Validate())

	value, ok := d.Get("R")
	assert.True(t, ok)
	assert.Equal(t, 4, value)
	assert.True(t, d.Has("H"))
	assert.False(t, d.Has("Z"))

	key, _, ok := d.Min()
	assert.True(t, ok)
	assert.Equal(t, "A", key)
	key, _, _ = d.Max()
	assert.Equal(t, "X", key)
	key, _, _ = d.Floor("J")
	assert.Equal(t, "H", key)
	key, _, _ = d.Ceiling("J")
	assert.Equal(t, "M", key)
	key, _, _ = d.Select(5)
	assert.Equal(t, "R", key)
	assert.Equal(t, int64(5), d.Rank("R"))

	old, updated := d.Set("R", 100)
	assert.True(t, updated)
	assert.Equal(t, 4, old)
	assert.Equal(t, int64(8), d.Count())

	key, _, ok = d.DeleteMin()
	assert.True(t, ok)
	assert.Equal(t, "A", key)
	key, _, _ = d.DeleteMax()
	assert.Equal(t, "X", key)
	value, ok = d.Delete("R")
	assert.True(t, ok)
	assert.Equal(t, 100, value)
	_, ok = d.Delete("R")
	assert.False(t, ok)
	assert.Equal(t, int64(5), d.Count())
	require.NoError(t, d.Validate())
}

func TestDictEmpty(t *testing.T) {
	d := NewDict[int, int]("empty")
	_, _, ok := d.Min()
	assert.False(t, ok)
	_, _, ok = d.Max()
	assert.False(t, ok)
	_, _, ok = d.Floor(10)
	assert.False(t, ok)
	_, _, ok = d.Ceiling(10)
	assert.False(t, ok)
	_, _, ok = d.Select(0)
	assert.False(t, ok)
	_, _, ok = d.DeleteMin()
	assert.False(t, ok)
	_, _, ok = d.DeleteMax()
	assert.False(t, ok)
	assert.Equal(t, int64(0), d.Rank(10))
}

func TestDictBounds(t *testing.T) {
	d := NewDict[int, int]("bounds")
	for i := 10; i <= 50; i += 10 {
		d.Set(i, i)
	}
	_, _, ok := d.Floor(5)
	assert.False(t, ok)
	key, _, _ := d.Floor(55)
	assert.Equal(t, 50, key)
	_, _, ok = d.Ceiling(55)
	assert.False(t, ok)
	key, _, _ = d.Ceiling(5)
	assert.Equal(t, 10, key)
	key, _, _ = d.Floor(30)
	assert.Equal(t, 30, key)
	assert.Equal(t, int64(5), d.Rank(100))
	assert.Equal(t, int64(2), d.Rank(25))
	_, _, ok = d.Select(5)
	assert.False(t, ok)
	_, _, ok = d.Select(-1)
	assert.False(t, ok)
}

func TestDictFunc(t *testing.T) {
	reverse := func(x, y int) int { return y - x }
	d := NewDictFunc[int, string]("reverse", reverse)
	for i := 0; i < 10; i++ {
		d.Set(i, "")
	}
	key, _, _ := d.Min()
	assert.Equal(t, 9, key)
	require.NoError(t, d.Validate())
}

func TestDictDestroy(t *testing.T) {
	d := NewDict[int, int]("destroy")
	d.Set(1, 1)
	require.NoError(t, d.Destroy())
	assert.Equal(t, api.ErrorDeadIndex, d.Destroy())

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, api.ErrorDeadIndex))
	}()
	d.Get(1)
}
