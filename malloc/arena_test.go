package malloc

import "errors"
import "testing"
import "unsafe"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/lib"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

type testitem struct {
	a, b int64
}

func testsettings(pcapacity int64) lib.Settings {
	return lib.Settings{"pool.capacity": pcapacity}
}

func TestNewArena(t *testing.T) {
	arena := NewArena[testitem](testsettings(4))
	size := int64(unsafe.Sizeof(testitem{}))
	assert.Equal(t, size, arena.Slabsize())
	assert.Equal(t, []int64{size}, arena.Chunksizes())
	assert.Equal(t, int64(0), arena.Allocated())
	assert.Equal(t, Maxarenasize, arena.Available())

	_, useful := arena.Memory()
	assert.Equal(t, int64(0), useful)
}

func TestArenaAllocFree(t *testing.T) {
	arena := NewArena[testitem](testsettings(4))
	size := arena.Slabsize()

	ptrs := make(map[*testitem]bool)
	for i := 0; i < 10; i++ {
		ptr := arena.Alloc()
		require.NotNil(t, ptr)
		require.False(t, ptrs[ptr], "duplicate pointer %p", ptr)
		ptr.a, ptr.b = int64(i), int64(i*2)
		ptrs[ptr] = true
	}
	assert.Equal(t, 3, len(arena.pools))
	assert.Equal(t, 10*size, arena.Allocated())
	for i := 1; i < len(arena.pools); i++ {
		assert.True(t, arena.pools[i-1].base < arena.pools[i].base)
	}

	for ptr := range ptrs {
		arena.Free(ptr)
	}
	assert.Equal(t, int64(0), arena.Allocated())
	assert.Equal(t, 1, len(arena.pools))
}

func TestArenaReuse(t *testing.T) {
	arena := NewArena[testitem](testsettings(8))
	ptr := arena.Alloc()
	ptr.a, ptr.b = 10, 20
	arena.Free(ptr)

	again := arena.Alloc()
	assert.Equal(t, ptr, again)
	assert.Equal(t, testitem{}, *again, "freed slot must be zeroed")
}

func TestArenaOutofMemory(t *testing.T) {
	size := int64(unsafe.Sizeof(testitem{}))
	setts := lib.Settings{"pool.capacity": int64(4), "capacity": size * 8}
	arena := NewArena[testitem](setts)
	for i := 0; i < 8; i++ {
		arena.Alloc()
	}
	assert.Equal(t, int64(0), arena.Available())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrorOutofMemory))
	}()
	arena.Alloc()
}

func TestArenaMaxpools(t *testing.T) {
	setts := lib.Settings{"pool.capacity": int64(2), "maxpools": int64(1)}
	arena := NewArena[testitem](setts)
	arena.Alloc()
	arena.Alloc()
	assert.Panics(t, func() { arena.Alloc() })
}

func TestArenaForeignFree(t *testing.T) {
	arena := NewArena[testitem](testsettings(4))
	arena.Alloc()
	assert.Panics(t, func() { arena.Free(&testitem{}) })
	assert.Panics(t, func() { arena.Free(nil) })
}

func TestArenaInvalidSettings(t *testing.T) {
	assert.Panics(t, func() { NewArena[testitem](testsettings(0)) })
	assert.Panics(t, func() { NewArena[testitem](testsettings(Maxchunks + 1)) })
	assert.Panics(t, func() {
		NewArena[testitem](lib.Settings{"maxpools": Maxpools + 1})
	})
	assert.Panics(t, func() { NewArena[struct{}](nil) })
}

func TestArenaUtilization(t *testing.T) {
	arena := NewArena[testitem](testsettings(4))
	ptrs := []*testitem{arena.Alloc(), arena.Alloc()}
	sizes, ufactors := arena.Utilization()
	assert.Equal(t, []int{int(arena.Slabsize())}, sizes)
	assert.InDelta(t, 50.0, ufactors[0], 0.001)

	ptrs = append(ptrs, arena.Alloc(), arena.Alloc())
	_, ufactors = arena.Utilization()
	assert.InDelta(t, 100.0, ufactors[0], 0.001)

	overhead, useful := arena.Memory()
	assert.True(t, overhead > 0)
	assert.Equal(t, 4*arena.Slabsize(), useful)
	for _, ptr := range ptrs {
		arena.Free(ptr)
	}
	arena.Release()
	assert.Equal(t, int64(0), arena.Allocated())
}

func TestNewMallocer(t *testing.T) {
	m := NewMallocer[testitem](lib.Settings{"allocator": "heap"})
	_, ok := m.(*Heap[testitem])
	assert.True(t, ok)

	m = NewMallocer[testitem](nil)
	_, ok = m.(*Arena[testitem])
	assert.True(t, ok)

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, api.ErrorInvalidSettings))
	}()
	NewMallocer[testitem](lib.Settings{"allocator": "buddy"})
}

func BenchmarkArenaAlloc(b *testing.B) {
	arena := NewArena[testitem](testsettings(1024))
	ptrs := make([]*testitem, 0, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ptrs = append(ptrs, arena.Alloc())
		if len(ptrs) == cap(ptrs) {
			for _, ptr := range ptrs {
				arena.Free(ptr)
			}
			ptrs = ptrs[:0]
		}
	}
}
