package malloc

import "fmt"
import "errors"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/lib"

// ErrorOutofMemory arena has exhausted its capacity.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// Maxarenasize maximum size of a memory arena, 1TB. Can be used as
// default for settings parameter "capacity".
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024)

// Maxpools maximum number of pools allowed in an arena.
const Maxpools = int64(1024 * 1024)

// Maxchunks maximum number of objects in a single pool, free-list
// offsets are 16-bit.
const Maxchunks = int64(65536)

// Defaultsettings for a mallocer.
//
// "allocator" (string, default: "flist")
//		Allocator algorithm, "flist" slab arena or "heap".
//
// "capacity" (int64, default: Maxarenasize)
//		Maximum memory, in bytes, that can be allocated.
//
// "pool.capacity" (int64, default: 1024)
//		Number of objects in each pool, cannot exceed Maxchunks.
//
// "maxpools" (int64, default: Maxpools)
//		Maximum number of pools allowed in arena.
func Defaultsettings() lib.Settings {
	return lib.Settings{
		"allocator":     "flist",
		"capacity":      Maxarenasize,
		"pool.capacity": int64(1024),
		"maxpools":      Maxpools,
	}
}

// NewMallocer return a Mallocer based on "allocator" settings.
func NewMallocer[T any](setts lib.Settings) Mallocer[T] {
	setts = Defaultsettings().Mixin(setts)
	switch allocator := setts.String("allocator"); allocator {
	case "flist":
		return NewArena[T](setts)
	case "heap":
		return NewHeap[T]()
	default:
		panicerr("%w: unknown allocator %q", api.ErrorInvalidSettings, allocator)
	}
	return nil
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
