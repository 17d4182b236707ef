package nonsend

import (
	"fmt"
	"reflect"
	"runtime"
)

// WorldIniter is implemented by resource types that need access to the world
// during construction. InitNonSend calls InitFromWorld on the freshly
// allocated value before storing it.
type WorldIniter interface {
	InitFromWorld(w *World)
}

// InsertNonSend stores res in the world's non-send resource table, replacing
// any prior value of the same type. Panics if called from a goroutine other
// than the one that created the world, or if res is nil.
func InsertNonSend[T any](w *World, res *T) {
	w.assertOwner()
	w.nonSend.Insert(res)
}

// NonSend retrieves the non-send resource of type T, or nil if no value of
// that type is present. Panics if called from a goroutine other than the one
// that created the world.
func NonSend[T any](w *World) *T {
	w.assertOwner()
	t := reflect.TypeOf((*T)(nil))
	if id, ok := w.nonSend.types[t]; ok {
		return w.nonSend.items[id].(*T)
	}
	return nil
}

// HasNonSend checks if a non-send resource of type T is present. Panics if
// called from a goroutine other than the one that created the world.
func HasNonSend[T any](w *World) bool {
	w.assertOwner()
	t := reflect.TypeOf((*T)(nil))
	_, ok := w.nonSend.types[t]
	return ok
}

// RemoveNonSend removes the non-send resource of type T and returns it, or
// nil if no value of that type is present. Panics if called from a goroutine
// other than the one that created the world.
func RemoveNonSend[T any](w *World) *T {
	w.assertOwner()
	t := reflect.TypeOf((*T)(nil))
	id, ok := w.nonSend.types[t]
	if !ok {
		return nil
	}
	return w.nonSend.Remove(id).(*T)
}

// InitNonSend ensures a non-send resource of type T is present and returns it.
// If no value of that type exists, a zero value is allocated, its
// InitFromWorld method is called if T implements WorldIniter, and the result
// is stored. An existing value is returned untouched. Panics if called from a
// goroutine other than the one that created the world.
func InitNonSend[T any](w *World) *T {
	w.assertOwner()
	t := reflect.TypeOf((*T)(nil))
	if id, ok := w.nonSend.types[t]; ok {
		return w.nonSend.items[id].(*T)
	}
	res := new(T)
	if init, ok := any(res).(WorldIniter); ok {
		init.InitFromWorld(w)
	}
	w.nonSend.Insert(res)
	return res
}

// assertOwner panics unless the calling goroutine is the one that created the
// world. Non-send values carry no internal synchronization, so access from any
// other goroutine is a contract violation, not a race to be tolerated.
func (w *World) assertOwner() {
	if id := goroutineID(); id != w.owner {
		panic(fmt.Sprintf(
			"ecs: non-send resource access from goroutine %d, world is owned by goroutine %d",
			id, w.owner,
		))
	}
}

// goroutineID parses the current goroutine's ID out of the runtime stack
// header ("goroutine 18 [running]:"). The runtime offers no stable API for
// this, but the header format has been unchanged since Go 1.4. Called once at
// world creation and once per non-send table access.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// skip "goroutine "
	var id uint64
	for _, c := range buf[10:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
