package nonsend

import "reflect"

// Resources manages a collection of resources keyed by their concrete type,
// with at most one value per type. It uses a slice for storage, a map for
// quick type to ID mapping, and a free list for ID reuse. Designed for O(1)
// operations and minimal allocations.
//
// Inserting a value whose type is already present replaces the previous value
// in place (last write wins), matching the behavior of deferred resource
// commands applied in queue order.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Insert stores a resource and returns its ID. If a resource of the same type
// already exists, its value is replaced and the existing ID is returned.
// Panics if res is nil.
func (r *Resources) Insert(res any) int {
	if res == nil {
		panic("ecs: cannot insert nil resource")
	}
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if id, ok := r.types[t]; ok {
		r.items[id] = res
		return id
	}
	var id int
	if len(r.freeIDs) > 0 {
		id = r.freeIDs[len(r.freeIDs)-1]
		r.freeIDs = r.freeIDs[:len(r.freeIDs)-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Has checks if a resource with the given ID exists.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get retrieves the resource by ID, or nil if it doesn't exist.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove removes the resource by ID and returns it, marking the ID as free
// for reuse. Returns nil if no resource exists with the given ID.
func (r *Resources) Remove(id int) any {
	if !r.Has(id) {
		return nil
	}
	res := r.items[id]
	t := reflect.TypeOf(res)
	delete(r.types, t)
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
	return res
}

// Len reports how many resources are currently stored.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes all resources, resetting the free list.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// InsertResource stores res in the world's plain resource table, replacing any
// prior value of the same type, and returns its ID.
func InsertResource[T any](w *World, res *T) int {
	return w.resources.Insert(res)
}

// HasResource checks if a resource of type T exists, returning true and its ID,
// or false and -1.
func HasResource[T any](w *World) (bool, int) {
	t := reflect.TypeOf((*T)(nil))
	if id, ok := w.resources.types[t]; ok {
		return true, id
	}
	return false, -1
}

// GetResource retrieves the resource of type T if it exists, returning it as
// *T and its ID, or nil and -1.
func GetResource[T any](w *World) (*T, int) {
	t := reflect.TypeOf((*T)(nil))
	if id, ok := w.resources.types[t]; ok {
		res := w.resources.items[id].(*T)
		return res, id
	}
	return nil, -1
}

// RemoveResource removes the resource of type T from the world's plain
// resource table and returns it, or nil if no value of that type is present.
func RemoveResource[T any](w *World) *T {
	t := reflect.TypeOf((*T)(nil))
	id, ok := w.resources.types[t]
	if !ok {
		return nil
	}
	return w.resources.Remove(id).(*T)
}
