// Package nonsend provides a deferred command queue over a small ECS world,
// built around thread-affine ("non-send") resources: values that may only be
// touched from the goroutine that owns the world, such as window handles,
// GPU-side images, or C library state.
//
// Commands are closures queued from anywhere and applied in order at a sync
// point on the owning goroutine:
//
//	w := nonsend.NewWorld(1024)
//	cmds := nonsend.NewCommands()
//	cmds.Add(nonsend.InsertNonSendResource(func() *Cursor {
//		return &Cursor{Sprite: loadSprite()}
//	}))
//	cmds.Apply(w) // factory runs here, on the world's goroutine
package nonsend

import "reflect"

// Entity represents a unique identifier for an object in the World. It combines
// a 32-bit ID with a 32-bit version to ensure that recycled IDs are not confused
// with new entities.
type Entity struct {
	// ID is the unique, recyclable identifier for the entity.
	ID uint32
	// Version is a generation counter to protect against stale entity references.
	// It is incremented each time an entity ID is reused.
	Version uint32
}

// entityMeta holds the internal state of an entity.
type entityMeta struct {
	version uint32 // current version, 0 if the entity is dead
}

// World is the central store of entities, components, resources, and events.
// It is owned by the goroutine that created it: plain resources and entities
// may be shared under the caller's own synchronization, but the non-send table
// enforces single-goroutine access at runtime.
type World struct {
	resources  *Resources
	nonSend    *Resources
	events     *EventBus
	components componentStore
	freeIDs    []uint32     // stack of recycled entity IDs
	metas      []entityMeta // indexed by entity ID
	capacity   int
	nextVer    uint32 // version for the next created entity
	owner      uint64 // goroutine that owns the non-send table
}

// NewWorld creates and initializes a new World with a specified initial
// capacity for entities. It pre-allocates memory for the entity metadata and
// free ID list, and records the calling goroutine as the owner of the world's
// non-send resource table.
//
// Parameters:
//   - initialCapacity: The number of entities to pre-allocate memory for.
//     Choosing a suitable capacity can prevent re-allocations during runtime.
//
// Returns:
//   - A pointer to the newly created World.
func NewWorld(initialCapacity int) *World {
	w := &World{
		resources: &Resources{},
		nonSend:   &Resources{},
		events:    &EventBus{},
		components: componentStore{
			tables: make(map[reflect.Type]map[uint32]any, 16),
		},
		freeIDs:  make([]uint32, initialCapacity),
		metas:    make([]entityMeta, initialCapacity),
		capacity: initialCapacity,
		nextVer:  1,
		owner:    goroutineID(),
	}
	for i := range w.freeIDs {
		// fill freeIDs with [cap-1 .. 0]
		w.freeIDs[i] = uint32(initialCapacity - 1 - i)
	}
	return w
}

// Resources returns the world's plain resource table. It holds global values
// with no thread-affinity requirement, such as configuration or asset indexes.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	if len(w.freeIDs) == 0 {
		w.expand(1)
	}
	// pop an ID
	last := len(w.freeIDs) - 1
	id := w.freeIDs[last]
	w.freeIDs = w.freeIDs[:last]
	meta := &w.metas[id]
	meta.version = w.nextVer
	w.nextVer++
	return Entity{ID: id, Version: meta.version}
}

// CreateEntities creates a batch of entities with no components and returns them.
func (w *World) CreateEntities(count int) []Entity {
	if count == 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = w.CreateEntity()
	}
	return ents
}

// RemoveEntity removes an entity and all of its components, recycling its ID.
// Removing an invalid or stale entity is a no-op.
func (w *World) RemoveEntity(e Entity) {
	if !w.IsValid(e) {
		return
	}
	w.components.removeEntity(e.ID)
	w.metas[e.ID].version = 0
	w.freeIDs = append(w.freeIDs, e.ID)
}

// IsValid checks if the entity is currently alive in the world. An entity is
// valid if its ID is within bounds and its version matches the world's current
// version for that ID. This prevents "stale" entity references from accessing
// incorrect data after an entity has been deleted and its ID recycled.
//
// Parameters:
//   - e: The Entity to validate.
//
// Returns:
//   - true if the entity is valid, false otherwise.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := w.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// EntityCount reports how many entities are currently alive.
func (w *World) EntityCount() int {
	return w.capacity - len(w.freeIDs)
}

// ClearEntities removes all entities from the world, recycling their IDs.
// This is an efficient way to reset the world state without deallocating
// memory. Resources, non-send resources, and event subscriptions survive.
func (w *World) ClearEntities() {
	for i := range w.metas {
		w.metas[i].version = 0
	}
	w.freeIDs = w.freeIDs[:0]
	for i := uint32(0); i < uint32(w.capacity); i++ {
		w.freeIDs = append(w.freeIDs, i)
	}
	w.components.clear()
}

// expand automatically increases capacity when full.
func (w *World) expand(additional int) {
	oldCap := w.capacity
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = 1
	}
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	w.metas = append(w.metas, make([]entityMeta, delta)...)
	for i := range delta {
		w.freeIDs = append(w.freeIDs, uint32(newCap-1-i))
	}
	w.capacity = newCap
}
