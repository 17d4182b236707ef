package nonsend

import "reflect"

// componentStore holds per-type component tables keyed by entity ID. It
// favors predictable behavior over raw iteration speed: the command layer is
// the subject of this library, not archetype storage.
type componentStore struct {
	tables map[reflect.Type]map[uint32]any
}

func (s *componentStore) table(t reflect.Type) map[uint32]any {
	tbl, ok := s.tables[t]
	if !ok {
		tbl = make(map[uint32]any)
		s.tables[t] = tbl
	}
	return tbl
}

// removeEntity drops all components attached to the entity ID.
func (s *componentStore) removeEntity(id uint32) {
	for _, tbl := range s.tables {
		delete(tbl, id)
	}
}

func (s *componentStore) clear() {
	for t := range s.tables {
		delete(s.tables, t)
	}
}

// SetComponent sets the component of type T on the entity, adding it if not
// present. Reports whether the entity was valid.
func SetComponent[T any](w *World, e Entity, val T) bool {
	if !w.IsValid(e) {
		return false
	}
	t := reflect.TypeFor[T]()
	tbl := w.components.table(t)
	if p, ok := tbl[e.ID]; ok {
		*p.(*T) = val
		return true
	}
	p := new(T)
	*p = val
	tbl[e.ID] = p
	return true
}

// GetComponent returns a pointer to the component of type T for the entity.
// The second return value reports whether the component was found. The
// pointer stays valid until the component or its entity is removed.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	if !w.IsValid(e) {
		return nil, false
	}
	t := reflect.TypeFor[T]()
	tbl, ok := w.components.tables[t]
	if !ok {
		return nil, false
	}
	p, ok := tbl[e.ID]
	if !ok {
		return nil, false
	}
	return p.(*T), true
}

// HasComponent checks if the entity has a component of type T.
func HasComponent[T any](w *World, e Entity) bool {
	_, ok := GetComponent[T](w, e)
	return ok
}

// RemoveComponent removes the component of type T from the entity if present.
// Reports whether the entity was valid.
func RemoveComponent[T any](w *World, e Entity) bool {
	if !w.IsValid(e) {
		return false
	}
	t := reflect.TypeFor[T]()
	if tbl, ok := w.components.tables[t]; ok {
		delete(tbl, e.ID)
	}
	return true
}
