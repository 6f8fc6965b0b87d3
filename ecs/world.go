package ecs

import "github.com/milk9111/platformer/ecs/component"

// World owns entities and their component storages. Structural changes
// (creating and destroying entities) are queued and applied together by
// Maintain, so joins stay stable for the whole frame.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
	events   EventQueue

	pendingCreate  []Entity
	pendingDestroy []Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

// CreateEntity reserves an entity. Components may be attached right away,
// but joins will not see it until the next Maintain.
func (w *World) CreateEntity() Entity {
	e := w.entities.reserve()
	w.pendingCreate = append(w.pendingCreate, e)
	return e
}

// DestroyEntity queues an entity for removal at the next Maintain. It stays
// visible to joins until then. Returns false for unknown or stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.exists(e) {
		return false
	}
	w.pendingDestroy = append(w.pendingDestroy, e)
	return true
}

// IsAlive reports whether e is committed and visible to joins.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Exists reports whether e is alive or reserved this frame.
func (w *World) Exists(e Entity) bool {
	return w.entities.exists(e)
}

// Maintain commits queued creations, then applies queued deletions, dropping
// every component of a deleted entity.
func (w *World) Maintain() (created, destroyed int) {
	for _, e := range w.pendingCreate {
		if w.entities.activate(e) {
			created++
		}
	}
	w.pendingCreate = w.pendingCreate[:0]

	for _, e := range w.pendingDestroy {
		if !w.entities.exists(e) {
			continue
		}
		for _, s := range w.stores {
			s.remove(e.id())
		}
		if w.entities.release(e) {
			destroyed++
		}
	}
	w.pendingDestroy = w.pendingDestroy[:0]
	return created, destroyed
}

// Pending reports the number of queued creations and deletions.
func (w *World) Pending() (creates, destroys int) {
	return len(w.pendingCreate), len(w.pendingDestroy)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.entities.gen))
	for i := range w.entities.gen {
		if e, ok := w.entities.aliveByID(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
