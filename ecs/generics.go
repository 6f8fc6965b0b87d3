package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

func store[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	return s.(*sparseSet[T])
}

// Add attaches or replaces a component on e. Reserved entities accept
// components before they become visible to joins.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind.Name())
	}
	if w == nil || !w.entities.exists(e) {
		return fmt.Errorf("%w: %s on %v", component.ErrEntityNotAlive, kind.Name(), e)
	}
	store(w, kind, true).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.exists(e) {
		return false
	}
	return store(w, kind, false).remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.exists(e) {
		return false
	}
	return store(w, kind, false).has(e.id())
}

// Get returns the stored component pointer; mutations through it are
// visible to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.exists(e) {
		return nil, false
	}
	v := store(w, kind, false).get(e.id())
	return v, v != nil
}
