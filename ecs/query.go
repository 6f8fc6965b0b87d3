package ecs

import "github.com/milk9111/platformer/ecs/component"

// smallest picks the shortest storage to drive a join.
func smallest(stores ...storage) storage {
	var best storage
	for _, s := range stores {
		if s == nil {
			return nil
		}
		if best == nil || s.len() < best.len() {
			best = s
		}
	}
	return best
}

// join returns the live entities present in every storage. The id list is
// captured up front, so callbacks may add or remove components freely.
func join(w *World, stores ...storage) []Entity {
	driver := smallest(stores...)
	if driver == nil {
		return nil
	}
	ids := driver.ids()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		e, ok := w.entities.aliveByID(id)
		if !ok {
			continue
		}
		all := true
		for _, s := range stores {
			if s != driver && !s.has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// erase keeps a nil *sparseSet from turning into a non-nil interface.
func erase[T any](s *sparseSet[T]) storage {
	if s == nil {
		return nil
	}
	return s
}

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := store(w, ka, false)
	for _, e := range join(w, erase(sa)) {
		if a := sa.get(e.id()); a != nil {
			fn(e, a)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := store(w, ka, false), store(w, kb, false)
	for _, e := range join(w, erase(sa), erase(sb)) {
		a, b := sa.get(e.id()), sb.get(e.id())
		if a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := store(w, ka, false), store(w, kb, false), store(w, kc, false)
	for _, e := range join(w, erase(sa), erase(sb), erase(sc)) {
		a, b, c := sa.get(e.id()), sb.get(e.id()), sc.get(e.id())
		if a == nil || b == nil || c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

// Query returns the live entities carrying kind.
func Query[A any](w *World, ka component.ComponentKind[A]) []Entity {
	return join(w, erase(store(w, ka, false)))
}

// First returns the first live entity carrying kind.
func First[A any](w *World, ka component.ComponentKind[A]) (Entity, bool) {
	ents := Query(w, ka)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func Count[A any](w *World, ka component.ComponentKind[A]) int {
	return len(Query(w, ka))
}

func Query2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B]) []Entity {
	return join(w, erase(store(w, ka, false)), erase(store(w, kb, false)))
}

// Without filters ents in place, dropping those that carry kind.
func Without[T any](w *World, ents []Entity, kind component.ComponentKind[T]) []Entity {
	s := store(w, kind, false)
	if s == nil {
		return ents
	}
	out := ents[:0]
	for _, e := range ents {
		if !s.has(e.id()) {
			out = append(out, e)
		}
	}
	return out
}
