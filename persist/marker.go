package persist

import "github.com/milk9111/platformer/ecs/component"

// MarkerAllocator hands out identity markers. Markers only ever grow, so a
// marker freed by deletion is never issued again.
type MarkerAllocator struct {
	next uint64
}

func NewMarkerAllocator() *MarkerAllocator {
	return &MarkerAllocator{next: 1}
}

func (a *MarkerAllocator) Allocate() component.Marker {
	if a.next == 0 {
		a.next = 1
	}
	m := component.Marker{ID: a.next}
	a.next++
	return m
}

// Observe moves the counter past a marker that came from a save file.
func (a *MarkerAllocator) Observe(m component.Marker) {
	if m.ID >= a.next {
		a.next = m.ID + 1
	}
}

// Peek returns the marker the next Allocate will return.
func (a *MarkerAllocator) Peek() component.Marker {
	if a.next == 0 {
		return component.Marker{ID: 1}
	}
	return component.Marker{ID: a.next}
}
