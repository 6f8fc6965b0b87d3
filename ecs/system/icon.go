package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// IconSystem dispatches toolbar clicks. It runs in both modes.
type IconSystem struct {
	input input.Provider
	edit  *component.EditState
}

func NewIconSystem(in input.Provider, edit *component.EditState) *IconSystem {
	return &IconSystem{input: in, edit: edit}
}

func (s *IconSystem) Update(w *ecs.World) {
	if w == nil || s.input == nil || !s.input.MouseReleased() {
		return
	}
	mouse := s.input.MousePosition()

	ecs.ForEach(w, component.IconComponent.Kind(), func(_ ecs.Entity, icon *component.Icon) {
		if !icon.Bounds().Contains(mouse) {
			return
		}
		switch icon.Kind {
		case component.IconClear:
			cleared := 0
			for _, e := range ecs.Query(w, component.MarkerComponent.Kind()) {
				if ecs.DestroyEntity(w, e) {
					cleared++
				}
			}
			w.Events().Push(ecs.Event{Kind: ecs.EventLevelCleared, Data: cleared})
		case component.IconSave:
			if s.edit != nil {
				s.edit.ShouldSave = true
			}
			w.Events().Push(ecs.Event{Kind: ecs.EventSaveRequested})
		}
	})
}
