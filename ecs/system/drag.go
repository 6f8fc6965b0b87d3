package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// DragSystem moves draggable hitboxes with the mouse in edit mode, snapping
// to the nearest grid corner.
type DragSystem struct {
	input  input.Provider
	edit   *component.EditState
	tuning *common.Tuning
}

func NewDragSystem(in input.Provider, edit *component.EditState, tuning *common.Tuning) *DragSystem {
	return &DragSystem{input: in, edit: edit, tuning: tuning}
}

func (d *DragSystem) Update(w *ecs.World) {
	if w == nil || d.input == nil || !editing(d.edit) {
		return
	}
	mouse := d.input.MousePosition()
	pressed := d.input.MousePressed()
	released := d.input.MouseReleased()

	ecs.ForEach2(w, component.DragBoxComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, drag *component.DragBox, hitbox *component.Hitbox) {
		if pressed && hitbox.Contains(mouse) {
			drag.DragOffset = mouse.Sub(hitbox.Position)
			drag.Dragging = true
		}
		if drag.Dragging {
			hitbox.Position = mouse.Sub(drag.DragOffset).SnapRound(d.tuning.GridSize)
			if trigger, ok := ecs.Get(w, e, component.TriggerboxComponent.Kind()); ok {
				trigger.Position = hitbox.Position.Sub(component.Position{Y: d.tuning.TriggerOffset})
			}
		}
		if released {
			drag.Dragging = false
		}
	})
}
