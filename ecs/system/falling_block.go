package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// FallingBlockSystem arms static falling blocks when a controlled body
// touches their trigger and drops them after a fixed frame delay.
type FallingBlockSystem struct {
	edit   *component.EditState
	tuning *common.Tuning
}

func NewFallingBlockSystem(edit *component.EditState, tuning *common.Tuning) *FallingBlockSystem {
	return &FallingBlockSystem{edit: edit, tuning: tuning}
}

func (f *FallingBlockSystem) Update(w *ecs.World) {
	if w == nil || editing(f.edit) {
		return
	}

	blocks := ecs.Query2(w, component.TriggerboxComponent.Kind(), component.FallingBlockComponent.Kind())
	blocks = ecs.Without(w, blocks, component.MoveableComponent.Kind())
	if len(blocks) == 0 {
		return
	}

	var bodies []component.Rect
	ecs.ForEach2(w, component.PlatformControllerComponent.Kind(), component.HitboxComponent.Kind(), func(_ ecs.Entity, _ *component.PlatformController, h *component.Hitbox) {
		bodies = append(bodies, h.Rect)
	})

	for _, e := range blocks {
		trigger, _ := ecs.Get(w, e, component.TriggerboxComponent.Kind())
		fb, _ := ecs.Get(w, e, component.FallingBlockComponent.Kind())

		switch {
		case !fb.ShouldFall:
			for _, body := range bodies {
				if body.Overlaps(trigger.Rect) {
					fb.ShouldFall = true
					w.Events().Push(ecs.Event{Kind: ecs.EventBlockTriggered, Entity: e})
					break
				}
			}
		case fb.Count <= f.tuning.MaxFallCount:
			fb.Count++
		default:
			if err := ecs.Add(w, e, component.MoveableComponent.Kind(), &component.Moveable{}); err != nil {
				panic("falling block system: attach moveable: " + err.Error())
			}
			w.Events().Push(ecs.Event{Kind: ecs.EventBlockReleased, Entity: e})
		}
	}
}
