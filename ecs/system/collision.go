package system

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// CollisionSystem integrates every Moveable body and resolves it against all
// other hitboxes, one axis at a time.
type CollisionSystem struct {
	input  input.Provider
	edit   *component.EditState
	tuning *common.Tuning
}

func NewCollisionSystem(in input.Provider, edit *component.EditState, tuning *common.Tuning) *CollisionSystem {
	return &CollisionSystem{input: in, edit: edit, tuning: tuning}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil || c.input == nil || editing(c.edit) {
		return
	}
	dt := c.input.DeltaTime()
	gravity := c.tuning.Gravity()
	padding := c.tuning.Padding
	bodies := newBroadPhase(w)

	ecs.ForEach(w, component.MoveableComponent.Kind(), func(e ecs.Entity, m *component.Moveable) {
		hitbox, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
		if !ok {
			panic(fmt.Sprintf("collision system: moveable entity %v has no hitbox", e))
		}
		ctrl, hasCtrl := ecs.Get(w, e, component.PlatformControllerComponent.Kind())

		candX := hitbox.Translate(component.Position{X: m.Velocity.X * dt})
		candY := hitbox.Translate(component.Position{Y: m.Velocity.Y * dt})
		swept := candX.BB().Merge(candY.BB())

		collidedX, collidedY := false, false
		for _, obs := range bodies.query(e, swept) {
			if candX.Overlaps(obs.rect) {
				collidedX = true
				m.Velocity.X = 0
			}
			if candY.Overlaps(obs.rect) {
				collidedY = true
				m.Velocity.Y = 0
				if candY.Position.Y > hitbox.Position.Y {
					hitbox.Position.Y = obs.rect.Position.Y - hitbox.Height - padding
					if hasCtrl {
						ctrl.CoyoteTime = 0
						ctrl.CanJump = true
					}
				} else {
					hitbox.Position.Y = obs.rect.Bottom() + padding
				}
			}
		}

		if !collidedX {
			hitbox.Position.X = candX.Position.X
		}

		if !collidedY {
			if hasCtrl {
				ctrl.CoyoteTime++
				ctrl.CanJump = false
			}
			hitbox.Position.Y += m.Velocity.Y * dt
			m.Velocity.Y += gravity * dt
		}
		bodies.move(e, hitbox.Rect)
	})
}

