package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem drives controlled bodies from the keyboard while playing.
type InputSystem struct {
	input  input.Provider
	edit   *component.EditState
	tuning *common.Tuning
}

func NewInputSystem(in input.Provider, edit *component.EditState, tuning *common.Tuning) *InputSystem {
	return &InputSystem{input: in, edit: edit, tuning: tuning}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.input == nil || editing(i.edit) {
		return
	}

	moveX := 0.0
	if i.input.KeyDown(input.KeyLeft) {
		moveX = -i.tuning.HorizontalSpeed
	} else if i.input.KeyDown(input.KeyRight) {
		moveX = i.tuning.HorizontalSpeed
	}
	jump := i.input.KeyDown(input.KeyJump)

	ecs.ForEach2(w, component.PlatformControllerComponent.Kind(), component.MoveableComponent.Kind(), func(e ecs.Entity, ctrl *component.PlatformController, m *component.Moveable) {
		m.Velocity.X = moveX

		// Eligible while grounded or while the airborne counter is under the
		// limit. The counter is not reset by leaving the ground.
		if jump && (ctrl.CanJump || ctrl.CoyoteTime < i.tuning.MaxCoyoteTime) {
			m.Velocity.Y = -i.tuning.JumpVelocity()
			ctrl.CanJump = false
			ctrl.CoyoteTime = i.tuning.MaxCoyoteTime
		}
	})
}

func editing(edit *component.EditState) bool {
	return edit != nil && edit.Editing
}
