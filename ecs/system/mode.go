package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// ModeSystem flips between play and edit mode on the toggle key.
type ModeSystem struct {
	input input.Provider
	edit  *component.EditState
}

func NewModeSystem(in input.Provider, edit *component.EditState) *ModeSystem {
	return &ModeSystem{input: in, edit: edit}
}

func (m *ModeSystem) Update(w *ecs.World) {
	if m == nil || m.edit == nil || m.input == nil {
		return
	}
	if m.input.KeyPressed(input.KeyToggleEdit) {
		m.edit.Editing = !m.edit.Editing
	}
}
