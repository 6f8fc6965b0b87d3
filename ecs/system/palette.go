package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/persist"
)

// PaletteSystem owns the editor selection: which tool is active and the
// ghost entity previewing it under the mouse.
type PaletteSystem struct {
	input   input.Provider
	edit    *component.EditState
	tuning  *common.Tuning
	markers *persist.MarkerAllocator

	ghost   ecs.Entity
	tool    component.ToolPalette
	hasTool bool
}

func NewPaletteSystem(in input.Provider, edit *component.EditState, tuning *common.Tuning, markers *persist.MarkerAllocator) *PaletteSystem {
	return &PaletteSystem{input: in, edit: edit, tuning: tuning, markers: markers}
}

// Selection returns the ghost and its tool. ok is false when nothing is
// selected.
func (p *PaletteSystem) Selection() (ghost ecs.Entity, tool component.ToolPalette, ok bool) {
	return p.ghost, p.tool, p.hasTool
}

func (p *PaletteSystem) Update(w *ecs.World) {
	if w == nil || p.input == nil || !editing(p.edit) {
		return
	}
	mouse := p.input.MousePosition()

	overButton := false
	ecs.ForEach(w, component.EditBtnComponent.Kind(), func(_ ecs.Entity, btn *component.EditBtn) {
		if overButton || !btn.Bounds.Contains(mouse) {
			return
		}
		overButton = true
		if p.input.MouseReleased() {
			p.press(w, btn, mouse)
		}
	})

	if !p.hasTool {
		return
	}
	cell := mouse.SnapFloor(p.tuning.GridSize)
	if pos, ok := ecs.Get(w, p.ghost, component.PositionComponent.Kind()); ok {
		*pos = cell
	}
	// The palette sits on top of the level; clicks on it never paint.
	if overButton || !p.input.MouseDown() {
		return
	}
	p.place(w, cell)
}

func (p *PaletteSystem) press(w *ecs.World, btn *component.EditBtn, mouse component.Position) {
	switch {
	case !p.hasTool:
		ghost, err := entity.NewGhost(w, btn.Text, mouse)
		if err != nil {
			panic("palette system: create ghost: " + err.Error())
		}
		p.ghost, p.tool, p.hasTool = ghost, btn.Tool, true
		w.Events().Push(ecs.Event{Kind: ecs.EventToolSelected, Entity: ghost, Data: btn.Tool})
	case p.tool == btn.Tool:
		ghost := p.ghost
		ecs.DestroyEntity(w, ghost)
		p.ghost, p.tool, p.hasTool = 0, 0, false
		w.Events().Push(ecs.Event{Kind: ecs.EventToolCleared, Entity: ghost, Data: btn.Tool})
	default:
		if sprite, ok := ecs.Get(w, p.ghost, component.SpriteComponent.Kind()); ok {
			sprite.Name = btn.Text
		}
		p.tool = btn.Tool
		w.Events().Push(ecs.Event{Kind: ecs.EventToolChanged, Entity: p.ghost, Data: btn.Tool})
	}
}

// place puts the selected tool at cell. An identical object already there
// blocks placement; differing objects are replaced.
func (p *PaletteSystem) place(w *ecs.World, cell component.Position) {
	name := p.tool.String()
	target := component.NewRect(cell.X, cell.Y, p.tuning.GridSize, p.tuning.GridSize)

	var replaced []ecs.Entity
	blocked := false
	ecs.ForEach3(w, component.MarkerComponent.Kind(), component.HitboxComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Marker, h *component.Hitbox, s *component.Sprite) {
		if blocked || !h.Overlaps(target) {
			return
		}
		if s.Name == name {
			blocked = true
			return
		}
		replaced = append(replaced, e)
	})
	if blocked {
		return
	}

	for _, e := range replaced {
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Kind: ecs.EventReplaced, Entity: e, Data: name})
	}
	e, err := entity.NewLevelObject(w, p.tuning, p.tool, cell, p.markers.Allocate())
	if err != nil {
		panic("palette system: place object: " + err.Error())
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventPlaced, Entity: e, Data: name})
}
