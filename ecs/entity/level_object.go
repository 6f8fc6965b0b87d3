package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewLevelObject creates a placed, savable object of the given tool at pos.
func NewLevelObject(w *ecs.World, tuning *common.Tuning, tool component.ToolPalette, pos component.Position, marker component.Marker) (ecs.Entity, error) {
	if !marker.Valid() {
		return 0, fmt.Errorf("level object: invalid marker %d", marker.ID)
	}
	e := ecs.CreateEntity(w)
	hitbox := component.NewHitbox(pos.X, pos.Y, tuning.GridSize)
	if err := ecs.Add(w, e, component.HitboxComponent.Kind(), &hitbox); err != nil {
		return 0, fmt.Errorf("level object: add hitbox: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: tool.String()}); err != nil {
		return 0, fmt.Errorf("level object: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.MarkerComponent.Kind(), &marker); err != nil {
		return 0, fmt.Errorf("level object: add marker: %w", err)
	}
	if err := attachToolComponents(w, e, tuning, tool, hitbox.Rect); err != nil {
		return 0, err
	}
	return e, nil
}

// RestoreLevelObject re-attaches the components a saved record does not
// carry. The sprite name selects the object type; unknown names only get a
// drag box.
func RestoreLevelObject(w *ecs.World, tuning *common.Tuning, e ecs.Entity) error {
	hitbox, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
	if !ok {
		return nil
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return nil
	}
	tool, ok := component.ToolFromName(sprite.Name)
	if !ok {
		if ecs.Has(w, e, component.DragBoxComponent.Kind()) {
			return nil
		}
		return ecs.Add(w, e, component.DragBoxComponent.Kind(), &component.DragBox{})
	}
	return attachToolComponents(w, e, tuning, tool, hitbox.Rect)
}

func attachToolComponents(w *ecs.World, e ecs.Entity, tuning *common.Tuning, tool component.ToolPalette, bounds component.Rect) error {
	if err := ecs.Add(w, e, component.DragBoxComponent.Kind(), &component.DragBox{}); err != nil {
		return fmt.Errorf("level object: add drag box: %w", err)
	}

	switch tool {
	case component.ToolFallingBlock:
		if err := ecs.Add(w, e, component.FallingBlockComponent.Kind(), &component.FallingBlock{}); err != nil {
			return fmt.Errorf("level object: add falling block: %w", err)
		}
		trigger := component.Triggerbox{Rect: bounds.Translate(component.Position{Y: -tuning.TriggerOffset})}
		if err := ecs.Add(w, e, component.TriggerboxComponent.Kind(), &trigger); err != nil {
			return fmt.Errorf("level object: add triggerbox: %w", err)
		}
	default:
		ecs.Remove(w, e, component.FallingBlockComponent.Kind())
		ecs.Remove(w, e, component.TriggerboxComponent.Kind())
	}
	return nil
}
