package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewGhost creates the placement preview that follows the mouse.
func NewGhost(w *ecs.World, sprite string, pos component.Position) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: sprite}); err != nil {
		return 0, fmt.Errorf("ghost: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &pos); err != nil {
		return 0, fmt.Errorf("ghost: add position: %w", err)
	}
	return e, nil
}

func NewPaletteButton(w *ecs.World, tool component.ToolPalette, text string, bounds component.Rect) (ecs.Entity, error) {
	if text == "" {
		text = tool.String()
	}
	e := ecs.CreateEntity(w)
	btn := &component.EditBtn{Bounds: bounds, Text: text, Tool: tool}
	if err := ecs.Add(w, e, component.EditBtnComponent.Kind(), btn); err != nil {
		return 0, fmt.Errorf("palette button: add edit button: %w", err)
	}
	return e, nil
}

func NewIcon(w *ecs.World, kind component.IconKind, pos component.Position, size float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	icon := &component.Icon{Kind: kind, Position: pos, Size: size}
	if err := ecs.Add(w, e, component.IconComponent.Kind(), icon); err != nil {
		return 0, fmt.Errorf("icon: add icon: %w", err)
	}
	return e, nil
}
