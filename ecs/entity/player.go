package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	width, height := spec.Collider.Width, spec.Collider.Height
	if !(width > 0) || !(height > 0) {
		return 0, fmt.Errorf("player: invalid collider %vx%v", width, height)
	}
	name := spec.Sprite
	if name == "" {
		name = "player"
	}

	e := ecs.CreateEntity(w)
	hitbox := &component.Hitbox{Rect: component.NewRect(spec.Transform.X, spec.Transform.Y, width, height)}
	if err := ecs.Add(w, e, component.HitboxComponent.Kind(), hitbox); err != nil {
		return 0, fmt.Errorf("player: add hitbox: %w", err)
	}
	if err := ecs.Add(w, e, component.MoveableComponent.Kind(), &component.Moveable{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add moveable: %w", err)
	}
	if err := ecs.Add(w, e, component.PlatformControllerComponent.Kind(), &component.PlatformController{}); err != nil {
		return 0, fmt.Errorf("player: add controller: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: name}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.DragBoxComponent.Kind(), &component.DragBox{}); err != nil {
		return 0, fmt.Errorf("player: add drag box: %w", err)
	}
	return e, nil
}
