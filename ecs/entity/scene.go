package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// BuildScene creates the player, the tool palette and the toolbar icons.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) error {
	if spec == nil {
		return fmt.Errorf("scene: nil spec")
	}
	if _, err := NewPlayer(w, spec.Player); err != nil {
		return err
	}
	for _, b := range spec.Palette {
		tool, ok := component.ToolFromName(b.Tool)
		if !ok {
			return fmt.Errorf("scene: unknown palette tool %q", b.Tool)
		}
		if _, err := NewPaletteButton(w, tool, b.Text, component.NewRect(b.X, b.Y, b.Width, b.Height)); err != nil {
			return err
		}
	}
	for _, ic := range spec.Toolbar {
		kind, ok := component.IconKindFromName(ic.Kind)
		if !ok {
			return fmt.Errorf("scene: unknown icon %q", ic.Kind)
		}
		if _, err := NewIcon(w, kind, component.Position{X: ic.X, Y: ic.Y}, spec.IconSize); err != nil {
			return err
		}
	}
	return nil
}
