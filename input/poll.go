package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/component"
)

var bindings = map[Key][]ebiten.Key{
	KeyLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyJump:       {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	KeyToggleEdit: {ebiten.KeyP},
	KeyCopyLevel:  {ebiten.KeyC},
}

// Poll refreshes s from ebiten. It must be called from Game.Update.
func Poll(s *Snapshot) {
	s.Reset()
	s.Delta = 1 / float64(ebiten.TPS())

	for k, keys := range bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				s.Down[k] = true
			}
			if inpututil.IsKeyJustPressed(key) {
				s.Pressed[k] = true
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	s.Mouse = component.Position{X: float64(mx), Y: float64(my)}
	s.LeftDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftHit = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
