package system

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	w      *ecs.World
	in     *input.Snapshot
	edit   *component.EditState
	tuning *common.Tuning
}

func newFixture(dt float64) *fixture {
	tuning := common.DefaultTuning()
	return &fixture{
		w:      ecs.NewWorld(),
		in:     &input.Snapshot{Delta: dt},
		edit:   &component.EditState{},
		tuning: &tuning,
	}
}

func addBox(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	h := &component.Hitbox{Rect: component.NewRect(x, y, width, height)}
	require.NoError(t, ecs.Add(w, e, component.HitboxComponent.Kind(), h))
	return e
}

func addBody(t *testing.T, w *ecs.World, x, y float64, vel component.Position, ctrl *component.PlatformController) ecs.Entity {
	t.Helper()
	e := addBox(t, w, x, y, 32, 32)
	require.NoError(t, ecs.Add(w, e, component.MoveableComponent.Kind(), &component.Moveable{Velocity: vel, Width: 32, Height: 32}))
	if ctrl != nil {
		require.NoError(t, ecs.Add(w, e, component.PlatformControllerComponent.Kind(), ctrl))
	}
	return e
}

func hitboxOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Hitbox {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
	require.True(t, ok)
	return h
}

func moveableOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Moveable {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MoveableComponent.Kind())
	require.True(t, ok)
	return m
}

func controllerOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.PlatformController {
	t.Helper()
	c, ok := ecs.Get(w, e, component.PlatformControllerComponent.Kind())
	require.True(t, ok)
	return c
}

// frame clears one-shot input and commits queued entity changes.
func (f *fixture) frame() {
	f.w.Maintain()
	f.in.LeftHit, f.in.LeftUp = false, false
	for i := range f.in.Pressed {
		f.in.Pressed[i] = false
	}
}
