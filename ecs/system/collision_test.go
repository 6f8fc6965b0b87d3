package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionBlockedByWallKeepsFalling(t *testing.T) {
	f := newFixture(0.1)
	body := addBody(t, f.w, 0, 0, component.Position{X: 100}, nil)
	addBox(t, f.w, 32, 0, 32, 32)
	f.w.Maintain()

	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

	m := moveableOf(t, f.w, body)
	h := hitboxOf(t, f.w, body)
	assert.Equal(t, 0.0, m.Velocity.X)
	assert.Equal(t, 0.0, h.Position.X)
	assert.InDelta(t, f.tuning.Gravity()*0.1, m.Velocity.Y, 1e-9)

	// Second frame: the body now has downward speed and moves along Y.
	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)
	assert.Greater(t, h.Position.Y, 0.0)
	assert.Equal(t, 0.0, h.Position.X)
}

func TestCollisionDiagonalAxisSeparation(t *testing.T) {
	cases := []struct {
		name     string
		obstacle component.Rect
		wantX    float64
		wantY    float64
		wantVX   float64
	}{
		{"wall_right_blocks_x_only", component.NewRect(40, 0, 32, 32), 0, 10, 0},
		{"floor_below_blocks_y_only", component.NewRect(0, 40, 32, 32), 10, 40 - 32 - 0.05, 100},
		{"corner_clip_blocks_nothing", component.NewRect(40, 40, 32, 32), 10, 10, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(0.1)
			body := addBody(t, f.w, 0, 0, component.Position{X: 100, Y: 100}, nil)
			addBox(t, f.w, tc.obstacle.Position.X, tc.obstacle.Position.Y, tc.obstacle.Width, tc.obstacle.Height)
			f.w.Maintain()

			NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

			h := hitboxOf(t, f.w, body)
			m := moveableOf(t, f.w, body)
			assert.InDelta(t, tc.wantX, h.Position.X, 1e-9)
			assert.InDelta(t, tc.wantY, h.Position.Y, 1e-9)
			assert.Equal(t, tc.wantVX, m.Velocity.X)
		})
	}
}

func TestCollisionGroundContactResetsJump(t *testing.T) {
	f := newFixture(0.1)
	ctrl := &component.PlatformController{CanJump: false, CoyoteTime: 7}
	body := addBody(t, f.w, 0, 0, component.Position{Y: 100}, ctrl)
	addBox(t, f.w, 0, 40, 32, 32)
	f.w.Maintain()

	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

	h := hitboxOf(t, f.w, body)
	assert.InDelta(t, 40-32-f.tuning.Padding, h.Position.Y, 1e-9)
	assert.Equal(t, 0.0, moveableOf(t, f.w, body).Velocity.Y)
	assert.True(t, ctrl.CanJump)
	assert.Equal(t, 0.0, ctrl.CoyoteTime)
}

func TestCollisionCeilingContactKeepsJumpState(t *testing.T) {
	f := newFixture(0.1)
	ctrl := &component.PlatformController{CanJump: false, CoyoteTime: 5}
	body := addBody(t, f.w, 0, 35, component.Position{Y: -100}, ctrl)
	addBox(t, f.w, 0, 0, 32, 32)
	f.w.Maintain()

	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

	h := hitboxOf(t, f.w, body)
	assert.InDelta(t, 32+f.tuning.Padding, h.Position.Y, 1e-9)
	assert.Equal(t, 0.0, moveableOf(t, f.w, body).Velocity.Y)
	assert.False(t, ctrl.CanJump)
	assert.Equal(t, 5.0, ctrl.CoyoteTime)
}

func TestCollisionAirborneCountsCoyoteFrames(t *testing.T) {
	f := newFixture(0.1)
	ctrl := &component.PlatformController{CanJump: true}
	body := addBody(t, f.w, 0, 0, component.Position{Y: 10}, ctrl)
	f.w.Maintain()

	sys := NewCollisionSystem(f.in, f.edit, f.tuning)
	for i := 0; i < 3; i++ {
		sys.Update(f.w)
	}

	assert.False(t, ctrl.CanJump)
	assert.Equal(t, 3.0, ctrl.CoyoteTime)
	assert.Greater(t, hitboxOf(t, f.w, body).Position.Y, 0.0)
}

func TestCollisionSkippedInEditMode(t *testing.T) {
	f := newFixture(0.1)
	body := addBody(t, f.w, 0, 0, component.Position{X: 50, Y: 50}, nil)
	f.w.Maintain()
	f.edit.Editing = true

	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

	assert.Equal(t, component.Position{}, hitboxOf(t, f.w, body).Position)
}

func TestCollisionIgnoresPendingEntities(t *testing.T) {
	f := newFixture(0.1)
	body := addBody(t, f.w, 0, 0, component.Position{X: 100}, nil)
	f.w.Maintain()
	addBox(t, f.w, 32, 0, 32, 32) // reserved, not yet maintained

	NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)

	assert.InDelta(t, 10.0, hitboxOf(t, f.w, body).Position.X, 1e-9)
}

func TestCollisionMoveableWithoutHitboxPanics(t *testing.T) {
	f := newFixture(0.1)
	e := ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, e, component.MoveableComponent.Kind(), &component.Moveable{}))
	f.w.Maintain()

	assert.Panics(t, func() {
		NewCollisionSystem(f.in, f.edit, f.tuning).Update(f.w)
	})
}
