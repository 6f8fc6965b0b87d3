package main

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/persist"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

// session is the simulation and editor state without any graphics, so it
// can be driven frame by frame from tests.
type session struct {
	log       *zap.Logger
	world     *ecs.World
	input     *input.Snapshot
	edit      *component.EditState
	tuning    *common.Tuning
	markers   *persist.MarkerAllocator
	scheduler *ecs.Scheduler
	palette   *system.PaletteSystem
	levelPath string
}

func newSession(log *zap.Logger, tuning common.Tuning, scene *prefabs.SceneSpec, levelPath string) (*session, error) {
	s := &session{
		log:       log,
		world:     ecs.NewWorld(),
		input:     &input.Snapshot{},
		edit:      &component.EditState{},
		tuning:    &tuning,
		markers:   persist.NewMarkerAllocator(),
		levelPath: levelPath,
	}

	s.palette = system.NewPaletteSystem(s.input, s.edit, s.tuning, s.markers)
	s.scheduler = ecs.NewScheduler(
		system.NewModeSystem(s.input, s.edit),
		system.NewInputSystem(s.input, s.edit, s.tuning),
		system.NewCollisionSystem(s.input, s.edit, s.tuning),
		system.NewFallingBlockSystem(s.edit, s.tuning),
		system.NewDragSystem(s.input, s.edit, s.tuning),
		s.palette,
		system.NewIconSystem(s.input, s.edit),
	)

	log.Debug("systems scheduled", zap.Strings("order", s.scheduler.Names()))

	if err := entity.BuildScene(s.world, scene); err != nil {
		return nil, fmt.Errorf("bootstrap scene: %w", err)
	}

	n, err := persist.LoadFile(s.world, s.markers, s.tuning, levelPath)
	switch {
	case errors.Is(err, persist.ErrMalformedLevel):
		log.Warn("level skipped", zap.String("path", levelPath), zap.Error(err))
	case err != nil:
		return nil, err
	default:
		log.Info("level loaded", zap.String("path", levelPath), zap.Int("entities", n))
	}

	s.world.Maintain()
	return s, nil
}

// beginFrame applies last frame's queued changes and services a pending
// save request.
func (s *session) beginFrame() error {
	created, destroyed := s.world.Maintain()
	if created > 0 || destroyed > 0 {
		s.log.Debug("world maintained", zap.Int("created", created), zap.Int("destroyed", destroyed))
	}

	if s.edit.ShouldSave {
		if err := persist.SaveFile(s.world, s.levelPath); err != nil {
			return fmt.Errorf("save level: %w", err)
		}
		s.edit.ShouldSave = false
		s.log.Info("level saved", zap.String("path", s.levelPath), zap.Int("entities", ecs.Count(s.world, component.MarkerComponent.Kind())))
	}
	return nil
}

// step runs every system once and logs the events they raised.
func (s *session) step() {
	s.scheduler.Update(s.world)
	for _, evt := range s.world.Events().Drain() {
		s.log.Debug("event",
			zap.String("kind", string(evt.Kind)),
			zap.Stringer("entity", evt.Entity),
			zap.Any("data", evt.Data),
		)
	}
}

// reloadTuning replaces the shared tuning in place so every system sees the
// new values on its next update.
func (s *session) reloadTuning(spec *prefabs.TuningSpec) {
	*s.tuning = spec.Tuning()
	s.log.Info("tuning reloaded",
		zap.Float64("gravity", s.tuning.Gravity()),
		zap.Float64("jump_velocity", s.tuning.JumpVelocity()),
	)
}
