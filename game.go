package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/persist"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

type Options struct {
	LevelPath string
	Debug     bool
	Watch     bool
}

type Game struct {
	*session

	render    *system.RenderSystem
	hud       *HUD
	watcher   *prefabs.Watcher
	clipboard bool

	width  int
	height int
	title  string
}

func NewGame(log *zap.Logger, opts Options) (*Game, error) {
	tuningSpec, err := prefabs.LoadTuningSpec()
	if err != nil {
		return nil, err
	}
	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}

	log.Info("prefabs loaded",
		zap.String(prefabs.TuningFile, string(prefabs.Origin(prefabs.TuningFile))),
		zap.String(prefabs.SceneFile, string(prefabs.Origin(prefabs.SceneFile))),
	)

	s, err := newSession(log, tuningSpec.Tuning(), scene, opts.LevelPath)
	if err != nil {
		return nil, err
	}

	lib, err := assets.NewLibrary(int(s.tuning.GridSize))
	if err != nil {
		return nil, err
	}

	g := &Game{
		session: s,
		width:   scene.Window.Width,
		height:  scene.Window.Height,
		title:   scene.Window.Title,
	}
	g.render = system.NewRenderSystem(lib, s.edit, s.tuning, s.palette, scene.Window.Background.Color)
	g.render.Debug = opts.Debug
	g.hud = NewHUD()

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
	} else {
		g.clipboard = true
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if err := g.beginFrame(); err != nil {
		return err
	}
	g.drainWatcher()

	input.Poll(g.input)
	g.step()

	if g.edit.Editing && g.input.KeyPressed(input.KeyCopyLevel) {
		g.copyLevel()
	}

	g.hud.Set(g.hudText())
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
errs:
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break errs
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			break errs
		}
	}

	for _, name := range g.watcher.Drain() {
		if name != prefabs.TuningFile {
			continue
		}
		spec, err := prefabs.LoadTuningSpec()
		if err != nil {
			g.log.Warn("tuning reload failed", zap.Error(err))
			continue
		}
		g.reloadTuning(spec)
	}
}

func (g *Game) copyLevel() {
	data, err := persist.Serialize(g.world)
	if err != nil {
		g.log.Warn("copy level", zap.Error(err))
		return
	}
	if !g.clipboard {
		g.log.Warn("copy level: clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.log.Info("level copied to clipboard", zap.Int("bytes", len(data)))
}

func (g *Game) hudText() (mode, status string) {
	mode = "PLAY  [P] edit"
	if g.edit.Editing {
		mode = "EDIT  [P] play  [C] copy"
	}
	tool := "none"
	if _, t, ok := g.palette.Selection(); ok {
		tool = t.String()
	}
	status = fmt.Sprintf("tool: %s  objects: %d  next marker: %d",
		tool, ecs.Count(g.world, component.MarkerComponent.Kind()), g.markers.Peek().ID)
	return mode, status
}
