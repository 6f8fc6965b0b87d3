package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	gridColor     = color.NRGBA{R: 128, G: 128, B: 128, A: 50}
	buttonColor   = colornames.Blue
	iconColor     = colornames.White
	hitboxColor   = colornames.Red
	triggerColor  = colornames.Yellow
	selectedColor = colornames.Gold
)

// RenderSystem draws the world. It only reads state and must run after
// every Update of the frame.
type RenderSystem struct {
	lib        *assets.Library
	edit       *component.EditState
	tuning     *common.Tuning
	palette    *PaletteSystem
	face       ebtext.Face
	background color.Color

	Debug bool
}

func NewRenderSystem(lib *assets.Library, edit *component.EditState, tuning *common.Tuning, palette *PaletteSystem, background color.Color) *RenderSystem {
	if background == nil {
		background = color.NRGBA{R: 34, G: 32, B: 52, A: 255}
	}
	return &RenderSystem{
		lib:        lib,
		edit:       edit,
		tuning:     tuning,
		palette:    palette,
		face:       ebtext.NewGoXFace(basicfont.Face7x13),
		background: background,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	r.drawSprites(w, screen)
	if r.Debug {
		r.drawDebug(w, screen)
	}
	if editing(r.edit) {
		r.drawGrid(screen)
		r.drawPalette(w, screen)
		r.drawIcons(w, screen)
	}
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image) {
	entities := ecs.Query(w, component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		var at component.Position
		if h, ok := ecs.Get(w, e, component.HitboxComponent.Kind()); ok {
			at = h.Position
		} else if p, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
			at = *p
		} else {
			continue
		}

		img, _ := r.lib.Image(s.Name)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(at.X, at.Y)
		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.HitboxComponent.Kind(), func(_ ecs.Entity, h *component.Hitbox) {
		strokeRect(screen, h.Rect, 2, hitboxColor)
	})
	ecs.ForEach(w, component.TriggerboxComponent.Kind(), func(_ ecs.Entity, t *component.Triggerbox) {
		strokeRect(screen, t.Rect, 1, triggerColor)
	})
}

func (r *RenderSystem) drawGrid(screen *ebiten.Image) {
	grid := r.tuning.GridSize
	if grid <= 0 {
		return
	}
	b := screen.Bounds()
	width, height := float32(b.Dx()), float32(b.Dy())
	for x := 0.0; x < float64(b.Dx()); x += grid {
		vector.StrokeLine(screen, float32(x), 0, float32(x), height, 1, gridColor, false)
	}
	for y := 0.0; y < float64(b.Dy()); y += grid {
		vector.StrokeLine(screen, 0, float32(y), width, float32(y), 1, gridColor, false)
	}
}

func (r *RenderSystem) drawPalette(w *ecs.World, screen *ebiten.Image) {
	_, selected, hasSelection := r.selection()
	ecs.ForEach(w, component.EditBtnComponent.Kind(), func(_ ecs.Entity, btn *component.EditBtn) {
		b := btn.Bounds
		vector.FillRect(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Width), float32(b.Height), buttonColor, false)
		if hasSelection && selected == btn.Tool {
			strokeRect(screen, b, 3, selectedColor)
		}

		img, _ := r.lib.Image(btn.Text)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1.5, 1.5)
		op.GeoM.Translate(b.Position.X+2, b.Position.Y+2)
		screen.DrawImage(img, op)

		r.label(screen, btn.Text, b.Position.X+2, b.Bottom()-14, iconColor)
	})
}

func (r *RenderSystem) drawIcons(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.IconComponent.Kind(), func(_ ecs.Entity, icon *component.Icon) {
		b := icon.Bounds()
		strokeRect(screen, b, 2, iconColor)
		glyph := "?"
		switch icon.Kind {
		case component.IconClear:
			glyph = "X"
		case component.IconSave:
			glyph = "S"
		}
		r.label(screen, glyph, b.Position.X+b.Width/2-3, b.Position.Y+b.Height/2-7, iconColor)
	})
}

func (r *RenderSystem) selection() (ecs.Entity, component.ToolPalette, bool) {
	if r.palette == nil {
		return 0, 0, false
	}
	return r.palette.Selection()
}

func (r *RenderSystem) label(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, r.face, op)
}

func strokeRect(screen *ebiten.Image, rect component.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(rect.Position.X), float32(rect.Position.Y), float32(rect.Width), float32(rect.Height), width, c, false)
}
