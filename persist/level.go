package persist

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written to every level file. Files with another version
// are rejected as malformed.
const FormatVersion = 1

var ErrMalformedLevel = errors.New("persist: malformed level")

type levelDoc struct {
	Version  int           `yaml:"version"`
	Entities []levelRecord `yaml:"entities"`
}

type levelRecord struct {
	Marker   uint64       `yaml:"marker"`
	Hitbox   *rectDoc     `yaml:"hitbox,omitempty"`
	Position *positionDoc `yaml:"position,omitempty"`
	Sprite   *spriteDoc   `yaml:"sprite,omitempty"`
}

type rectDoc struct {
	Width    float64     `yaml:"width"`
	Height   float64     `yaml:"height"`
	Position positionDoc `yaml:"position"`
}

type positionDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type spriteDoc struct {
	Name string `yaml:"name"`
}

func (p positionDoc) value() component.Position {
	return component.Position{X: p.X, Y: p.Y}
}

func (p positionDoc) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func toPositionDoc(p component.Position) positionDoc {
	return positionDoc{X: p.X, Y: p.Y}
}

// Serialize encodes every live marked entity, ordered by marker.
func Serialize(w *ecs.World) ([]byte, error) {
	doc := levelDoc{Version: FormatVersion, Entities: []levelRecord{}}
	ecs.ForEach(w, component.MarkerComponent.Kind(), func(e ecs.Entity, m *component.Marker) {
		rec := levelRecord{Marker: m.ID}
		if h, ok := ecs.Get(w, e, component.HitboxComponent.Kind()); ok {
			rec.Hitbox = &rectDoc{Width: h.Width, Height: h.Height, Position: toPositionDoc(h.Position)}
		}
		if p, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
			pd := toPositionDoc(*p)
			rec.Position = &pd
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			rec.Sprite = &spriteDoc{Name: s.Name}
		}
		doc.Entities = append(doc.Entities, rec)
	})
	sort.Slice(doc.Entities, func(i, j int) bool {
		return doc.Entities[i].Marker < doc.Entities[j].Marker
	})

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("persist: encode level: %w", err)
	}
	return out, nil
}

func parse(data []byte) (*levelDoc, error) {
	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedLevel, doc.Version)
	}
	seen := make(map[uint64]struct{}, len(doc.Entities))
	for i, rec := range doc.Entities {
		if rec.Marker == 0 {
			return nil, fmt.Errorf("%w: entity %d has no marker", ErrMalformedLevel, i)
		}
		if _, dup := seen[rec.Marker]; dup {
			return nil, fmt.Errorf("%w: duplicate marker %d", ErrMalformedLevel, rec.Marker)
		}
		seen[rec.Marker] = struct{}{}
		if h := rec.Hitbox; h != nil {
			if !(h.Width > 0) || !(h.Height > 0) || math.IsInf(h.Width, 0) || math.IsInf(h.Height, 0) {
				return nil, fmt.Errorf("%w: marker %d has empty hitbox", ErrMalformedLevel, rec.Marker)
			}
			if !h.Position.finite() {
				return nil, fmt.Errorf("%w: marker %d has non-finite hitbox position", ErrMalformedLevel, rec.Marker)
			}
		}
		if rec.Position != nil && !rec.Position.finite() {
			return nil, fmt.Errorf("%w: marker %d has non-finite position", ErrMalformedLevel, rec.Marker)
		}
	}
	return &doc, nil
}

// Deserialize merges a level document into w. A record whose marker is
// already live updates that entity; any other record becomes a new entity
// carrying the saved marker. Nothing is applied when the document is
// malformed. It returns the number of records applied.
func Deserialize(w *ecs.World, alloc *MarkerAllocator, tuning *common.Tuning, data []byte) (int, error) {
	doc, err := parse(data)
	if err != nil {
		return 0, err
	}

	byMarker := make(map[uint64]ecs.Entity)
	ecs.ForEach(w, component.MarkerComponent.Kind(), func(e ecs.Entity, m *component.Marker) {
		byMarker[m.ID] = e
	})

	for _, rec := range doc.Entities {
		marker := component.Marker{ID: rec.Marker}
		e, ok := byMarker[rec.Marker]
		if !ok {
			e = ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.MarkerComponent.Kind(), &marker); err != nil {
				return 0, fmt.Errorf("persist: restore marker %d: %w", rec.Marker, err)
			}
			byMarker[rec.Marker] = e
		}
		if alloc != nil {
			alloc.Observe(marker)
		}

		if rec.Hitbox != nil {
			h := &component.Hitbox{Rect: component.Rect{Width: rec.Hitbox.Width, Height: rec.Hitbox.Height, Position: rec.Hitbox.Position.value()}}
			if err := ecs.Add(w, e, component.HitboxComponent.Kind(), h); err != nil {
				return 0, fmt.Errorf("persist: restore hitbox %d: %w", rec.Marker, err)
			}
		}
		if rec.Position != nil {
			p := rec.Position.value()
			if err := ecs.Add(w, e, component.PositionComponent.Kind(), &p); err != nil {
				return 0, fmt.Errorf("persist: restore position %d: %w", rec.Marker, err)
			}
		}
		if rec.Sprite != nil {
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: rec.Sprite.Name}); err != nil {
				return 0, fmt.Errorf("persist: restore sprite %d: %w", rec.Marker, err)
			}
		}
		if tuning != nil {
			if err := entity.RestoreLevelObject(w, tuning, e); err != nil {
				return 0, fmt.Errorf("persist: restore object %d: %w", rec.Marker, err)
			}
		}
	}
	return len(doc.Entities), nil
}

// SaveFile writes the serialized level to path, replacing any previous
// contents.
func SaveFile(w *ecs.World, path string) error {
	data, err := Serialize(w)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("persist: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("persist: close %s: %w", path, err)
	}
	return nil
}

// LoadFile reads path and merges it into w. Read failures, including a
// missing file, are returned as is; content problems wrap ErrMalformedLevel.
func LoadFile(w *ecs.World, alloc *MarkerAllocator, tuning *common.Tuning, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("persist: read %s: %w", path, err)
	}
	n, err := Deserialize(w, alloc, tuning, data)
	if err != nil {
		return 0, fmt.Errorf("persist: load %s: %w", path, err)
	}
	return n, nil
}
