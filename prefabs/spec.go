package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec mirrors common.Tuning. Fields missing from the file keep their
// default values.
type TuningSpec struct {
	MaxCoyoteTime    float64 `yaml:"max_coyote_time"`
	TimeToJumpHeight float64 `yaml:"time_to_jump_height"`
	JumpHeight       float64 `yaml:"jump_height"`
	HorizontalSpeed  float64 `yaml:"horizontal_speed"`
	Padding          float64 `yaml:"padding"`
	MaxFallCount     uint32  `yaml:"max_fall_count"`
	GridSize         float64 `yaml:"grid_size"`
	TriggerOffset    float64 `yaml:"trigger_offset"`
}

func defaultTuningSpec() TuningSpec {
	t := common.DefaultTuning()
	return TuningSpec{
		MaxCoyoteTime:    t.MaxCoyoteTime,
		TimeToJumpHeight: t.TimeToJumpHeight,
		JumpHeight:       t.JumpHeight,
		HorizontalSpeed:  t.HorizontalSpeed,
		Padding:          t.Padding,
		MaxFallCount:     t.MaxFallCount,
		GridSize:         t.GridSize,
		TriggerOffset:    t.TriggerOffset,
	}
}

func (s TuningSpec) Tuning() common.Tuning {
	return common.Tuning{
		MaxCoyoteTime:    s.MaxCoyoteTime,
		TimeToJumpHeight: s.TimeToJumpHeight,
		JumpHeight:       s.JumpHeight,
		HorizontalSpeed:  s.HorizontalSpeed,
		Padding:          s.Padding,
		MaxFallCount:     s.MaxFallCount,
		GridSize:         s.GridSize,
		TriggerOffset:    s.TriggerOffset,
	}
}

func (s TuningSpec) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"max_coyote_time", s.MaxCoyoteTime},
		{"time_to_jump_height", s.TimeToJumpHeight},
		{"jump_height", s.JumpHeight},
		{"horizontal_speed", s.HorizontalSpeed},
		{"padding", s.Padding},
		{"grid_size", s.GridSize},
		{"trigger_offset", s.TriggerOffset},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}
	if !(s.TimeToJumpHeight > 0) {
		return fmt.Errorf("time_to_jump_height must be positive, got %v", s.TimeToJumpHeight)
	}
	if !(s.GridSize > 0) {
		return fmt.Errorf("grid_size must be positive, got %v", s.GridSize)
	}
	return nil
}

const TuningFile = "tuning.yaml"

func LoadTuningSpec() (*TuningSpec, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuningSpec(data)
}

func ParseTuningSpec(data []byte) (*TuningSpec, error) {
	spec := defaultTuningSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", TuningFile, err)
	}
	return &spec, nil
}

// SceneSpec lays out the bootstrap entities: the player and the editor
// furniture.
type SceneSpec struct {
	Window   WindowSpec   `yaml:"window"`
	Player   PlayerSpec   `yaml:"player"`
	Palette  []ButtonSpec `yaml:"palette"`
	Toolbar  []IconSpec   `yaml:"toolbar"`
	IconSize float64      `yaml:"icon_size"`
}

type WindowSpec struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Title      string    `yaml:"title"`
	Background YAMLColor `yaml:"background"`
}

type PlayerSpec struct {
	Sprite    string        `yaml:"sprite"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
}

type ButtonSpec struct {
	Tool   string  `yaml:"tool"`
	Text   string  `yaml:"text"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type IconSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

const SceneFile = "scene.yaml"

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	if !(spec.IconSize > 0) {
		spec.IconSize = 32
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
