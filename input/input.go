package input

import "github.com/milk9111/platformer/ecs/component"

// Key is a logical key; Poll maps physical keys onto it.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyToggleEdit
	KeyCopyLevel
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyToggleEdit:
		return "toggle_edit"
	case KeyCopyLevel:
		return "copy_level"
	default:
		return "unknown"
	}
}

// Provider is the per-frame view of the keyboard, mouse and frame clock that
// systems read.
type Provider interface {
	DeltaTime() float64
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	MouseDown() bool
	MousePressed() bool
	MouseReleased() bool
	MousePosition() component.Position
}

// Snapshot is a plain Provider. Poll refills it each frame; tests build it
// by hand.
type Snapshot struct {
	Delta    float64
	Down     [keyCount]bool
	Pressed  [keyCount]bool
	Mouse    component.Position
	LeftDown bool
	LeftHit  bool
	LeftUp   bool
}

func (s *Snapshot) DeltaTime() float64 { return s.Delta }

func (s *Snapshot) KeyDown(k Key) bool {
	return k >= 0 && k < keyCount && s.Down[k]
}

func (s *Snapshot) KeyPressed(k Key) bool {
	return k >= 0 && k < keyCount && s.Pressed[k]
}

func (s *Snapshot) MouseDown() bool     { return s.LeftDown }
func (s *Snapshot) MousePressed() bool  { return s.LeftHit }
func (s *Snapshot) MouseReleased() bool { return s.LeftUp }

func (s *Snapshot) MousePosition() component.Position { return s.Mouse }

// Hold marks k as held, and as newly pressed when pressed is true.
func (s *Snapshot) Hold(k Key, pressed bool) {
	if k < 0 || k >= keyCount {
		return
	}
	s.Down[k] = true
	s.Pressed[k] = pressed
}

// Reset clears every key and button, keeping the delta time and cursor.
func (s *Snapshot) Reset() {
	s.Down = [keyCount]bool{}
	s.Pressed = [keyCount]bool{}
	s.LeftDown, s.LeftHit, s.LeftUp = false, false, false
}
