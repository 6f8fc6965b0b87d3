package common

// Tuning holds the movement and editor constants read by the systems.
type Tuning struct {
	MaxCoyoteTime    float64
	TimeToJumpHeight float64
	JumpHeight       float64
	HorizontalSpeed  float64
	Padding          float64
	MaxFallCount     uint32
	GridSize         float64
	// TriggerOffset is how far above its hitbox a falling block's trigger
	// sits.
	TriggerOffset float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxCoyoteTime:    15,
		TimeToJumpHeight: 0.55,
		JumpHeight:       66,
		HorizontalSpeed:  200,
		Padding:          0.05,
		MaxFallCount:     80,
		GridSize:         32,
		TriggerOffset:    1,
	}
}

// Gravity is the downward acceleration that reaches JumpHeight in
// TimeToJumpHeight seconds.
func (t Tuning) Gravity() float64 {
	if !(t.TimeToJumpHeight > 0) {
		return 0
	}
	return 2 * t.JumpHeight / (t.TimeToJumpHeight * t.TimeToJumpHeight)
}

func (t Tuning) JumpVelocity() float64 {
	return t.Gravity() * t.TimeToJumpHeight
}
