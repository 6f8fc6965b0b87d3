package component

// Moveable turns a hitbox into a physics body. Entities with a Hitbox and no
// Moveable are static terrain.
type Moveable struct {
	Velocity Position
	Width    float64
	Height   float64
}

var MoveableComponent = NewComponent[Moveable]()

// PlatformController tracks jump eligibility. CoyoteTime counts frames since
// the body last touched ground.
type PlatformController struct {
	CanJump    bool
	CoyoteTime float64
}

var PlatformControllerComponent = NewComponent[PlatformController]()
