package component

// Hitbox is the solid collision rectangle of an entity.
type Hitbox struct {
	Rect
}

// NewHitbox returns a size x size hitbox with its top-left corner at (x, y).
func NewHitbox(x, y, size float64) Hitbox {
	return Hitbox{Rect: NewRect(x, y, size, size)}
}

var HitboxComponent = NewComponent[Hitbox]()

// Triggerbox is a sensor rectangle; it never blocks movement.
type Triggerbox struct {
	Rect
}

var TriggerboxComponent = NewComponent[Triggerbox]()
