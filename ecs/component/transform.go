package component

// Transform is a bare placement rectangle for entities that render but do
// not collide.
type Transform struct {
	Rect
}

var TransformComponent = NewComponent[Transform]()
