package component

// Sprite names the asset drawn for an entity. The name is also the type of a
// placed level object.
type Sprite struct {
	Name string
}

var SpriteComponent = NewComponent[Sprite]()
