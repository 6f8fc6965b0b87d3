package component

// FallingBlock counts frames between a trigger and the block dropping.
type FallingBlock struct {
	Count      uint32
	ShouldFall bool
}

var FallingBlockComponent = NewComponent[FallingBlock]()
