package component

import (
	"fmt"
	"strings"
)

// ToolPalette is the kind of level object the editor places.
type ToolPalette int

const (
	ToolBlock ToolPalette = iota
	ToolFallingBlock
	ToolSpikeBlock
)

var toolNames = [...]string{
	ToolBlock:        "block",
	ToolFallingBlock: "fallingblock",
	ToolSpikeBlock:   "spikeblock",
}

// Tools lists every palette entry in display order.
func Tools() []ToolPalette {
	return []ToolPalette{ToolBlock, ToolFallingBlock, ToolSpikeBlock}
}

// String returns the sprite name of objects placed with t.
func (t ToolPalette) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("tool(%d)", int(t))
	}
	return toolNames[t]
}

func ToolFromName(name string) (ToolPalette, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return ToolPalette(i), true
		}
	}
	return 0, false
}

// EditBtn is a palette button. Text is the sprite name shown on the button
// and given to the ghost entity.
type EditBtn struct {
	Bounds Rect
	Text   string
	Tool   ToolPalette
}

var EditBtnComponent = NewComponent[EditBtn]()
