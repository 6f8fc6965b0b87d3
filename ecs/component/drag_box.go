package component

type DragBox struct {
	Dragging   bool
	DragOffset Position
}

var DragBoxComponent = NewComponent[DragBox]()
