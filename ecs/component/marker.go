package component

// Marker is the stable identity of a saved level object. It is assigned once
// and never reused.
type Marker struct {
	ID uint64
}

func (m Marker) Valid() bool {
	return m.ID != 0
}

var MarkerComponent = NewComponent[Marker]()
