package component

type IconKind int

const (
	IconClear IconKind = iota + 1
	IconSave
)

func (k IconKind) String() string {
	switch k {
	case IconClear:
		return "clear"
	case IconSave:
		return "save"
	default:
		return "unknown"
	}
}

func IconKindFromName(name string) (IconKind, bool) {
	switch name {
	case "clear":
		return IconClear, true
	case "save":
		return IconSave, true
	default:
		return 0, false
	}
}

// Icon is a toolbar action button with a square hit area at Position.
type Icon struct {
	Kind     IconKind
	Position Position
	Size     float64
}

func (i Icon) Bounds() Rect {
	return NewRect(i.Position.X, i.Position.Y, i.Size, i.Size)
}

var IconComponent = NewComponent[Icon]()
