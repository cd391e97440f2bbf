package sim

// Size is the class of an asteroid. It determines visual scale, collision
// radius and what a bullet hit splits it into.
type Size uint8

const (
	SizeBig Size = iota
	SizeMedium
	SizeSmall

	sizeCount = 3
)

// String returns a human-readable name for the size class.
func (s Size) String() string {
	switch s {
	case SizeBig:
		return "big"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// ParseSize converts a size name back into a Size.
func ParseSize(name string) (Size, bool) {
	switch name {
	case "big":
		return SizeBig, true
	case "medium":
		return SizeMedium, true
	case "small":
		return SizeSmall, true
	}
	return 0, false
}

func (s Size) index() int {
	if s >= sizeCount {
		panic("sim: invalid asteroid size " + s.String())
	}
	return int(s)
}

// Split returns the size of the fragments a destroyed asteroid breaks into.
// Small asteroids leave no fragments.
func Split(s Size) (Size, bool) {
	switch s {
	case SizeBig:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return 0, false
	}
}
