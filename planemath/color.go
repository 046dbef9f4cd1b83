package planemath

// Color enumerates the supported display colors.
type Color int

const (
	// Red is Color 0.
	Red Color = iota
	// Green is Color 1.
	Green
	// Blue is Color 2.
	Blue
)

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}
