package geometry

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lower-case axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Unit returns the unit vector pointing along the axis
func (a Axis) Unit() Vector3 {
	switch a {
	case AxisX:
		return NewVector3(1, 0, 0)
	case AxisY:
		return NewVector3(0, 1, 0)
	default:
		return NewVector3(0, 0, 1)
	}
}

// Others returns the two remaining axes in right-handed order, so that
// Others()[0] x Others()[1] points along a.
func (a Axis) Others() [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisZ, AxisX}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}

// Valid reports whether a names one of the three axes
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis converts "x", "y" or "z" (any case) to an Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q (must be x, y or z)", s)
}
