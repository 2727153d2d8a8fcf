package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircle fits a circle to points lying in a plane orthogonal to axis,
// such as the vertices of one closed contour.
//
// The center comes from the 3-point determinant formula applied to the
// first, middle and last point:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
//
// The radius is the mean distance of all points to that center.
func FitCircle(points []Vector3, axis Axis) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle, got %d", len(points))
	}
	if !axis.Valid() {
		return nil, fmt.Errorf("invalid constraint axis: %d", int(axis))
	}

	others := axis.Others()
	project := func(p Vector3) (float64, float64) {
		return p.Component(others[0]), p.Component(others[1])
	}

	x1, y1 := project(points[0])
	x2, y2 := project(points[len(points)/3])
	x3, y3 := project(points[2*len(points)/3])

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cu := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cv := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	distances := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		u, v := project(p)
		distances[i] = math.Hypot(u-cu, v-cv)
		sum += distances[i]
	}
	n := float64(len(points))
	radius := sum / n

	var sumError float64
	for _, d := range distances {
		sumError += (d - radius) * (d - radius)
	}

	var center Vector3
	setComponent(&center, axis, points[0].Component(axis))
	setComponent(&center, others[0], cu)
	setComponent(&center, others[1], cv)

	return &CircleFit{
		Center: center,
		Radius: radius,
		Normal: axis.Unit(),
		StdDev: math.Sqrt(sumError / n),
	}, nil
}

func setComponent(v *Vector3, axis Axis, value float64) {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
}
