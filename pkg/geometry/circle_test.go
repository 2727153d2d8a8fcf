package geometry

import (
	"math"
	"testing"
)

func TestFitCircle(t *testing.T) {
	var points []Vector3
	for i := 0; i < 24; i++ {
		angle := 2 * math.Pi * float64(i) / 24
		points = append(points, NewVector3(2+3*math.Cos(angle), 5, -1+3*math.Sin(angle)))
	}

	fit, err := FitCircle(points, AxisY)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}

	if math.Abs(fit.Radius-3) > 1e-9 {
		t.Errorf("Radius failed: expected 3, got %v", fit.Radius)
	}
	if !fit.Center.ApproxEqual(NewVector3(2, 5, -1), 1e-9) {
		t.Errorf("Center failed: expected (2, 5, -1), got %v", fit.Center)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("StdDev failed: expected ~0, got %v", fit.StdDev)
	}
}

func TestFitCircleTooFewPoints(t *testing.T) {
	if _, err := FitCircle([]Vector3{{}, {X: 1}}, AxisZ); err == nil {
		t.Error("expected an error for fewer than 3 points")
	}
}

func TestFitCircleCollinear(t *testing.T) {
	points := []Vector3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	if _, err := FitCircle(points, AxisZ); err == nil {
		t.Error("expected an error for collinear points")
	}
}
