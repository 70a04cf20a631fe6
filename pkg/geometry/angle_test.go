package geometry

import (
	"math"
	"testing"
)

func TestAngleToPointCompassConvention(t *testing.T) {
	cases := []struct {
		angle  float64
		wantX  float64
		wantY  float64
		reason string
	}{
		{0, 0, -10, "0° points up"},
		{90, 10, 0, "90° points right"},
		{180, 0, 10, "180° points down"},
		{270, -10, 0, "270° points left"},
	}

	for _, c := range cases {
		x, y := AngleToPoint(c.angle, 2, 5)
		if math.Abs(x-c.wantX) > 1e-9 || math.Abs(y-c.wantY) > 1e-9 {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.reason, x, y, c.wantX, c.wantY)
		}
	}
}

func TestPointToAngleInvertsAngleToPoint(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		x, y := AngleToPoint(deg, 3, 40)
		got := PointToAngle(x, y)
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("round trip failed for %v: got %v", deg, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		370:  10,
		-10:  350,
		-370: 350,
		720:  0,
	}
	for in, want := range cases {
		if got := NormalizeDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
	if got := NormalizeDegrees(-1e-20); got < 0 || got >= 360 {
		t.Errorf("NormalizeDegrees should stay in [0, 360), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned unexpected values")
	}
}
