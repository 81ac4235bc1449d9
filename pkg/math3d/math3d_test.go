package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestVec3Translate(t *testing.T) {
	p := V3(1, 2, 3)
	q := p.Translate(1, -2, 0.5)

	if q != V3(2, 0, 3.5) {
		t.Errorf("Translate = %v, want (2, 0, 3.5)", q)
	}
	if p != V3(1, 2, 3) {
		t.Errorf("Translate mutated receiver: %v", p)
	}
}

func TestVec3Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same point", V3(1, 1, 1), V3(1, 1, 1), 0},
		{"axis", V3(0, 0, 0), V3(0, 0, 5), 5},
		{"3-4-5", V3(0, 0, 0), V3(3, 4, 0), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Distance(tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Distance = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVec3IsZero(t *testing.T) {
	if !Zero3().IsZero() {
		t.Error("Zero3 should be zero")
	}
	if V3(0, 1e-300, 0).IsZero() {
		t.Error("tiny component should not count as zero")
	}
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("X × Y = %v, want Z", got)
	}
}

func TestMat4Identity(t *testing.T) {
	v := V3(3, -4, 5)
	if got := Identity().MulVec3(v); got != v {
		t.Errorf("Identity * v = %v, want %v", got, v)
	}
}

func TestMat4TranslateScale(t *testing.T) {
	m := Translate(V3(10, 0, 0)).Mul(ScaleUniform(2))
	got := m.MulVec3(V3(1, 2, 3))

	if !vecNear(got, V3(12, 4, 6)) {
		t.Errorf("translate*scale = %v, want (12, 4, 6)", got)
	}
	if m.Translation() != V3(10, 0, 0) {
		t.Errorf("Translation = %v", m.Translation())
	}
}

func TestRotationsQuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"X turns Y into Z", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"Y turns Z into X", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"Z turns X into Y", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec3(tc.in); !vecNear(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMat4Get(t *testing.T) {
	m := Translate(V3(7, 8, 9))
	if m.Get(0, 3) != 7 || m.Get(1, 3) != 8 || m.Get(2, 3) != 9 {
		t.Errorf("Get translation column = %v %v %v", m.Get(0, 3), m.Get(1, 3), m.Get(2, 3))
	}
}
