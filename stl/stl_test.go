package stl

import (
	"testing"

	"github.com/chewxy/math32"
)

func vec3Near(a, b Vec3, eps float32) bool {
	return math32.Abs(a[0]-b[0]) <= eps &&
		math32.Abs(a[1]-b[1]) <= eps &&
		math32.Abs(a[2]-b[2]) <= eps
}

func TestFaceNormal(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want Vec3
	}{
		{
			name: "unit z from ccw winding",
			tri:  Triangle{V: [3]Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
			want: Vec3{0, 0, 1},
		},
		{
			name: "unit minus z from cw winding",
			tri:  Triangle{V: [3]Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}},
			want: Vec3{0, 0, -1},
		},
		{
			name: "normalized from non-unit edges",
			tri:  Triangle{V: [3]Vec3{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}},
			want: Vec3{0, 0, 1},
		},
		{
			name: "degenerate coincident vertices",
			tri:  Triangle{V: [3]Vec3{{1, 1, 1}, {1, 1, 1}, {0, 1, 0}}},
			want: Vec3{},
		},
		{
			name: "degenerate collinear vertices",
			tri:  Triangle{V: [3]Vec3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}},
			want: Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.FaceNormal()
			if !vec3Near(got, tt.want, 1e-6) {
				t.Errorf("FaceNormal got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingNormal(t *testing.T) {
	tests := []struct {
		name string
		n    Vec3
		want bool
	}{
		{name: "exact zero", n: Vec3{}, want: true},
		{name: "below threshold", n: Vec3{1e-21, 0, 0}, want: true},
		{name: "unit", n: Vec3{0, 0, 1}, want: false},
		{name: "tiny but real", n: Vec3{1e-10, 0, 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := missingNormal(tt.n); got != tt.want {
				t.Errorf("missingNormal(%v) got %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	m := &Mesh{
		Triangles: []Triangle{
			{V: [3]Vec3{{0, 0, 0}, {1, 2, 3}, {3, 2, -1}}},
			{V: [3]Vec3{{-2, 0, 0}, {1, 5, 3}, {0, 0, 0}}},
		},
	}
	min, max := m.Bounds()
	if want := (Vec3{-2, 0, -1}); min != want {
		t.Errorf("Bounds min got %v, want %v", min, want)
	}
	if want := (Vec3{3, 5, 3}); max != want {
		t.Errorf("Bounds max got %v, want %v", max, want)
	}

	var empty Mesh
	min, max = empty.Bounds()
	if min != (Vec3{}) || max != (Vec3{}) {
		t.Errorf("empty mesh bounds got %v, %v, want zero vectors", min, max)
	}
}
