package keyframe

import (
	"image/color"
	"testing"
)

var _ color.Color = Color{}

// --- Vec3 ---

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	assertVec3(t, "Add", a.Add(b), Vec3{5, -3, 9})
	assertVec3(t, "Sub", a.Sub(b), Vec3{-3, 7, -3})
	assertVec3(t, "Scale", a.Scale(2), Vec3{2, 4, 6})
	assertNear(t, "Dot", a.Dot(b), 4-10+18)
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y cross z", Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z cross x", Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"parallel", Vec3{2, 0, 0}, Vec3{5, 0, 0}, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3(t, "cross", tt.a.Cross(tt.b), tt.want)
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	assertVec3(t, "unit", Vec3{3, 0, 4}.Normalize(), Vec3{0.6, 0, 0.8})
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 10, -10}
	b := Vec3{10, 20, 10}
	assertVec3(t, "t=0", a.Lerp(b, 0), a)
	assertVec3(t, "t=1", a.Lerp(b, 1), b)
	assertVec3(t, "t=0.5", a.Lerp(b, 0.5), Vec3{5, 15, 0})
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint32
	}{
		{"white", ColorWhite, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Color{1, 1, 1, 0}, 0, 0, 0, 0},
		{"half red premultiplied", Color{1, 0, 0, 0.5}, 0x8000, 0, 0, 0x8000},
		{"clamped", Color{2, -1, 0, 1}, 0xffff, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA() = %#x %#x %#x %#x, want %#x %#x %#x %#x", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}
