package tree

import "github.com/go-gl/mathgl/mgl32"

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{lerp(a[0], b[0], t), lerp(a[1], b[1], t), lerp(a[2], b[2], t)}
}

// Smoothstep is 0 at or below lo, 1 at or above hi, and the cubic
// x²(3−2x) in between.
func Smoothstep(x, lo, hi float32) float32 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	x = (x - lo) / (hi - lo)
	return x * x * (3 - 2*x)
}

// EaseInOutQuart is the quartic in-out curve on [0,1].
func EaseInOutQuart(x float32) float32 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}
	y := -2*x + 2
	return 1 - y*y*y*y/2
}
