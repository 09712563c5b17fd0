package tree

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// goldenAngle in radians, ~137.5°.
const goldenAngle = 2.39996

// spiralTurns multiplies the golden angle so neighbouring indices land
// several turns apart around the cone.
const spiralTurns = 5

// RandomVolumePoint returns a point uniformly distributed by volume inside a
// sphere of the given radius. The cube root on the radial draw keeps the
// density uniform through the volume rather than on the surface.
func RandomVolumePoint(rng *rand.Rand, radius float32) mgl32.Vec3 {
	u := rng.Float32()
	v := rng.Float32()
	theta := 2 * math32.Pi * u
	phi := math32.Acos(2*v - 1)
	r := math32.Cbrt(rng.Float32()) * radius

	sinPhi := math32.Sin(phi)
	return mgl32.Vec3{
		r * sinPhi * math32.Cos(theta),
		r * sinPhi * math32.Sin(theta),
		r * math32.Cos(phi),
	}
}

// SpiralPoint places point index of total on a cone surface using a
// golden-angle spiral. Height grows linearly with index and is centred on
// zero; the radius shrinks from baseRadius to 0 at the apex, jittered by
// ±spread/2.
func SpiralPoint(rng *rand.Rand, index, total int, height, baseRadius, spread float32) mgl32.Vec3 {
	t := float32(index) / float32(total)
	h := t*height - height/2
	r := baseRadius*(1-t) + (rng.Float32()-0.5)*spread
	theta := float32(index)*goldenAngle*spiralTurns + rng.Float32()*0.5

	return mgl32.Vec3{r * math32.Cos(theta), h, r * math32.Sin(theta)}
}

// ConeVolumePoint samples the solid cone of the given height standing on
// the xz plane, centred vertically on zero. The sqrt on the in-disc radius
// keeps each slice areal-uniform.
func ConeVolumePoint(rng *rand.Rand, height, baseRadius float32) mgl32.Vec3 {
	h := rng.Float32() * height
	local := baseRadius * (1 - h/height)
	r := math32.Sqrt(rng.Float32()) * local
	theta := rng.Float32() * 2 * math32.Pi

	return mgl32.Vec3{r * math32.Cos(theta), h - height/2, r * math32.Sin(theta)}
}

// coneRadiusAt is the cone radius at world height y.
func coneRadiusAt(y, height, baseRadius float32) float32 {
	return baseRadius * (1 - (y+height/2)/height)
}

func horizontalDistance(p mgl32.Vec3) float32 {
	return math32.Hypot(p[0], p[2])
}
