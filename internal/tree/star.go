package tree

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	starPoints      = 5
	starOuterRadius = 1.3
	starInnerRadius = 0.5

	starDepth          = 0.5
	starBevelThickness = 0.15
	starBevelSize      = 0.1
	starBevelSegments  = 4

	// starLift raises the star above the apex of the foliage cone.
	starLift = 0.2

	sparkleCount = 30
	sparkleBox   = 4
	sparkleSpeed = 0.4

	floatSpeed     = 2
	floatRotation  = 0.2
	floatIntensity = 0.2
)

// StarOutline returns the flat star polygon in the xy plane: outer and
// inner points alternating, counter-clockwise, the first point facing up.
func StarOutline() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, starPoints*2)
	for i := 0; i < starPoints*2; i++ {
		angle := float32(i)*math32.Pi/starPoints + math32.Pi/2
		r := float32(starInnerRadius)
		if i%2 == 0 {
			r = starOuterRadius
		}
		out = append(out, mgl32.Vec2{math32.Cos(angle) * r, math32.Sin(angle) * r})
	}
	return out
}

// bevelOffsets returns, per outline vertex, the unit-bevel miter offset:
// moving the vertex by offset·s grows every edge outward by s.
func bevelOffsets(outline []mgl32.Vec2) []mgl32.Vec2 {
	n := len(outline)
	out := make([]mgl32.Vec2, n)
	for i := range outline {
		prev := outline[(i+n-1)%n]
		cur := outline[i]
		next := outline[(i+1)%n]

		// Outward normals of a counter-clockwise polygon.
		e0 := cur.Sub(prev).Normalize()
		e1 := next.Sub(cur).Normalize()
		n0 := mgl32.Vec2{e0[1], -e0[0]}
		n1 := mgl32.Vec2{e1[1], -e1[0]}

		bis := n0.Add(n1)
		if bis.Len() < 1e-6 {
			out[i] = n0
			continue
		}
		bis = bis.Normalize()
		out[i] = bis.Mul(1 / bis.Dot(n0))
	}
	return out
}

type ring struct {
	grow float32
	z    float32
}

// extrusionRings lists the contour layers from the front cap to the back
// cap: a quarter-circle bevel, the straight wall, and the mirrored bevel.
func extrusionRings() []ring {
	rings := make([]ring, 0, 2*(starBevelSegments+1))
	for b := 0; b <= starBevelSegments; b++ {
		t := float32(b) / starBevelSegments
		rings = append(rings, ring{
			grow: starBevelSize * math32.Sin(t*math32.Pi/2),
			z:    -starBevelThickness * math32.Cos(t*math32.Pi/2),
		})
	}
	for b := starBevelSegments; b >= 0; b-- {
		t := float32(b) / starBevelSegments
		rings = append(rings, ring{
			grow: starBevelSize * math32.Sin(t*math32.Pi/2),
			z:    starDepth + starBevelThickness*math32.Cos(t*math32.Pi/2),
		})
	}
	return rings
}

// BuildStarMesh extrudes the star outline with bevelled edges and centres
// it on the extrusion axis only, so the xy origin stays the star centre.
func BuildStarMesh() *Mesh {
	outline := StarOutline()
	offsets := bevelOffsets(outline)
	rings := extrusionRings()
	n := len(outline)
	shift := float32(-starDepth / 2)

	at := func(r ring, i int) mgl32.Vec3 {
		p := outline[i].Add(offsets[i].Mul(r.grow))
		return mgl32.Vec3{p[0], p[1], r.z + shift}
	}

	m := &Mesh{}
	front, back := rings[0], rings[len(rings)-1]
	centreFront := mgl32.Vec3{0, 0, front.z + shift}
	centreBack := mgl32.Vec3{0, 0, back.z + shift}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// The star is star-shaped about its centre, so a fan covers each cap.
		m.tri(centreFront, at(front, j), at(front, i))
		m.tri(centreBack, at(back, i), at(back, j))
	}
	for k := 0; k+1 < len(rings); k++ {
		r0, r1 := rings[k], rings[k+1]
		if r0 == r1 {
			continue
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			m.quad(at(r0, i), at(r0, j), at(r1, j), at(r1, i))
		}
	}
	return m
}

// Sparkle is one glint orbiting the star.
type Sparkle struct {
	Offset mgl32.Vec3
	Size   float32
	Phase  float32
	Speed  float32
}

// GenerateSparkles scatters count glints in a cube of side box.
func GenerateSparkles(rng *rand.Rand, count int, box float32) []Sparkle {
	out := make([]Sparkle, count)
	for i := range out {
		out[i] = Sparkle{
			Offset: mgl32.Vec3{
				(rng.Float32() - 0.5) * box,
				(rng.Float32() - 0.5) * box,
				(rng.Float32() - 0.5) * box,
			},
			Size:  uniform(rng, 0.5, 1.0),
			Phase: rng.Float32() * 2 * math32.Pi,
			Speed: sparkleSpeed * uniform(rng, 0.5, 1.5),
		}
	}
	return out
}

// SparkleSample is a sparkle's position and opacity at a moment.
type SparkleSample struct {
	Position mgl32.Vec3
	Size     float32
	Opacity  float32
}

// At evaluates s relative to centre at time t.
func (s Sparkle) At(centre mgl32.Vec3, t float32) SparkleSample {
	phase := t*s.Speed*4 + s.Phase
	p := centre.Add(s.Offset)
	p[1] += math32.Sin(phase*0.5) * 0.1
	return SparkleSample{
		Position: p,
		Size:     s.Size,
		Opacity:  0.5 + 0.5*math32.Sin(phase),
	}
}

// StarTopper is the star above the tree and its glints.
type StarTopper struct {
	Mesh     *Mesh
	Anchor   mgl32.Vec3
	Mode     TopperMode
	Sparkles []Sparkle
}

// NewStarTopper places the star just above a tree of the given height.
func NewStarTopper(rng *rand.Rand, treeHeight float32, mode TopperMode) *StarTopper {
	return &StarTopper{
		Mesh:     BuildStarMesh(),
		Anchor:   mgl32.Vec3{0, treeHeight/2 + starLift, 0},
		Mode:     mode,
		Sparkles: GenerateSparkles(rng, sparkleCount, sparkleBox),
	}
}

// StarPose is the star's per-frame placement.
type StarPose struct {
	Visible   bool
	Scale     float32
	Position  mgl32.Vec3
	Transform mgl32.Mat4
	Sparkles  []SparkleSample
}

// Scale returns the star scale for the desired state and progress.
func (s *StarTopper) Scale(desired State, progress float32) float32 {
	if s.Mode == TopperProgress {
		return Smoothstep(progress, 0.8, 1.0)
	}
	if desired == Formed {
		return 1
	}
	return 0
}

// Pose computes the star transform with its idle bob and sway. The
// sparkles slice is reused across calls.
func (s *StarTopper) Pose(desired State, progress, t float32, buf []SparkleSample) StarPose {
	scale := s.Scale(desired, progress)
	ts := t / 4 * floatSpeed
	sin, cos := math32.Sin(ts), math32.Cos(ts)

	pos := s.Anchor
	pos[1] += sin / 10 * floatIntensity

	rx := cos / 8 * floatRotation
	ry := sin / 8 * floatRotation
	rz := sin / 20 * floatRotation

	pose := StarPose{
		Visible:   scale > 0,
		Scale:     scale,
		Position:  pos,
		Transform: composeTRS(pos, rx, ry, rz, scale),
	}
	if pose.Visible {
		buf = buf[:0]
		for _, sp := range s.Sparkles {
			buf = append(buf, sp.At(s.Anchor, t))
		}
		pose.Sparkles = buf
	}
	return pose
}

// composeTRS builds T·R·S with an XYZ Euler rotation and uniform scale.
func composeTRS(pos mgl32.Vec3, rx, ry, rz, scale float32) mgl32.Mat4 {
	r := mgl32.HomogRotate3DX(rx).Mul4(mgl32.HomogRotate3DY(ry)).Mul4(mgl32.HomogRotate3DZ(rz))
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(r).Mul4(mgl32.Scale3D(scale, scale, scale))
}
