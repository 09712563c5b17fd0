package tree

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Foliage shading constants shared by the GLSL program and the CPU
// reference below.
const (
	// PointScale is the perspective numerator for point sizes.
	PointScale = 250.0
	// GlitterThreshold marks the particles that get an additive highlight.
	GlitterThreshold = 0.95
	glitterBoost     = 0.5
)

type Particle struct {
	ChaosPosition  mgl32.Vec3
	TargetPosition mgl32.Vec3
	Size           float32
	// Seed is in [0,1) and staggers the particle's convergence.
	Seed float32
}

// FoliageField is the large particle population drawn as GPU points.
type FoliageField struct {
	Particles []Particle
}

// FoliageUniforms are the only per-frame inputs of the foliage pass.
type FoliageUniforms struct {
	Time     float32
	Progress float32
}

// GenerateFoliage fills a cone of the given height and base radius with
// count particles, each paired with a chaos position inside the explosion
// sphere.
func GenerateFoliage(rng *rand.Rand, count int, height, baseRadius, explosion float32) *FoliageField {
	f := &FoliageField{Particles: make([]Particle, count)}
	for i := range f.Particles {
		p := &f.Particles[i]
		p.ChaosPosition = RandomVolumePoint(rng, explosion)
		p.TargetPosition = ConeVolumePoint(rng, height, baseRadius)
		p.Size = rng.Float32()*0.5 + 0.2
		p.Seed = rng.Float32()
	}
	return f
}

func (f *FoliageField) Len() int {
	return len(f.Particles)
}

// ChaosBuffer returns the chaos positions as a packed xyz attribute.
func (f *FoliageField) ChaosBuffer() []float32 {
	out := make([]float32, 0, 3*len(f.Particles))
	for _, p := range f.Particles {
		out = append(out, p.ChaosPosition[0], p.ChaosPosition[1], p.ChaosPosition[2])
	}
	return out
}

// TargetBuffer returns the tree positions as a packed xyz attribute.
func (f *FoliageField) TargetBuffer() []float32 {
	out := make([]float32, 0, 3*len(f.Particles))
	for _, p := range f.Particles {
		out = append(out, p.TargetPosition[0], p.TargetPosition[1], p.TargetPosition[2])
	}
	return out
}

// SizeSeedBuffer packs (size, seed) pairs, the layout of a 2-component
// texcoord attribute.
func (f *FoliageField) SizeSeedBuffer() []float32 {
	out := make([]float32, 0, 2*len(f.Particles))
	for _, p := range f.Particles {
		out = append(out, p.Size, p.Seed)
	}
	return out
}

// FoliageProgress is the per-particle eased progress: the global progress
// is stretched by 1.2 and offset by up to 0.2 according to seed, so
// particles settle one after another instead of together.
func FoliageProgress(progress, seed float32) float32 {
	return EaseInOutQuart(clamp01(progress*1.2 - seed*0.2))
}

// Breath is the 0..1 size and alpha pulse of a particle.
func Breath(t, seed float32) float32 {
	return math32.Sin(t*2+seed*10)*0.5 + 0.5
}

// ParticleSample is the vertex stage output for one particle.
type ParticleSample struct {
	Position mgl32.Vec3
	Local    float32
	// Size is the pulsed size before perspective division.
	Size  float32
	Alpha float32
}

// Sample evaluates the foliage vertex stage on the CPU. It mirrors the
// GLSL program in the GPU client.
func (p Particle) Sample(u FoliageUniforms) ParticleSample {
	local := FoliageProgress(u.Progress, p.Seed)
	pos := lerpVec3(p.ChaosPosition, p.TargetPosition, local)

	if local > 0.8 {
		wind := math32.Sin(u.Time+pos[1]*0.5) * 0.1
		pos[0] += wind
		pos[2] += wind * 0.5
	} else {
		pos[1] += math32.Sin(u.Time+pos[0]) * 0.2
	}

	breath := Breath(u.Time, p.Seed)
	return ParticleSample{
		Position: pos,
		Local:    local,
		Size:     p.Size * (1 + breath*0.2),
		Alpha:    0.8 + 0.2*breath,
	}
}

// PointSize applies the perspective division for a view depth (distance
// in front of the camera, positive).
func (s ParticleSample) PointSize(depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return s.Size * (PointScale / depth)
}

// ShadeFoliage evaluates the fragment stage at distance dist from the point
// centre, in point-sprite units where the rim sits at 0.5. ok is false for
// discarded fragments.
func ShadeFoliage(dist, seed, alpha float32, base, rim Color) (c Color, a float32, ok bool) {
	if dist > 0.5 {
		return Color{}, 0, false
	}
	strength := math32.Pow(1-dist*2, 1.5)
	edge := Smoothstep(dist, 0.3, 0.5)

	c = base.Scale(0.8).Mix(rim, edge*0.6)
	if seed > GlitterThreshold {
		c = c.Add(glitterBoost)
	}
	return c, alpha * strength, true
}
