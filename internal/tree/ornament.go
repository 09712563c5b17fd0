package tree

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Category is an ornament population.
type Category int

const (
	Gift Category = iota
	Bauble
	Light

	numCategories
)

// Categories lists every ornament category in draw order.
func Categories() []Category {
	return []Category{Gift, Bauble, Light}
}

func (c Category) String() string {
	switch c {
	case Gift:
		return "gift"
	case Bauble:
		return "bauble"
	case Light:
		return "light"
	}
	return "unknown"
}

func (c Category) salt() string {
	return "ornament:" + c.String()
}

// CategoryProfile is everything that differs between ornament categories.
// Generation and the per-frame update are shared; only the profile varies.
type CategoryProfile struct {
	Category Category

	// ChaosScale multiplies the explosion radius for this category.
	ChaosScale float32
	ScaleMin   float32
	ScaleMax   float32

	// FloatSpeed and FloatIntensity drive the drift while unsettled.
	FloatSpeed     float32
	FloatIntensity float32
	// RotSpeed drives the continuous spin.
	RotSpeed float32

	// Place returns the FORMED position of instance i of n.
	Place func(rng *rand.Rand, i, n int, height, radius float32) mgl32.Vec3
}

var profiles = [numCategories]CategoryProfile{
	Gift: {
		Category:       Gift,
		ChaosScale:     1.0,
		ScaleMin:       0.5,
		ScaleMax:       1.0,
		FloatSpeed:     0.5,
		FloatIntensity: 0.5,
		RotSpeed:       1,
		Place:          placeGift,
	},
	Bauble: {
		Category:       Bauble,
		ChaosScale:     1.0,
		ScaleMin:       0.3,
		ScaleMax:       0.6,
		FloatSpeed:     1.0,
		FloatIntensity: 2.0,
		RotSpeed:       1,
		Place: func(rng *rand.Rand, i, n int, height, radius float32) mgl32.Vec3 {
			return SpiralPoint(rng, i, n, height-2, radius, 0.2)
		},
	},
	Light: {
		Category:       Light,
		ChaosScale:     1.2,
		ScaleMin:       0.1,
		ScaleMax:       0.25,
		FloatSpeed:     2.0,
		FloatIntensity: 5.0,
		RotSpeed:       3,
		Place: func(rng *rand.Rand, i, n int, height, radius float32) mgl32.Vec3 {
			return SpiralPoint(rng, i, n, height, radius+0.5, 0.5)
		},
	},
}

// Profile returns the descriptor for c.
func Profile(c Category) CategoryProfile {
	return profiles[c]
}

// placeGift keeps gifts in the bottom 40% of the tree, pushed out toward
// the skirt.
func placeGift(rng *rand.Rand, i, n int, height, radius float32) mgl32.Vec3 {
	t := float32(i) / float32(n)
	h := t*(height*0.4) - height/2 + 1
	r := coneRadiusAt(h, height, radius)*0.8 + rng.Float32()
	theta := rng.Float32() * 2 * math32.Pi
	return mgl32.Vec3{r * math32.Cos(theta), h, r * math32.Sin(theta)}
}

type OrnamentInstance struct {
	ChaosPosition  mgl32.Vec3
	TargetPosition mgl32.Vec3
	BaseScale      float32
	Color          Color
	Category       Category
}

// OrnamentSet is the immutable population of one category.
type OrnamentSet struct {
	Profile   CategoryProfile
	Instances []OrnamentInstance
	colors    []Color
}

// Len is the instance count.
func (s *OrnamentSet) Len() int {
	return len(s.Instances)
}

// Colors returns the per-instance color buffer. It is built once at
// generation; callers must not modify it.
func (s *OrnamentSet) Colors() []Color {
	return s.colors
}

// GenerateOrnaments builds count instances of cat from rng.
func GenerateOrnaments(rng *rand.Rand, cat Category, count int, height, radius, explosion float32, palette Palette) *OrnamentSet {
	p := Profile(cat)
	set := &OrnamentSet{
		Profile:   p,
		Instances: make([]OrnamentInstance, count),
		colors:    make([]Color, count),
	}
	for i := range set.Instances {
		inst := OrnamentInstance{Category: cat}
		inst.ChaosPosition = RandomVolumePoint(rng, explosion*p.ChaosScale)
		inst.TargetPosition = p.Place(rng, i, count, height, radius)
		inst.BaseScale = uniform(rng, p.ScaleMin, p.ScaleMax)
		inst.Color = palette.pick(rng)

		set.Instances[i] = inst
		set.colors[i] = inst.Color
	}
	return set
}

// generateAllOrnaments builds every category from its own stream of seed.
func generateAllOrnaments(cfg Config) [numCategories]*OrnamentSet {
	var out [numCategories]*OrnamentSet
	for _, cat := range Categories() {
		rng := seededRNG(cfg.Seed, cat.salt())
		out[cat] = GenerateOrnaments(rng, cat, cfg.Count(cat), cfg.OrnamentHeight, cfg.OrnamentRadius, cfg.ExplosionRadius, cfg.palette(cat))
	}
	return out
}
